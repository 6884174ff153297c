package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/toolrent/internal/domain"
	"github.com/andy/toolrent/internal/service"
)

// rentMode represents the current screen mode
type rentMode int

const (
	rentModeForm rentMode = iota
	rentModeResult
)

// form field indices
const (
	fieldItem = iota
	fieldDays
	fieldDiscount
	fieldDate
	fieldCount
)

// RentModel is a rental form plus the last computed contract
type RentModel struct {
	svc service.RentalService

	mode       rentMode
	fields     []textinput.Model
	fieldFocus int

	contract      *domain.RentalContract
	showBreakdown bool
	err           error
}

// NewRentModel creates a rent screen with an empty form focused
func NewRentModel(svc service.RentalService) *RentModel {
	m := &RentModel{svc: svc}
	m.initForm()
	return m
}

// IsCapturingInput returns true when the form is active
func (m *RentModel) IsCapturingInput() bool {
	return m.mode == rentModeForm
}

func (m *RentModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RentModel) initForm() {
	m.fields = make([]textinput.Model, fieldCount)

	m.fields[fieldItem] = textinput.New()
	m.fields[fieldItem].Placeholder = "LADW"
	m.fields[fieldItem].CharLimit = 10
	m.fields[fieldItem].Width = 12

	m.fields[fieldDays] = textinput.New()
	m.fields[fieldDays].Placeholder = "3"
	m.fields[fieldDays].CharLimit = 5
	m.fields[fieldDays].Width = 8

	m.fields[fieldDiscount] = textinput.New()
	m.fields[fieldDiscount].Placeholder = "0"
	m.fields[fieldDiscount].CharLimit = 4
	m.fields[fieldDiscount].Width = 8

	m.fields[fieldDate] = textinput.New()
	m.fields[fieldDate].Placeholder = "07/02/20"
	m.fields[fieldDate].CharLimit = 8
	m.fields[fieldDate].Width = 10

	m.fieldFocus = fieldItem
	m.fields[fieldItem].Focus()
}

// Prefill opens the form with the item code set and the days field focused
func (m *RentModel) Prefill(code string) tea.Cmd {
	m.fields[fieldItem].SetValue(code)
	m.mode = rentModeForm
	m.err = nil
	return m.focus(fieldDays)
}

func (m *RentModel) focus(field int) tea.Cmd {
	m.fields[m.fieldFocus].Blur()
	m.fieldFocus = field
	return m.fields[field].Focus()
}

// request reads the form. Range checks are left to the rental service.
func (m *RentModel) request() (service.RentalRequest, error) {
	req := service.RentalRequest{
		ItemCode:  strings.TrimSpace(m.fields[fieldItem].Value()),
		StartDate: strings.TrimSpace(m.fields[fieldDate].Value()),
		Breakdown: true,
	}

	daysStr := strings.TrimSpace(m.fields[fieldDays].Value())
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return req, fmt.Errorf("invalid rental days: %q", daysStr)
	}
	req.RentalDays = days

	if pctStr := strings.TrimSpace(strings.TrimSuffix(m.fields[fieldDiscount].Value(), "%")); pctStr != "" {
		pct, err := strconv.Atoi(pctStr)
		if err != nil {
			return req, fmt.Errorf("invalid discount: %q", pctStr)
		}
		req.DiscountPercent = pct
	}

	return req, nil
}

func (m *RentModel) submit() tea.Cmd {
	req, err := m.request()
	if err != nil {
		return func() tea.Msg { return rentalResultMsg{err: err} }
	}
	svc := m.svc
	return func() tea.Msg {
		c, err := svc.Quote(req)
		return rentalResultMsg{contract: c, err: err}
	}
}

func (m *RentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, ok := msg.(rentalResultMsg); ok {
		if res.err != nil {
			m.err = res.err
			return m, nil
		}
		m.err = nil
		m.contract = res.contract
		m.mode = rentModeResult
		return m, nil
	}

	if m.mode == rentModeForm {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Select), key.Matches(msg, DefaultKeyMap.New):
			m.mode = rentModeForm
			m.err = nil
			return m, m.focus(fieldItem)
		case key.Matches(msg, DefaultKeyMap.Breakdown):
			m.showBreakdown = !m.showBreakdown
		}
	}

	return m, nil
}

func (m *RentModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			// Leave the form so global navigation works again
			m.mode = rentModeResult
			m.err = nil
			return m, nil

		case "tab", "down":
			return m, m.focus((m.fieldFocus + 1) % fieldCount)

		case "shift+tab", "up":
			return m, m.focus((m.fieldFocus - 1 + fieldCount) % fieldCount)

		case "enter":
			if m.fieldFocus == fieldCount-1 {
				return m, m.submit()
			}
			return m, m.focus(m.fieldFocus + 1)

		case "ctrl+s":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *RentModel) View() string {
	if m.mode == rentModeForm {
		return m.viewForm()
	}
	return m.viewContract()
}

func (m *RentModel) viewForm() string {
	var s string
	s += titleStyle.Render("New Rental") + "\n\n"

	labels := []string{"Tool code:", "Rental days:", "Discount (%):", "Checkout date (MM/dd/yy):"}
	for i, label := range labels {
		indicator := "  "
		labelStyle := subtitleStyle
		if i == m.fieldFocus {
			indicator = "> "
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(label), m.fields[i].View())
	}

	if m.err != nil {
		s += errorStyle.Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: rent  enter: next/rent  esc: close form")
	return s
}

func (m *RentModel) viewContract() string {
	if m.contract == nil {
		return subtitleStyle.Render("  No rental yet. Press enter to fill in the form.")
	}

	var s string
	s += titleStyle.Render("Rental Agreement") + "\n\n"

	lines := m.contract.Lines()
	for i, line := range lines {
		value := line.Value
		if i == len(lines)-1 {
			value = contractTotalStyle.Render(value)
		}
		s += "  " + contractLabelStyle.Render(line.Label+":") + value + "\n"
	}

	if m.showBreakdown {
		s += "\n" + titleStyle.Render("Charge days") + "\n"
		for _, d := range m.contract.Days {
			mark := freeStyle.Render("free")
			if d.Billable {
				mark = billableStyle.Render("billed")
			}
			s += fmt.Sprintf("  %s  %-3s  %-8s %s\n",
				domain.FormatDate(d.Date), d.Date.In(time.UTC).Weekday().String()[:3], d.Kind, mark)
		}
	}

	s += "\n" + helpStyle.Render("  enter/n: new rental  b: toggle day breakdown")
	return s
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/toolrent/internal/app"
	"github.com/andy/toolrent/internal/service"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenRent Screen = iota
	ScreenItems
	ScreenHolidays
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenRent:
		return "Rent"
	case ScreenItems:
		return "Items"
	case ScreenHolidays:
		return "Holidays"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	currentScreen Screen
	width         int
	height        int

	rent     *RentModel
	items    *ItemsModel
	holidays *HolidaysModel

	err error
}

// New creates a new root model. The holidays screen opens on year.
func New(svc service.RentalService, year int) Model {
	return Model{
		currentScreen: ScreenRent,
		rent:          NewRentModel(svc),
		items:         NewItemsModel(svc),
		holidays:      NewHolidaysModel(svc, year),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.rent.Init()
}

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, global navigation keys (1, 2, 3, q) are suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

func (m *Model) activeScreen() tea.Model {
	switch m.currentScreen {
	case ScreenItems:
		return m.items
	case ScreenHolidays:
		return m.holidays
	default:
		return m.rent
	}
}

// activeScreenCapturingInput returns true if the current screen is capturing text input
func (m *Model) activeScreenCapturingInput() bool {
	if ic, ok := m.activeScreen().(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		// Skip global navigation when a screen is capturing text input
		if !m.activeScreenCapturingInput() {
			m.err = nil
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				return m, tea.Quit

			case key.Matches(msg, DefaultKeyMap.Rent):
				m.currentScreen = ScreenRent
				return m, nil

			case key.Matches(msg, DefaultKeyMap.Items):
				m.currentScreen = ScreenItems
				return m, nil

			case key.Matches(msg, DefaultKeyMap.Holidays):
				m.currentScreen = ScreenHolidays
				return m, nil
			}
		}

	case SwitchScreenMsg:
		m.currentScreen = msg.Screen
		return m, nil

	case RentItemMsg:
		m.currentScreen = ScreenRent
		return m, m.rent.Prefill(msg.Code)

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	// Route message to current screen
	var cmd tea.Cmd
	switch m.currentScreen {
	case ScreenRent:
		_, cmd = m.rent.Update(msg)
	case ScreenItems:
		_, cmd = m.items.Update(msg)
	case ScreenHolidays:
		_, cmd = m.holidays.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := headerStyle.Render(fmt.Sprintf("toolrent - %s", m.currentScreen.String()))
	footer := footerStyle.Render("[1] Rent  [2] Items  [3] Holidays  [Q]uit")

	content := m.activeScreen().View()

	errorDisplay := ""
	if m.err != nil {
		errorDisplay = errorStyle.Render(fmt.Sprintf("\nError: %s", m.err.Error()))
	}

	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, errorDisplay, divider, footer)

	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a.RentalService, time.Now().Year()), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

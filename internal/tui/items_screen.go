package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/toolrent/internal/domain"
	"github.com/andy/toolrent/internal/service"
)

// ItemsModel is a navigable table of the catalog
type ItemsModel struct {
	items  []domain.Item
	cursor int
}

// NewItemsModel snapshots the catalog. It never changes while running.
func NewItemsModel(svc service.RentalService) *ItemsModel {
	return &ItemsModel{items: svc.Items()}
}

func (m *ItemsModel) Init() tea.Cmd {
	return nil
}

// Selected returns the item under the cursor
func (m *ItemsModel) Selected() (domain.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return domain.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m *ItemsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, DefaultKeyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, DefaultKeyMap.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, DefaultKeyMap.Select):
		if item, ok := m.Selected(); ok {
			return m, func() tea.Msg { return RentItemMsg{Code: item.Code} }
		}
	}
	return m, nil
}

func (m *ItemsModel) View() string {
	var s string
	s += titleStyle.Render("Tools") + "\n\n"

	if len(m.items) == 0 {
		return s + subtitleStyle.Render("  The catalog is empty.")
	}

	s += subtitleStyle.Render(fmt.Sprintf("  %-6s %-12s %-10s %8s  %-7s %-7s %-7s",
		"Code", "Type", "Brand", "Daily", "Weekday", "Weekend", "Holiday")) + "\n"

	for i, item := range m.items {
		row := fmt.Sprintf("  %-6s %-12s %-10s %8s  %-7s %-7s %-7s",
			item.Code,
			truncateStr(item.Type, 12),
			truncateStr(item.Brand, 10),
			domain.FormatMoney(item.DailyFee),
			yesNo(item.WeekdayCharge),
			yesNo(item.WeekendCharge),
			yesNo(item.HolidayCharge),
		)
		style := lipgloss.NewStyle()
		if i == m.cursor {
			style = selectedStyle
		}
		s += style.Render(row) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  enter: rent this tool")
	return s
}

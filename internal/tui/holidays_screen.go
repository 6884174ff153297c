package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andy/toolrent/internal/domain"
	"github.com/andy/toolrent/internal/holiday"
	"github.com/andy/toolrent/internal/service"
)

// HolidaysModel lists the observed holidays of one year at a time
type HolidaysModel struct {
	svc      service.RentalService
	year     int
	holidays []holiday.Holiday
}

func NewHolidaysModel(svc service.RentalService, year int) *HolidaysModel {
	m := &HolidaysModel{svc: svc}
	m.setYear(year)
	return m
}

func (m *HolidaysModel) setYear(year int) {
	if year < 1 || year > 9999 {
		return
	}
	m.year = year
	m.holidays = m.svc.Holidays(year)
}

func (m *HolidaysModel) Init() tea.Cmd {
	return nil
}

func (m *HolidaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Left):
			m.setYear(m.year - 1)
		case key.Matches(msg, DefaultKeyMap.Right):
			m.setYear(m.year + 1)
		}
	}
	return m, nil
}

func (m *HolidaysModel) View() string {
	var s string
	s += titleStyle.Render(fmt.Sprintf("Observed holidays %d", m.year)) + "\n\n"

	if len(m.holidays) == 0 {
		s += subtitleStyle.Render("  No holidays configured.") + "\n"
	}
	for _, h := range m.holidays {
		s += fmt.Sprintf("  %s  %s  %s\n",
			h.Date.In(time.UTC).Weekday().String()[:3],
			domain.FormatDate(h.Date),
			h.Name,
		)
	}

	s += "\n" + helpStyle.Render("  ←/h: previous year  →/l: next year")
	return s
}

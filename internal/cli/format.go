package cli

import (
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/toolrent/internal/domain"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// printContract writes the agreement in its canonical "Label: value" form
func printContract(w io.Writer, c *domain.RentalContract) {
	fmt.Fprint(w, c.String())
}

// printSchedule writes one line per rental day
func printSchedule(w io.Writer, c *domain.RentalContract) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render("Charge days"))
	for _, d := range c.Days {
		mark := warningStyle.Render("free")
		if d.Billable {
			mark = successStyle.Render("billed")
		}
		fmt.Fprintf(w, "  %s  %s  %-8s %s\n", domain.FormatDate(d.Date), shortWeekday(d.Date), d.Kind, mark)
	}
}

func shortWeekday(d civil.Date) string {
	return d.In(time.UTC).Weekday().String()[:3]
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

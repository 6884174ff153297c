// Package holiday computes observed holiday dates for a calendar year.
package holiday

import (
	"sort"
	"time"

	"cloud.google.com/go/civil"
)

// Holiday is an observed holiday date
type Holiday struct {
	Name string
	Date civil.Date
}

// Rule produces the observed date of one holiday in a given year
type Rule interface {
	Name() string
	Observed(year int) civil.Date
}

// Provider produces the set of holidays observed in a year
type Provider interface {
	Holidays(year int) []Holiday
}

// FixedDate is a holiday on the same month and day every year. With
// ObserveWeekend a Saturday date is observed on Friday and a Sunday date on Monday.
// A day past the end of the month (February 29th outside leap years) falls on
// the last day of the month.
type FixedDate struct {
	Label          string
	Month          time.Month
	Day            int
	ObserveWeekend bool
}

func (r FixedDate) Name() string { return r.Label }

func (r FixedDate) Observed(year int) civil.Date {
	day := r.Day
	if last := daysIn(year, r.Month); day > last {
		day = last
	}
	d := civil.Date{Year: year, Month: r.Month, Day: day}
	if !r.ObserveWeekend {
		return d
	}
	switch d.In(time.UTC).Weekday() {
	case time.Saturday:
		return d.AddDays(-1)
	case time.Sunday:
		return d.AddDays(1)
	}
	return d
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NthWeekday is a holiday on the N-th given weekday of a month (N starts at 1)
type NthWeekday struct {
	Label   string
	Month   time.Month
	Weekday time.Weekday
	N       int
}

func (r NthWeekday) Name() string { return r.Label }

func (r NthWeekday) Observed(year int) civil.Date {
	first := civil.Date{Year: year, Month: r.Month, Day: 1}
	offset := (int(r.Weekday) - int(first.In(time.UTC).Weekday()) + 7) % 7
	return first.AddDays(offset + 7*(r.N-1))
}

// IndependenceDay is July 4th, moved off weekends
func IndependenceDay() Rule {
	return FixedDate{Label: "Independence Day", Month: time.July, Day: 4, ObserveWeekend: true}
}

// LaborDay is the first Monday in September
func LaborDay() Rule {
	return NthWeekday{Label: "Labor Day", Month: time.September, Weekday: time.Monday, N: 1}
}

var builtin = map[string]func() Rule{
	"independence_day": IndependenceDay,
	"labor_day":        LaborDay,
}

// ByName returns a built-in rule by its config name
func ByName(name string) (Rule, bool) {
	f, ok := builtin[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Names lists the built-in rule names
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Calendar evaluates a fixed set of rules. Dates are recomputed on every call.
type Calendar struct {
	rules []Rule
}

// NewCalendar creates a calendar from the given rules
func NewCalendar(rules ...Rule) *Calendar {
	return &Calendar{rules: append([]Rule(nil), rules...)}
}

// USCalendar observes Independence Day and Labor Day
func USCalendar() *Calendar {
	return NewCalendar(IndependenceDay(), LaborDay())
}

// Holidays returns the observed holidays of a year ordered by date
func (c *Calendar) Holidays(year int) []Holiday {
	out := make([]Holiday, 0, len(c.rules))
	for _, r := range c.rules {
		out = append(out, Holiday{Name: r.Name(), Date: r.Observed(year)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// IsHoliday reports whether the date is an observed holiday
func (c *Calendar) IsHoliday(date civil.Date) bool {
	return IsHoliday(c, date)
}

// IsHoliday reports whether any holiday of the provider falls on date.
// Neighbouring years are checked too since a weekend shift can move a
// holiday across New Year.
func IsHoliday(p Provider, date civil.Date) bool {
	for year := date.Year - 1; year <= date.Year+1; year++ {
		for _, h := range p.Holidays(year) {
			if h.Date == date {
				return true
			}
		}
	}
	return false
}

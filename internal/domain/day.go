package domain

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// DateLayout is the MM/dd/yy format used for every date the user sees
const DateLayout = "01/02/06"

// DayKind is the fee category a calendar day falls into
type DayKind int

const (
	DayKindWeekday DayKind = iota
	DayKindWeekend
	DayKindHoliday
)

// String returns the day kind name
func (k DayKind) String() string {
	switch k {
	case DayKindWeekday:
		return "weekday"
	case DayKindWeekend:
		return "weekend"
	case DayKindHoliday:
		return "holiday"
	default:
		return "unknown"
	}
}

// ChargeDay is one classified day of a rental period
type ChargeDay struct {
	Date     civil.Date
	Kind     DayKind
	Billable bool
}

// ParseDate parses a MM/dd/yy date. Two-digit years land in 2000-2099.
func ParseDate(s string) (civil.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("expected format MM/dd/yy, got %q", s)
	}
	d := civil.DateOf(t)
	if d.Year < 2000 {
		d.Year += 100
	}
	return d, nil
}

// FormatDate renders a date as MM/dd/yy
func FormatDate(d civil.Date) string {
	return d.In(time.UTC).Format(DateLayout)
}

// IsWeekend reports whether the date is a Saturday or Sunday
func IsWeekend(d civil.Date) bool {
	wd := d.In(time.UTC).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

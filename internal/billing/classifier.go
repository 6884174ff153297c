// Package billing decides which days of a rental period are charged.
package billing

import (
	"cloud.google.com/go/civil"

	"github.com/andy/toolrent/internal/domain"
	"github.com/andy/toolrent/internal/holiday"
)

// Classifier sorts calendar days into weekday, weekend, and holiday
type Classifier struct {
	holidays holiday.Provider
}

// NewClassifier creates a classifier backed by the given holiday provider
func NewClassifier(holidays holiday.Provider) *Classifier {
	return &Classifier{holidays: holidays}
}

// Classify returns the fee category of a date. A holiday wins over a weekend.
func (c *Classifier) Classify(date civil.Date) domain.DayKind {
	if holiday.IsHoliday(c.holidays, date) {
		return domain.DayKindHoliday
	}
	if domain.IsWeekend(date) {
		return domain.DayKindWeekend
	}
	return domain.DayKindWeekday
}

// IsBillable reports whether renting the item on date costs money
func (c *Classifier) IsBillable(date civil.Date, item domain.Item) bool {
	return item.ChargesOn(c.Classify(date))
}

// Schedule classifies every date after start up to and including end
func (c *Classifier) Schedule(start, end civil.Date, item domain.Item) []domain.ChargeDay {
	n := end.DaysSince(start)
	if n < 0 {
		n = 0
	}
	days := make([]domain.ChargeDay, 0, n)
	for d := start.AddDays(1); !d.After(end); d = d.AddDays(1) {
		kind := c.Classify(d)
		days = append(days, domain.ChargeDay{
			Date:     d,
			Kind:     kind,
			Billable: item.ChargesOn(kind),
		})
	}
	return days
}

// BillableDays counts the charged dates after start up to and including end
// without building the schedule
func (c *Classifier) BillableDays(start, end civil.Date, item domain.Item) int {
	n := 0
	for d := start.AddDays(1); !d.After(end); d = d.AddDays(1) {
		if c.IsBillable(d, item) {
			n++
		}
	}
	return n
}

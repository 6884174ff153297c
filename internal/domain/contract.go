package domain

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

// RentalContract is the computed agreement for renting one item
type RentalContract struct {
	Item            Item
	RentalDays      int
	StartDate       civil.Date
	EndDate         civil.Date
	BillableDays    int
	InitialCharge   float64
	DiscountPercent int
	DiscountAmount  float64
	TotalCharge     float64

	// Days holds the classification of every date in (StartDate, EndDate]
	Days []ChargeDay
}

// Line is one labelled value of a rendered contract
type Line struct {
	Label string
	Value string
}

// Lines returns the contract fields in display order
func (c *RentalContract) Lines() []Line {
	return []Line{
		{"Item code", c.Item.Code},
		{"Item type", c.Item.Type},
		{"Brand", c.Item.Brand},
		{"Rental duration", fmt.Sprintf("%d", c.RentalDays)},
		{"Start date", FormatDate(c.StartDate)},
		{"End date", FormatDate(c.EndDate)},
		{"Daily rental charge", FormatMoney(c.Item.DailyFee)},
		{"Billable days", fmt.Sprintf("%d", c.BillableDays)},
		{"Initial charge", FormatMoney(c.InitialCharge)},
		{"Discount rate", fmt.Sprintf("%d%%", c.DiscountPercent)},
		{"Discount value", FormatMoney(c.DiscountAmount)},
		{"Total charge", FormatMoney(c.TotalCharge)},
	}
}

func (c *RentalContract) String() string {
	var b strings.Builder
	for _, l := range c.Lines() {
		fmt.Fprintf(&b, "%s: %s\n", l.Label, l.Value)
	}
	return b.String()
}

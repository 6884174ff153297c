package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Item is a rentable tool and the days on which renting it costs money
type Item struct {
	Code          string
	Type          string
	Brand         string
	DailyFee      float64
	WeekdayCharge bool
	WeekendCharge bool
	HolidayCharge bool
}

// Validate returns an error if the item is invalid
func (i Item) Validate() error {
	if strings.TrimSpace(i.Code) == "" {
		return errors.New("item code is required")
	}
	if strings.TrimSpace(i.Type) == "" {
		return fmt.Errorf("item %s: type is required", i.Code)
	}
	if strings.TrimSpace(i.Brand) == "" {
		return fmt.Errorf("item %s: brand is required", i.Code)
	}
	if i.DailyFee < 0 {
		return fmt.Errorf("item %s: daily fee cannot be negative", i.Code)
	}
	return nil
}

// ChargesOn reports whether a day of the given kind is billable for this item
func (i Item) ChargesOn(kind DayKind) bool {
	switch kind {
	case DayKindHoliday:
		return i.HolidayCharge
	case DayKindWeekend:
		return i.WeekendCharge
	default:
		return i.WeekdayCharge
	}
}

func (i Item) String() string {
	return fmt.Sprintf("Item code: %s\nItem type: %s\nBrand: %s\n", i.Code, i.Type, i.Brand)
}

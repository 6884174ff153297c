package service

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/andy/toolrent/internal/catalog"
	"github.com/andy/toolrent/internal/domain"
	"github.com/andy/toolrent/internal/holiday"
)

func newTestService() RentalService {
	return NewRentalService(catalog.Reference(), holiday.USCalendar(), zap.NewNop())
}

func TestRentItem_ReferenceScenarios(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name         string
		code         string
		days         int
		discount     int
		start        string
		wantEnd      string
		wantBillable int
		wantInitial  string
		wantDiscount string
		wantTotal    string
	}{
		{
			name: "ladder over shifted independence day", code: "LADW", days: 3, discount: 10, start: "07/02/20",
			wantEnd: "07/05/20", wantBillable: 2, wantInitial: "$3.98", wantDiscount: "$0.40", wantTotal: "$3.58",
		},
		{
			name: "chainsaw charges the holiday but not the weekend", code: "CHNS", days: 5, discount: 25, start: "07/02/15",
			wantEnd: "07/07/15", wantBillable: 3, wantInitial: "$4.47", wantDiscount: "$1.12", wantTotal: "$3.35",
		},
		{
			name: "jackhammer over labor day", code: "JAKD", days: 6, discount: 0, start: "09/03/15",
			wantEnd: "09/09/15", wantBillable: 3, wantInitial: "$8.97", wantDiscount: "$0.00", wantTotal: "$8.97",
		},
		{
			name: "jackhammer nine days", code: "JAKR", days: 9, discount: 0, start: "07/02/15",
			wantEnd: "07/11/15", wantBillable: 5, wantInitial: "$14.95", wantDiscount: "$0.00", wantTotal: "$14.95",
		},
		{
			name: "jackhammer half off", code: "JAKR", days: 4, discount: 50, start: "07/02/20",
			wantEnd: "07/06/20", wantBillable: 1, wantInitial: "$2.99", wantDiscount: "$1.50", wantTotal: "$1.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := svc.RentItem(tt.code, tt.days, tt.discount, tt.start)
			require.NoError(t, err)
			require.NotNil(t, c)

			assert.Equal(t, tt.code, c.Item.Code)
			assert.Equal(t, tt.days, c.RentalDays)
			assert.Equal(t, tt.start, domain.FormatDate(c.StartDate))
			assert.Equal(t, tt.wantEnd, domain.FormatDate(c.EndDate))
			assert.Equal(t, tt.wantBillable, c.BillableDays)
			assert.Equal(t, tt.discount, c.DiscountPercent)
			assert.Equal(t, tt.wantInitial, domain.FormatMoney(c.InitialCharge))
			assert.Equal(t, tt.wantDiscount, domain.FormatMoney(c.DiscountAmount))
			assert.Equal(t, tt.wantTotal, domain.FormatMoney(c.TotalCharge))
			assert.Empty(t, c.Days, "schedule only built on request")
		})
	}
}

func TestRentItem_LadderAmounts(t *testing.T) {
	c, err := newTestService().RentItem("LADW", 3, 10, "07/02/20")
	require.NoError(t, err)

	assert.InDelta(t, 3.98, c.InitialCharge, 1e-9)
	assert.InDelta(t, 0.398, c.DiscountAmount, 1e-9)
	assert.InDelta(t, 3.582, c.TotalCharge, 1e-9)
}

func TestRentItem_ValidationErrors(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		code     string
		days     int
		discount int
		start    string
		wantErr  error
		wantMsg  string
	}{
		{"discount above 100", "JAKR", 5, 101, "09/03/15", ErrInvalidDiscount, "discount rate must be between 0 and 100"},
		{"zero duration", "LADW", 0, 10, "07/02/20", ErrInvalidDuration, "rental duration must be 1 or greater"},
		{"negative duration", "LADW", -3, 10, "07/02/20", ErrInvalidDuration, ""},
		{"negative discount", "LADW", 3, -1, "07/02/20", ErrInvalidDiscount, ""},
		{"ladder discount above 100", "LADW", 3, 101, "07/02/20", ErrInvalidDiscount, ""},
		{"duration checked before discount", "LADW", 0, 101, "07/02/20", ErrInvalidDuration, ""},
		{"unknown item", "NOPE", 3, 10, "07/02/20", ErrItemNotFound, ""},
		{"item checked before date", "NOPE", 3, 10, "bad", ErrItemNotFound, ""},
		{"malformed date", "LADW", 3, 10, "2020-07-02", ErrInvalidDate, ""},
		{"impossible date", "LADW", 3, 10, "13/02/20", ErrInvalidDate, ""},
		{"duration over maximum", "JAKR", MaxRentalDays + 1, 0, "07/02/20", ErrInvalidDuration, "at most 3650 allowed"},
		{"duration of max int32", "JAKR", math.MaxInt32, 0, "07/02/20", ErrInvalidDuration, ""},
		{"duration that overflows the end date", "JAKR", math.MaxInt, 0, "07/02/20", ErrInvalidDuration, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := svc.RentItem(tt.code, tt.days, tt.discount, tt.start)
			require.Error(t, err)
			assert.Nil(t, c, "no partial contract on failure")
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRentItem_ShiftedHolidayVersusWeekend(t *testing.T) {
	// July 4th 2015 is a Saturday, observed on Friday July 3rd.
	// The ladder is free on holidays and charged on weekends.
	c, err := newTestService().Quote(RentalRequest{
		ItemCode: "LADW", RentalDays: 2, StartDate: "07/02/15", Breakdown: true,
	})
	require.NoError(t, err)

	require.Len(t, c.Days, 2)
	assert.Equal(t, civil.Date{Year: 2015, Month: time.July, Day: 3}, c.Days[0].Date)
	assert.Equal(t, domain.DayKindHoliday, c.Days[0].Kind)
	assert.False(t, c.Days[0].Billable)
	assert.Equal(t, domain.DayKindWeekend, c.Days[1].Kind)
	assert.True(t, c.Days[1].Billable)
	assert.Equal(t, 1, c.BillableDays)
}

func TestRentItem_LongestRental(t *testing.T) {
	svc := newTestService()

	c, err := svc.RentItem("CHNS", MaxRentalDays, 0, "01/01/20")
	require.NoError(t, err)
	assert.Equal(t, c.StartDate.AddDays(MaxRentalDays), c.EndDate)
	assert.True(t, c.EndDate.After(c.StartDate))
	assert.Empty(t, c.Days)

	// weekends are free for the chainsaw, so about 5 of every 7 days are charged
	assert.InDelta(t, MaxRentalDays*5/7, c.BillableDays, 5)

	c, err = svc.Quote(RentalRequest{ItemCode: "CHNS", RentalDays: MaxRentalDays, StartDate: "01/01/20", Breakdown: true})
	require.NoError(t, err)
	assert.Len(t, c.Days, MaxRentalDays)
}

func TestRentItem_Properties(t *testing.T) {
	svc := newTestService()
	starts := []string{"07/02/20", "07/02/15", "09/03/15", "12/30/21", "02/27/24"}
	discounts := []int{0, 10, 25, 50, 99, 100}

	for _, item := range svc.Items() {
		for _, start := range starts {
			for days := 1; days <= 21; days++ {
				for _, pct := range discounts {
					c, err := svc.RentItem(item.Code, days, pct, start)
					require.NoError(t, err)

					assert.Equal(t, c.InitialCharge-c.DiscountAmount, c.TotalCharge)
					assert.LessOrEqual(t, c.BillableDays, c.RentalDays)
					assert.GreaterOrEqual(t, c.BillableDays, 0)
					assert.Equal(t, c.StartDate.AddDays(days), c.EndDate)
					assert.Equal(t, float64(c.BillableDays)*item.DailyFee, c.InitialCharge)

					switch pct {
					case 0:
						assert.Equal(t, 0.0, c.DiscountAmount)
						assert.Equal(t, c.InitialCharge, c.TotalCharge)
					case 100:
						assert.Equal(t, 0.0, c.TotalCharge)
					}
				}
			}
		}
	}
}

func TestRentItem_ConcurrentCallers(t *testing.T) {
	svc := newTestService()

	var wg sync.WaitGroup
	results := make([]int, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := svc.RentItem("JAKR", 9, 0, "07/02/15")
			if err == nil {
				results[i] = c.BillableDays
			}
		}(i)
	}
	wg.Wait()

	for _, n := range results {
		assert.Equal(t, 5, n)
	}
}

func TestItemLookup(t *testing.T) {
	svc := newTestService()

	item, err := svc.Item("CHNS")
	require.NoError(t, err)
	assert.Equal(t, "Stihl", item.Brand)

	_, err = svc.Item("XXXX")
	assert.True(t, errors.Is(err, ErrItemNotFound))
}

func TestHolidays(t *testing.T) {
	hs := newTestService().Holidays(2015)
	require.Len(t, hs, 2)
	assert.Equal(t, civil.Date{Year: 2015, Month: time.July, Day: 3}, hs[0].Date)
	assert.Equal(t, civil.Date{Year: 2015, Month: time.September, Day: 7}, hs[1].Date)
}

func TestCustomCatalogInjection(t *testing.T) {
	cat, err := catalog.New(domain.Item{
		Code: "TRCH", Type: "Trencher", Brand: "Toro", DailyFee: 10,
		WeekdayCharge: true, WeekendCharge: true, HolidayCharge: true,
	})
	require.NoError(t, err)

	svc := NewRentalService(cat, holiday.NewCalendar(), nil)
	c, err := svc.RentItem("TRCH", 7, 0, "07/02/20")
	require.NoError(t, err)
	assert.Equal(t, 7, c.BillableDays)
	assert.Equal(t, 70.0, c.TotalCharge)

	_, err = svc.RentItem("LADW", 1, 0, "07/02/20")
	assert.True(t, errors.Is(err, ErrItemNotFound), "reference items are not implied")
}

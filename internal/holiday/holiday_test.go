package holiday

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestIndependenceDayObserved(t *testing.T) {
	tests := []struct {
		name string
		year int
		want civil.Date
	}{
		{"saturday moves to friday", 2015, date(2015, time.July, 3)},
		{"saturday moves to friday 2020", 2020, date(2020, time.July, 3)},
		{"sunday moves to monday", 2021, date(2021, time.July, 5)},
		{"weekday unchanged", 2019, date(2019, time.July, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndependenceDay().Observed(tt.year))
		})
	}
}

func TestLaborDayObserved(t *testing.T) {
	assert.Equal(t, date(2015, time.September, 7), LaborDay().Observed(2015))
	assert.Equal(t, date(2020, time.September, 7), LaborDay().Observed(2020))
	// September 1st is itself a Monday
	assert.Equal(t, date(2014, time.September, 1), LaborDay().Observed(2014))
	assert.Equal(t, date(2025, time.September, 1), LaborDay().Observed(2025))
}

func TestNthWeekday(t *testing.T) {
	thanksgiving := NthWeekday{Label: "Thanksgiving", Month: time.November, Weekday: time.Thursday, N: 4}
	assert.Equal(t, date(2020, time.November, 26), thanksgiving.Observed(2020))
	assert.Equal(t, date(2015, time.November, 26), thanksgiving.Observed(2015))
}

func TestFixedDatePastMonthEnd(t *testing.T) {
	leap := FixedDate{Label: "Leap Fest", Month: time.February, Day: 29}
	assert.Equal(t, date(2024, time.February, 29), leap.Observed(2024))
	assert.Equal(t, date(2021, time.February, 28), leap.Observed(2021))

	cal := NewCalendar(leap)
	hs := cal.Holidays(2021)
	require.Len(t, hs, 1)
	assert.True(t, hs[0].Date.IsValid())
	assert.True(t, cal.IsHoliday(hs[0].Date), "listed date is the one treated as a holiday")
	assert.False(t, cal.IsHoliday(date(2021, time.March, 1)))

	// 2021-02-28 is a Sunday
	shifted := FixedDate{Label: "Leap Fest", Month: time.February, Day: 29, ObserveWeekend: true}
	assert.Equal(t, date(2021, time.March, 1), shifted.Observed(2021))
}

func TestCalendarIsHoliday(t *testing.T) {
	cal := USCalendar()

	assert.True(t, cal.IsHoliday(date(2015, time.July, 3)))
	assert.False(t, cal.IsHoliday(date(2015, time.July, 4)), "nominal date is not observed when shifted")
	assert.True(t, cal.IsHoliday(date(2015, time.September, 7)))
	assert.True(t, cal.IsHoliday(date(2019, time.July, 4)))
	assert.False(t, cal.IsHoliday(date(2015, time.September, 1)))
	assert.False(t, cal.IsHoliday(date(2015, time.December, 25)))
}

func TestCalendarHolidaysSorted(t *testing.T) {
	cal := NewCalendar(LaborDay(), IndependenceDay())
	got := cal.Holidays(2020)
	require.Len(t, got, 2)
	assert.Equal(t, "Independence Day", got[0].Name)
	assert.Equal(t, date(2020, time.July, 3), got[0].Date)
	assert.Equal(t, "Labor Day", got[1].Name)
	assert.Equal(t, date(2020, time.September, 7), got[1].Date)
}

func TestIsHolidayAcrossYearBoundary(t *testing.T) {
	newYear := FixedDate{Label: "New Year's Day", Month: time.January, Day: 1, ObserveWeekend: true}
	cal := NewCalendar(newYear)

	// January 1st 2022 was a Saturday
	assert.True(t, cal.IsHoliday(date(2021, time.December, 31)))
	assert.False(t, cal.IsHoliday(date(2022, time.January, 1)))
}

func TestByName(t *testing.T) {
	r, ok := ByName("labor_day")
	require.True(t, ok)
	assert.Equal(t, "Labor Day", r.Name())

	_, ok = ByName("christmas")
	assert.False(t, ok)

	assert.Equal(t, []string{"independence_day", "labor_day"}, Names())
}

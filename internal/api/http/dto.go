package http

import (
	"time"

	"github.com/andy/toolrent/internal/domain"
	"github.com/andy/toolrent/internal/holiday"
)

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Money carries both the raw amount and its rounded display form
type Money struct {
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

func newMoney(v float64) Money {
	return Money{Amount: v, Display: domain.FormatMoney(v)}
}

type ItemResponse struct {
	Code          string `json:"code"`
	Type          string `json:"type"`
	Brand         string `json:"brand"`
	DailyCharge   Money  `json:"daily_charge"`
	WeekdayCharge bool   `json:"weekday_charge"`
	WeekendCharge bool   `json:"weekend_charge"`
	HolidayCharge bool   `json:"holiday_charge"`
}

func newItemResponse(item domain.Item) ItemResponse {
	return ItemResponse{
		Code:          item.Code,
		Type:          item.Type,
		Brand:         item.Brand,
		DailyCharge:   newMoney(item.DailyFee),
		WeekdayCharge: item.WeekdayCharge,
		WeekendCharge: item.WeekendCharge,
		HolidayCharge: item.HolidayCharge,
	}
}

type HolidayResponse struct {
	Name    string `json:"name"`
	Date    string `json:"date"` // MM/dd/yy
	Weekday string `json:"weekday"`
}

func newHolidayResponse(h holiday.Holiday) HolidayResponse {
	return HolidayResponse{
		Name:    h.Name,
		Date:    domain.FormatDate(h.Date),
		Weekday: h.Date.In(time.UTC).Weekday().String(),
	}
}

type RentalRequest struct {
	ItemCode        string `json:"item_code" binding:"required"`
	RentalDays      int    `json:"rental_days" binding:"max=3650"` // service.MaxRentalDays
	DiscountPercent int    `json:"discount_percent"`
	StartDate       string `json:"start_date" binding:"required"` // MM/dd/yy
}

type ChargeDayResponse struct {
	Date     string `json:"date"`
	Kind     string `json:"kind"`
	Billable bool   `json:"billable"`
}

type ContractResponse struct {
	ItemCode        string              `json:"item_code"`
	ItemType        string              `json:"item_type"`
	Brand           string              `json:"brand"`
	RentalDays      int                 `json:"rental_days"`
	StartDate       string              `json:"start_date"`
	EndDate         string              `json:"end_date"`
	DailyCharge     Money               `json:"daily_charge"`
	BillableDays    int                 `json:"billable_days"`
	InitialCharge   Money               `json:"initial_charge"`
	DiscountPercent int                 `json:"discount_percent"`
	DiscountAmount  Money               `json:"discount_amount"`
	TotalCharge     Money               `json:"total_charge"`
	Days            []ChargeDayResponse `json:"days,omitempty"`
}

func newContractResponse(c *domain.RentalContract, breakdown bool) ContractResponse {
	resp := ContractResponse{
		ItemCode:        c.Item.Code,
		ItemType:        c.Item.Type,
		Brand:           c.Item.Brand,
		RentalDays:      c.RentalDays,
		StartDate:       domain.FormatDate(c.StartDate),
		EndDate:         domain.FormatDate(c.EndDate),
		DailyCharge:     newMoney(c.Item.DailyFee),
		BillableDays:    c.BillableDays,
		InitialCharge:   newMoney(c.InitialCharge),
		DiscountPercent: c.DiscountPercent,
		DiscountAmount:  newMoney(c.DiscountAmount),
		TotalCharge:     newMoney(c.TotalCharge),
	}
	if breakdown {
		resp.Days = make([]ChargeDayResponse, len(c.Days))
		for i, d := range c.Days {
			resp.Days[i] = ChargeDayResponse{
				Date:     domain.FormatDate(d.Date),
				Kind:     d.Kind.String(),
				Billable: d.Billable,
			}
		}
	}
	return resp
}

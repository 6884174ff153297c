package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/andy/toolrent/internal/billing"
	"github.com/andy/toolrent/internal/catalog"
	"github.com/andy/toolrent/internal/domain"
	"github.com/andy/toolrent/internal/holiday"
)

// MaxRentalDays is the longest rental accepted, ten years
const MaxRentalDays = 3650

var (
	ErrInvalidDuration = errors.New("rental duration must be 1 or greater")
	ErrInvalidDiscount = errors.New("discount rate must be between 0 and 100")
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidDate     = errors.New("invalid start date")
)

// RentalRequest holds the four inputs of a rental
type RentalRequest struct {
	ItemCode        string
	RentalDays      int
	DiscountPercent int
	StartDate       string // MM/dd/yy

	// Breakdown fills RentalContract.Days with the per-day schedule
	Breakdown bool
}

// RentalService computes rental contracts against a fixed catalog and holiday calendar
type RentalService interface {
	// RentItem computes the contract for renting itemCode for rentalDays days
	// starting the day after startDate
	RentItem(itemCode string, rentalDays, discountPercent int, startDate string) (*domain.RentalContract, error)

	// Quote is RentItem with the inputs bundled in a request. The per-day
	// schedule is only built when req.Breakdown is set.
	Quote(req RentalRequest) (*domain.RentalContract, error)

	// Item looks up a single catalog entry
	Item(code string) (domain.Item, error)

	// Items lists the catalog ordered by code
	Items() []domain.Item

	// Holidays lists the observed holidays of a year
	Holidays(year int) []holiday.Holiday
}

type rentalService struct {
	catalog    *catalog.Catalog
	calendar   holiday.Provider
	classifier *billing.Classifier
	log        *zap.Logger
}

// NewRentalService creates a new rental service
func NewRentalService(cat *catalog.Catalog, calendar holiday.Provider, log *zap.Logger) RentalService {
	if log == nil {
		log = zap.NewNop()
	}
	return &rentalService{
		catalog:    cat,
		calendar:   calendar,
		classifier: billing.NewClassifier(calendar),
		log:        log.Named("rental"),
	}
}

func (s *rentalService) RentItem(itemCode string, rentalDays, discountPercent int, startDate string) (*domain.RentalContract, error) {
	return s.Quote(RentalRequest{
		ItemCode:        itemCode,
		RentalDays:      rentalDays,
		DiscountPercent: discountPercent,
		StartDate:       startDate,
	})
}

func (s *rentalService) Quote(req RentalRequest) (*domain.RentalContract, error) {
	contract, err := s.quote(req)
	if err != nil {
		s.log.Info("rental rejected",
			zap.String("item", req.ItemCode),
			zap.Int("days", req.RentalDays),
			zap.Int("discount", req.DiscountPercent),
			zap.String("start", req.StartDate),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Debug("rental computed",
		zap.String("item", contract.Item.Code),
		zap.Int("days", contract.RentalDays),
		zap.Int("billable_days", contract.BillableDays),
		zap.Float64("total", contract.TotalCharge),
	)
	return contract, nil
}

func (s *rentalService) quote(req RentalRequest) (*domain.RentalContract, error) {
	if req.RentalDays < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, req.RentalDays)
	}
	if req.RentalDays > MaxRentalDays {
		return nil, fmt.Errorf("%w: got %d, at most %d allowed", ErrInvalidDuration, req.RentalDays, MaxRentalDays)
	}
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDiscount, req.DiscountPercent)
	}

	item, err := s.Item(req.ItemCode)
	if err != nil {
		return nil, err
	}

	start, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	end := start.AddDays(req.RentalDays)
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end date %s is not after %s", ErrInvalidDuration, domain.FormatDate(end), domain.FormatDate(start))
	}

	billable := s.classifier.BillableDays(start, end, item)

	var days []domain.ChargeDay
	if req.Breakdown {
		days = s.classifier.Schedule(start, end, item)
	}

	initial := float64(billable) * item.DailyFee
	discount := initial * (float64(req.DiscountPercent) / 100)
	total := initial - discount

	return &domain.RentalContract{
		Item:            item,
		RentalDays:      req.RentalDays,
		StartDate:       start,
		EndDate:         end,
		BillableDays:    billable,
		InitialCharge:   initial,
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  discount,
		TotalCharge:     total,
		Days:            days,
	}, nil
}

func (s *rentalService) Item(code string) (domain.Item, error) {
	item, ok := s.catalog.Lookup(code)
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: %q", ErrItemNotFound, code)
	}
	return item, nil
}

func (s *rentalService) Items() []domain.Item {
	return s.catalog.Items()
}

func (s *rentalService) Holidays(year int) []holiday.Holiday {
	return s.calendar.Holidays(year)
}

package tui

import "github.com/andy/toolrent/internal/domain"

// SwitchScreenMsg requests a screen change
type SwitchScreenMsg struct {
	Screen Screen
}

// ErrorMsg carries error information
type ErrorMsg struct {
	Err error
}

// RentItemMsg opens the rent form with the item code filled in
type RentItemMsg struct {
	Code string
}

// rentalResultMsg carries the outcome of a quote
type rentalResultMsg struct {
	contract *domain.RentalContract
	err      error
}

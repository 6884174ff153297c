package domain

import "github.com/shopspring/decimal"

// FormatMoney renders an amount as "$X.YY", rounding half away from zero on
// the shortest decimal form of the value
func FormatMoney(amount float64) string {
	return "$" + RoundMoney(amount).StringFixed(2)
}

// RoundMoney returns the amount rounded to cents
func RoundMoney(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}

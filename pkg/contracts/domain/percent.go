package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percentage returns part/whole*100 rounded to two places.
// A zero or negative whole yields 0.
func Percentage(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(2).InexactFloat64()
}

// RatePercentage is Percentage for integer quantities.
func RatePercentage(part, whole int64) float64 {
	return Percentage(decimal.NewFromInt(part), decimal.NewFromInt(whole))
}

// RoundDays rounds an average duration to two places.
func RoundDays(days float64) float64 {
	return decimal.NewFromFloat(days).Round(2).InexactFloat64()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

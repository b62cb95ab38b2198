// internal/core/services/overview.go
package services

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// percent returns part/whole as a percentage rounded to one decimal place.
func percent(part, whole int) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(whole))).
		Round(1)
}

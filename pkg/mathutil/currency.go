// Package mathutil provides common decimal helpers for currency values.
package mathutil

import (
	"github.com/iwvelando/loan-organizer/pkg/constants"
	"github.com/shopspring/decimal"
)

var (
	currencyTolerance = decimal.RequireFromString(constants.CurrencyTolerance)
	monthsPerYear     = decimal.NewFromInt(constants.MonthsPerYear)
	percentMultiplier = decimal.NewFromInt(constants.PercentageMultiplier)
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons and presenting values.
func Round(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.CurrencyPlaces)
}

// IsZero checks if a value is effectively zero (within one cent)
func IsZero(val decimal.Decimal) bool {
	return val.Abs().LessThanOrEqual(currencyTolerance)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance decimal.Decimal) bool {
	return val1.Sub(val2).Abs().LessThanOrEqual(tolerance)
}

// ClampZero returns val, or zero when val is negative.
func ClampZero(val decimal.Decimal) decimal.Decimal {
	if val.IsNegative() {
		return decimal.Zero
	}
	return val
}

// MonthlyRate converts an annual rate fraction into the per-month rate.
func MonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(monthsPerYear)
}

// ToPercent converts a fraction (0.0525) into a percentage (5.25).
func ToPercent(fraction decimal.Decimal) decimal.Decimal {
	return fraction.Mul(percentMultiplier)
}

// Sum adds all values together.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

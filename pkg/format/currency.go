// Package format renders loan values as display strings.
package format

import (
	"time"

	"github.com/iwvelando/loan-organizer/pkg/constants"
	"github.com/iwvelando/loan-organizer/pkg/mathutil"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount decimal.Decimal) string {
	formatted := NumericCurrency(amount.Abs())
	if amount.Round(constants.CurrencyPlaces).IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount decimal.Decimal) string {
	return printer.Sprintf("%.2f", mathutil.Round(amount).InexactFloat64())
}

// Percent renders a fraction as a two-decimal percentage (0.0525 becomes "5.25%").
func Percent(fraction decimal.Decimal) string {
	return mathutil.ToPercent(fraction).StringFixed(constants.CurrencyPlaces) + "%"
}

// Date renders a date as MM/DD/YYYY.
func Date(t time.Time) string {
	return t.Format(constants.DisplayDateLayout)
}

// Package formatting renders decimal amounts for the dashboard metric tiles.
package formatting

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Currency formats an amount as "$1,234,567.89": thousands separators,
// always two decimal places.
func Currency(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return printer.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Percent formats a percentage value as "16.67%".
func Percent(pct decimal.Decimal) string {
	f, _ := pct.Float64()
	return printer.Sprintf("%v%%", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

package accounting

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as a fixed-locale USD string with two
// decimal places and thousands separators, e.g. "$1,234.56". Negative
// amounts render with the minus ahead of the symbol: "-$500.00". Fractions
// of a cent round half away from zero.
func FormatCurrency(amount decimal.Decimal) string {
	cents := amount.Shift(2).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}

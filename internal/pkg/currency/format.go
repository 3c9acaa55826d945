// internal/pkg/currency/format.go
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatIDR renders a minor-unit-free rupiah amount for display with
// zero fractional digits, e.g. 25000000 -> "Rp25.000.000". Presentation
// only; stored amounts stay plain integers.
func FormatIDR(amount int64) string {
	return printer.Sprintf("Rp%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol prefixes every rendered amount
const CurrencySymbol = "₹"

var printer = message.NewPrinter(language.English)

// FormatCurrency renders an amount with digit grouping, e.g. ₹12,500.
// Fractions are shown to two places only when present.
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	rounded := amount.Round(2)
	if rounded.Equal(rounded.Truncate(0)) {
		return sign + CurrencySymbol + printer.Sprintf("%d", rounded.IntPart())
	}
	return sign + CurrencySymbol + printer.Sprintf("%.2f", rounded.InexactFloat64())
}

// FormatNumber renders a whole number with digit grouping
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatRatio renders a return ratio such as 1.80x
func FormatRatio(ratio decimal.Decimal) string {
	return ratio.StringFixed(2) + "x"
}

// FormatPercentage renders a whole percentage
func FormatPercentage(pct int) string {
	return printer.Sprintf("%d%%", pct)
}

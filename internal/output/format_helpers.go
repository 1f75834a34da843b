package output

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupedPrinter = message.NewPrinter(language.English)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatGroupedCurrency formats an amount with thousands separators: $1,234.50.
func FormatGroupedCurrency(amount float64) string {
	rounded := decimal.NewFromFloat(amount).Round(2).InexactFloat64()
	if rounded < 0 {
		return "-$" + groupedPrinter.Sprintf("%.2f", -rounded)
	}
	return "$" + groupedPrinter.Sprintf("%.2f", rounded)
}

// ratioPct renders a 0..1 ratio as a percentage.
func ratioPct(v float64) string { return FormatPercentage(decimal.NewFromFloat(v * 100)) }

func fixed(v float64) string { return decimal.NewFromFloat(v).StringFixed(2) }

func intToString(v int) string { return strconv.Itoa(v) }

func boolToString(v bool) string { return strconv.FormatBool(v) }

package components

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders a dollar amount with grouping and at most two
// fraction digits: 2847 -> "$2,847", 3.2 -> "$3.2"
func FormatCurrency(amount float64) string {
	return printer.Sprintf("$%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}

// FormatNumber renders n with thousands separators
func FormatNumber(n int) string {
	return printer.Sprintf("%v", number.Decimal(n))
}

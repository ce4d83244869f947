package pricing

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Quote documents are printed in Dutch number formatting regardless of
// the UI language: "." groups thousands, "," separates decimals.
var dutch = message.NewPrinter(language.Dutch)

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

// FormatNumber renders a number with two decimals in Dutch notation,
// e.g. 4433.13 becomes "4.433,13". NaN renders as "0,00".
func FormatNumber(val float64) string {
	if math.IsNaN(val) {
		return "0,00"
	}
	return dutch.Sprintf("%v", number.Decimal(val,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// FormatCurrency renders a money amount with its currency symbol in
// Dutch notation, e.g. "€ 4.433,13". Unknown ISO codes fall back to
// the code itself. NaN renders as "€ 0,00".
func FormatCurrency(val float64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency
	}
	if math.IsNaN(val) {
		return symbol + " 0,00"
	}
	return symbol + " " + FormatNumber(val)
}

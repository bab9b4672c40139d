package domain

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Roi computes return on investment as a percentage. A zero investment yields
// 0 rather than a non-finite value.
func Roi(earnings, investment float64) float64 {
	if investment == 0 {
		return 0
	}
	return earnings / investment * 100
}

// Initials builds a two-letter avatar abbreviation from the first rune of
// each whitespace-separated name token.
func Initials(name string) string {
	var b strings.Builder
	taken := 0
	for _, word := range strings.Fields(name) {
		b.WriteRune([]rune(word)[0])
		taken++
		if taken == 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a USD amount for display, e.g. "$ 100,000.00".
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprint(currency.NarrowSymbol(currency.USD.Amount(amount)))
}

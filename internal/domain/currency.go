package domain

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is an entry of the static currency table.
type Currency struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
	Name   string  `json:"name"`
}

// CurrencyCodes lists the supported currency codes in display order.
var CurrencyCodes = []string{"INR", "USD", "EUR", "GBP", "AUD", "CAD", "SGD", "AED"}

// Currencies is the static currency table keyed by code. Rates are nominal and never applied.
var Currencies = map[string]Currency{
	"INR": {Code: "INR", Symbol: "Rs", Rate: 1, Name: "Indian Rupee"},
	"USD": {Code: "USD", Symbol: "$", Rate: 0.012, Name: "US Dollar"},
	"EUR": {Code: "EUR", Symbol: "EUR", Rate: 0.011, Name: "Euro"},
	"GBP": {Code: "GBP", Symbol: "GBP", Rate: 0.0094, Name: "British Pound"},
	"AUD": {Code: "AUD", Symbol: "A$", Rate: 0.018, Name: "Australian Dollar"},
	"CAD": {Code: "CAD", Symbol: "C$", Rate: 0.016, Name: "Canadian Dollar"},
	"SGD": {Code: "SGD", Symbol: "S$", Rate: 0.016, Name: "Singapore Dollar"},
	"AED": {Code: "AED", Symbol: "AED", Rate: 0.044, Name: "UAE Dirham"},
}

var countryCurrency = map[string]string{
	"India":                "INR",
	"United States":        "USD",
	"USA":                  "USD",
	"United Kingdom":       "GBP",
	"UK":                   "GBP",
	"Germany":              "EUR",
	"France":               "EUR",
	"Italy":                "EUR",
	"Spain":                "EUR",
	"Netherlands":          "EUR",
	"Australia":            "AUD",
	"Canada":               "CAD",
	"Singapore":            "SGD",
	"United Arab Emirates": "AED",
	"UAE":                  "AED",
}

// DetectCurrencyByCountry maps a country name to its currency code, defaulting to USD.
func DetectCurrencyByCountry(country string) string {
	if code, ok := countryCurrency[strings.TrimSpace(country)]; ok {
		return code
	}
	return "USD"
}

// IsSupportedCurrency reports whether code is in the currency table.
func IsSupportedCurrency(code string) bool {
	_, ok := Currencies[code]
	return ok
}

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// displaySymbols are the prefixes an en-US currency formatter prints. They differ from the
// table symbols, which are kept as stored.
var displaySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"AUD": "A$",
	"CAD": "CA$",
	"SGD": "SGD\u00a0",
	"AED": "AED\u00a0",
}

// FormatPrice renders a whole-unit price the way an en-US currency formatter does
// ("₹12,499", "$149", "CA$199"). Unknown currencies yield the bare number.
func FormatPrice(price int, code string) string {
	prefix, ok := displaySymbols[code]
	if !ok {
		return pricePrinter.Sprintf("%d", price)
	}
	sign := ""
	if price < 0 {
		sign, price = "-", -price
	}
	return sign + prefix + pricePrinter.Sprintf("%d", price)
}

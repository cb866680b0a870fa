package models

// DefaultCurrency is assigned to new users at registration.
const DefaultCurrency = "USD"

var validCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"GBP": true,
	"JPY": true,
	"INR": true,
	"AUD": true,
	"CAD": true,
}

// ValidCurrency reports whether code is one of the supported currencies.
func ValidCurrency(code string) bool {
	return validCurrencies[code]
}

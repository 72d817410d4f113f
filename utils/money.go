package utils

import "fmt"

// currencySymbols maps ISO currency codes to display symbols.
var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

// CurrencySymbol returns the display symbol for a currency code. Unknown and
// empty codes fall back to the euro symbol, matching the marketplace default.
func CurrencySymbol(currency string) string {
	if sym, ok := currencySymbols[currency]; ok {
		return sym
	}
	if currency == "" {
		return "€"
	}
	return currency
}

// FormatMoney formats an amount with its currency symbol, e.g. "€1500.00".
func FormatMoney(currency string, amount float64) string {
	return fmt.Sprintf("%s%.2f", CurrencySymbol(currency), amount)
}

package domain

// CurrencyConfig describes how to render money for a user's country.
type CurrencyConfig struct {
	Code   string
	Symbol string
}

var countryCurrencies = map[string]CurrencyConfig{
	"united_kingdom": {Code: "GBP", Symbol: "£"},
	"ireland":        {Code: "EUR", Symbol: "€"},
	"united_states":  {Code: "USD", Symbol: "$"},
	"canada":         {Code: "CAD", Symbol: "$"},
	"australia":      {Code: "AUD", Symbol: "$"},
	"new_zealand":    {Code: "NZD", Symbol: "$"},
	"germany":        {Code: "EUR", Symbol: "€"},
	"france":         {Code: "EUR", Symbol: "€"},
	"netherlands":    {Code: "EUR", Symbol: "€"},
	"spain":          {Code: "EUR", Symbol: "€"},
	"italy":          {Code: "EUR", Symbol: "€"},
}

var defaultCurrency = CurrencyConfig{Code: "USD", Symbol: "$"}

// CurrencyForCountry maps an onboarding country value to its currency.
// Unknown or missing countries fall back to USD.
func CurrencyForCountry(country *string) CurrencyConfig {
	if country == nil {
		return defaultCurrency
	}
	if cfg, ok := countryCurrencies[*country]; ok {
		return cfg
	}
	return defaultCurrency
}

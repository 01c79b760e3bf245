package model

const (
	DefaultSiteName = "EPOS System"
	DefaultCurrency = "$"
)

// SupportedCurrencies lists the currency symbols the register can display.
var SupportedCurrencies = []string{"$", "£", "€"}

type Settings struct {
	SiteName string `json:"site_name"`
	Currency string `json:"currency"`
}

func IsSupportedCurrency(symbol string) bool {
	for _, c := range SupportedCurrencies {
		if c == symbol {
			return true
		}
	}
	return false
}

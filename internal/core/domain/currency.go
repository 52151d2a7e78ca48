package domain

// CanonicalCurrency is the base currency all stored prices are denominated in.
const CanonicalCurrency = "USD"

// SymbolPosition controls where the currency symbol is rendered relative to the amount.
type SymbolPosition string

const (
	SymbolPrefix SymbolPosition = "prefix" // "$1,234.50"
	SymbolSuffix SymbolPosition = "suffix" // "1.234,50 €" style, rendered with a space
)

// CurrencyConfig represents a supported display currency in the reference catalog.
type CurrencyConfig struct {
	Code           string         `json:"code"`        // e.g., "USD"
	Symbol         string         `json:"symbol"`      // e.g., "$"
	DisplayName    string         `json:"displayName"` // e.g., "US Dollar"
	FlagGlyph      string         `json:"flag"`
	DecimalPlaces  int            `json:"decimalPlaces"` // 0 for currencies displayed without a minor unit
	SymbolPosition SymbolPosition `json:"symbolPosition"`
}

package domain

import "github.com/shopspring/decimal"

// DisplayPrice is a converted amount ready for presentation.
type DisplayPrice struct {
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Formatted string          `json:"formatted"`
	// FellBack is set when the requested currency was unsupported and the
	// amount is shown in the canonical currency instead.
	FellBack bool `json:"fellBack"`
}

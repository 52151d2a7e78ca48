package dto

import (
	"time"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
)

// FXRatesResponse is the rate endpoint payload. Rates are quoted against Base.
type FXRatesResponse struct {
	Success   bool               `json:"success"`
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Timestamp time.Time          `json:"timestamp"`
	Refreshed bool               `json:"refreshed,omitempty"`
}

// ErrorResponse is returned by endpoints that report failures with a success flag.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ToFXRatesResponse converts a domain.RateTable to FXRatesResponse DTO.
// Tables that were never fetched live are stamped with now.
func ToFXRatesResponse(table domain.RateTable, now time.Time) FXRatesResponse {
	rates := make(map[string]float64, len(table.Rates))
	for code, rate := range table.Rates {
		rates[code] = rate.InexactFloat64()
	}
	ts := table.FetchedAt
	if ts.IsZero() {
		ts = now
	}
	return FXRatesResponse{
		Success:   true,
		Base:      table.Base,
		Rates:     rates,
		Timestamp: ts.UTC(),
	}
}

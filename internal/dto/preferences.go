package dto

import (
	"time"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
)

// SetRegionRequest selects a region. Unknown regions are accepted and reported as ignored.
type SetRegionRequest struct {
	Region string `json:"region" binding:"required"`
}

// SetCountryRequest selects a country by ISO 3166-1 alpha-2 code.
type SetCountryRequest struct {
	Country string `json:"country" binding:"required,country_code"`
}

// SetCurrencyRequest selects a display currency by ISO 4217 code.
type SetCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,currency_code"`
}

// RegionPreferenceResponse defines the region selection returned to the storefront.
type RegionPreferenceResponse struct {
	Outcome   domain.Outcome   `json:"outcome,omitempty"`
	Region    *domain.Region   `json:"region"`
	Country   *domain.Country  `json:"country"`
	IsLoading bool             `json:"isLoading"`
	Countries []domain.Country `json:"countries"`
}

// CurrencyPreferenceResponse defines the currency selection returned to the storefront.
type CurrencyPreferenceResponse struct {
	Outcome     domain.Outcome          `json:"outcome,omitempty"`
	Currency    string                  `json:"currency"`
	Config      domain.CurrencyConfig   `json:"config"`
	IsLoading   bool                    `json:"isLoading"`
	LastUpdated *time.Time              `json:"lastUpdated"`
	Available   []domain.CurrencyConfig `json:"available"`
}

// ToRegionPreferenceResponse converts a selection to RegionPreferenceResponse DTO.
// Countries lists the selected region's countries, or is empty when no region is selected.
func ToRegionPreferenceResponse(outcome domain.Outcome, sel domain.RegionSelection, countries []domain.Country) RegionPreferenceResponse {
	if countries == nil {
		countries = []domain.Country{}
	}
	return RegionPreferenceResponse{
		Outcome:   outcome,
		Region:    sel.Region,
		Country:   sel.Country,
		IsLoading: sel.IsLoading,
		Countries: countries,
	}
}

// ToCurrencyPreferenceResponse converts a selection to CurrencyPreferenceResponse DTO.
func ToCurrencyPreferenceResponse(outcome domain.Outcome, sel domain.CurrencySelection, available []domain.CurrencyConfig) CurrencyPreferenceResponse {
	return CurrencyPreferenceResponse{
		Outcome:     outcome,
		Currency:    sel.Currency,
		Config:      sel.Config,
		IsLoading:   sel.IsLoading,
		LastUpdated: sel.LastUpdated,
		Available:   available,
	}
}

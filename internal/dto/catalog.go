package dto

import "github.com/SscSPs/pricex_locale/internal/core/domain"

// ListCountriesQuery filters the country catalog by region.
type ListCountriesQuery struct {
	Region string `form:"region"`
}

type ListRegionsResponse struct {
	Regions []domain.RegionInfo `json:"regions"`
}

type ListCountriesResponse struct {
	Countries []domain.Country `json:"countries"`
}

type ListCurrenciesResponse struct {
	Currencies []domain.CurrencyConfig `json:"currencies"`
}

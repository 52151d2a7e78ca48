package services

import (
	"github.com/SscSPs/pricex_locale/internal/core/domain"
)

// CatalogReaderSvc exposes the read-only reference catalog.
// Lookups never fail; a miss is reported through the boolean result.
type CatalogReaderSvc interface {
	Regions() []domain.RegionInfo
	HasRegion(region domain.Region) bool
	Countries() []domain.Country
	Country(code string) (domain.Country, bool)
	CountriesByRegion(region domain.Region) []domain.Country
	Currencies() []domain.CurrencyConfig
	Currency(code string) (domain.CurrencyConfig, bool)
}

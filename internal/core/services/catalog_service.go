package services

import (
	"strings"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
	portssvc "github.com/SscSPs/pricex_locale/internal/core/ports/services"
)

// Catalog is the read-only reference catalog of regions, countries and currencies.
// It is built once at start-up and safe for concurrent use.
type Catalog struct {
	regions    []domain.RegionInfo
	countries  []domain.Country
	currencies []domain.CurrencyConfig

	regionSet     map[domain.Region]struct{}
	countryByCode map[string]domain.Country
	byRegion      map[domain.Region][]domain.Country
	currencyByID  map[string]domain.CurrencyConfig
}

var _ portssvc.CatalogReaderSvc = (*Catalog)(nil)

// NewCatalog returns the storefront's default catalog.
func NewCatalog() *Catalog {
	return NewCatalogFrom(defaultRegions, defaultCountries, defaultCurrencies)
}

// NewCatalogFrom builds a catalog from custom data, keeping the given order.
func NewCatalogFrom(regions []domain.RegionInfo, countries []domain.Country, currencies []domain.CurrencyConfig) *Catalog {
	c := &Catalog{
		regions:       append([]domain.RegionInfo(nil), regions...),
		countries:     append([]domain.Country(nil), countries...),
		currencies:    append([]domain.CurrencyConfig(nil), currencies...),
		regionSet:     make(map[domain.Region]struct{}, len(regions)),
		countryByCode: make(map[string]domain.Country, len(countries)),
		byRegion:      make(map[domain.Region][]domain.Country, len(regions)),
		currencyByID:  make(map[string]domain.CurrencyConfig, len(currencies)),
	}
	for _, r := range c.regions {
		c.regionSet[r.ID] = struct{}{}
	}
	for _, country := range c.countries {
		c.countryByCode[strings.ToUpper(country.Code)] = country
		c.byRegion[country.Region] = append(c.byRegion[country.Region], country)
	}
	for _, cur := range c.currencies {
		c.currencyByID[strings.ToUpper(cur.Code)] = cur
	}
	return c
}

func (c *Catalog) Regions() []domain.RegionInfo {
	return append([]domain.RegionInfo(nil), c.regions...)
}

func (c *Catalog) HasRegion(region domain.Region) bool {
	_, ok := c.regionSet[region]
	return ok
}

func (c *Catalog) Countries() []domain.Country {
	return append([]domain.Country(nil), c.countries...)
}

// Country looks a country up by its code, ignoring case.
func (c *Catalog) Country(code string) (domain.Country, bool) {
	country, ok := c.countryByCode[strings.ToUpper(strings.TrimSpace(code))]
	return country, ok
}

// CountriesByRegion returns the countries of region in catalog order; empty when none exist.
func (c *Catalog) CountriesByRegion(region domain.Region) []domain.Country {
	return append([]domain.Country{}, c.byRegion[region]...)
}

func (c *Catalog) Currencies() []domain.CurrencyConfig {
	return append([]domain.CurrencyConfig(nil), c.currencies...)
}

// Currency looks a currency config up by its code, ignoring case.
func (c *Catalog) Currency(code string) (domain.CurrencyConfig, bool) {
	cur, ok := c.currencyByID[strings.ToUpper(strings.TrimSpace(code))]
	return cur, ok
}

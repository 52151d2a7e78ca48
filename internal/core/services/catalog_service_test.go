package services_test

import (
	"testing"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
	"github.com/SscSPs/pricex_locale/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Lookups(t *testing.T) {
	catalog := services.NewCatalog()

	us, ok := catalog.Country("us")
	require.True(t, ok)
	assert.Equal(t, domain.RegionNorthAmerica, us.Region)
	assert.Equal(t, "USD", us.DefaultCurrency)

	_, ok = catalog.Country("ZZ")
	assert.False(t, ok)

	jpy, ok := catalog.Currency(" jpy ")
	require.True(t, ok)
	assert.Equal(t, 0, jpy.DecimalPlaces)

	assert.True(t, catalog.HasRegion(domain.RegionMENA))
	assert.False(t, catalog.HasRegion("atlantis"))
	assert.Len(t, catalog.Regions(), 8)
}

func TestCatalog_CountriesByRegionKeepsOrder(t *testing.T) {
	catalog := services.NewCatalog()

	codes := func(cs []domain.Country) []string {
		out := make([]string, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.Code)
		}
		return out
	}

	assert.Equal(t, []string{"US", "CA", "MX"}, codes(catalog.CountriesByRegion(domain.RegionNorthAmerica)))
	assert.Equal(t, []string{"RU"}, codes(catalog.CountriesByRegion(domain.RegionRussia)))
	assert.Empty(t, catalog.CountriesByRegion("atlantis"))
}

func TestCatalog_EveryCountryResolves(t *testing.T) {
	catalog := services.NewCatalog()
	fallback := services.FallbackRateTable()

	for _, c := range catalog.Countries() {
		assert.True(t, catalog.HasRegion(c.Region), "country %s has unknown region %s", c.Code, c.Region)
		_, ok := catalog.Currency(c.DefaultCurrency)
		assert.True(t, ok, "country %s has unknown currency %s", c.Code, c.DefaultCurrency)
	}
	for _, cur := range catalog.Currencies() {
		_, ok := fallback.Rate(cur.Code)
		assert.True(t, ok, "currency %s has no fallback rate", cur.Code)
	}
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	catalog := services.NewCatalog()

	countries := catalog.Countries()
	countries[0].Code = "XX"

	_, ok := catalog.Country("US")
	assert.True(t, ok)
	assert.Equal(t, "US", catalog.Countries()[0].Code)
}

package services

import (
	"testing"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileLocale(t *testing.T) {
	catalog := NewCatalog()
	fr, _ := catalog.Country("FR")

	region, country := reconcileLocale(catalog, domain.RegionEurope, &fr)
	assert.Equal(t, domain.RegionEurope, region)
	require.NotNil(t, country)
	assert.Equal(t, "FR", country.Code)

	region, country = reconcileLocale(catalog, domain.RegionAsia, &fr)
	assert.Equal(t, domain.RegionAsia, region)
	require.NotNil(t, country)
	assert.Equal(t, "CN", country.Code)

	_, country = reconcileLocale(catalog, domain.RegionAfrica, nil)
	require.NotNil(t, country)
	assert.Equal(t, "ZA", country.Code)

	_, country = reconcileLocale(catalog, "atlantis", nil)
	assert.Nil(t, country)
}

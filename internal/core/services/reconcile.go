package services

import (
	"github.com/SscSPs/pricex_locale/internal/core/domain"
	portssvc "github.com/SscSPs/pricex_locale/internal/core/ports/services"
)

// reconcileLocale returns the consistent (region, country) pair for a requested region and
// the country that should go with it.
//
// A country that already belongs to region is kept; an explicit country selection passes its
// own region, so the country always wins. Otherwise the first catalog country of region is
// chosen, or none when the region has no countries.
func reconcileLocale(catalog portssvc.CatalogReaderSvc, region domain.Region, country *domain.Country) (domain.Region, *domain.Country) {
	if country != nil && country.Region == region {
		c := *country
		return region, &c
	}
	candidates := catalog.CountriesByRegion(region)
	if len(candidates) == 0 {
		return region, nil
	}
	first := candidates[0]
	return region, &first
}

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
	portssvc "github.com/SscSPs/pricex_locale/internal/core/ports/services"
	"github.com/SscSPs/pricex_locale/internal/dto"
	"github.com/SscSPs/pricex_locale/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler serves the read-only reference catalog.
type catalogHandler struct {
	catalog portssvc.CatalogReaderSvc
}

func newCatalogHandler(catalog portssvc.CatalogReaderSvc) *catalogHandler {
	return &catalogHandler{catalog: catalog}
}

// registerCatalogRoutes registers routes related to regions, countries and currencies.
func registerCatalogRoutes(rg *gin.RouterGroup, catalog portssvc.CatalogReaderSvc) {
	h := newCatalogHandler(catalog)

	cat := rg.Group("/catalog")
	{
		cat.GET("/regions", h.listRegions)
		cat.GET("/countries", h.listCountries)
		cat.GET("/currencies", h.listCurrencies)
	}
}

// listRegions godoc
// @Summary List regions
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.ListRegionsResponse
// @Router /catalog/regions [get]
func (h *catalogHandler) listRegions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ListRegionsResponse{Regions: h.catalog.Regions()})
}

// listCountries godoc
// @Summary List countries
// @Description Lists every supported country in catalog order, optionally filtered by region.
// @Tags catalog
// @Produce json
// @Param region query string false "Region ID, e.g. europe"
// @Success 200 {object} dto.ListCountriesResponse
// @Failure 400 {object} map[string]string "Unknown region"
// @Router /catalog/countries [get]
func (h *catalogHandler) listCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ListCountriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if query.Region == "" {
		c.JSON(http.StatusOK, dto.ListCountriesResponse{Countries: h.catalog.Countries()})
		return
	}

	region := domain.Region(strings.ToLower(query.Region))
	if !h.catalog.HasRegion(region) {
		logger.Warn("Unknown region requested", slog.String("region", query.Region))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown region: " + query.Region})
		return
	}
	c.JSON(http.StatusOK, dto.ListCountriesResponse{Countries: h.catalog.CountriesByRegion(region)})
}

// listCurrencies godoc
// @Summary List supported display currencies
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.ListCurrenciesResponse
// @Router /catalog/currencies [get]
func (h *catalogHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ListCurrenciesResponse{Currencies: h.catalog.Currencies()})
}

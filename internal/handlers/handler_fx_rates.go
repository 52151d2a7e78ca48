package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
	portssvc "github.com/SscSPs/pricex_locale/internal/core/ports/services"
	"github.com/SscSPs/pricex_locale/internal/dto"
	"github.com/SscSPs/pricex_locale/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	fetchRatesFailed   = "Failed to fetch FX rates"
	refreshRatesFailed = "Failed to refresh FX rates"
)

// fxRatesHandler serves the shared rate table.
type fxRatesHandler struct {
	rates portssvc.RateSourceSvc
	now   func() time.Time
}

func newFXRatesHandler(rates portssvc.RateSourceSvc) *fxRatesHandler {
	return &fxRatesHandler{rates: rates, now: time.Now}
}

// registerFXRatesRoutes registers the rate endpoint. refreshLimit guards the refresh route.
func registerFXRatesRoutes(rg *gin.RouterGroup, rates portssvc.RateSourceSvc, refreshLimit gin.HandlerFunc) {
	h := newFXRatesHandler(rates)

	fx := rg.Group("/fx-rates")
	{
		fx.GET("", h.getRates)
		fx.POST("", withOptional(refreshLimit, h.refreshRates)...)
	}
}

// getRates godoc
// @Summary Get current FX rates
// @Description Returns the last good rate table, or the built-in fallback table when no live fetch has succeeded.
// @Tags fx-rates
// @Produce json
// @Param base query string false "Quote the table against this currency (default USD)"
// @Success 200 {object} dto.FXRatesResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown base currency"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch FX rates"
// @Router /fx-rates [get]
func (h *fxRatesHandler) getRates(c *gin.Context) {
	h.respond(c, h.rates.GetRates(), false, fetchRatesFailed)
}

// refreshRates godoc
// @Summary Refresh FX rates
// @Description Attempts a live fetch and returns the resulting table. A failed fetch keeps the previous table.
// @Tags fx-rates
// @Produce json
// @Param base query string false "Quote the table against this currency (default USD)"
// @Success 200 {object} dto.FXRatesResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown base currency"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Failed to refresh FX rates"
// @Router /fx-rates [post]
func (h *fxRatesHandler) refreshRates(c *gin.Context) {
	h.respond(c, h.rates.Refresh(c.Request.Context()), true, refreshRatesFailed)
}

func (h *fxRatesHandler) respond(c *gin.Context, table domain.RateTable, refreshed bool, failure string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if !table.Valid() {
		logger.Error("Rate table failed validation", slog.String("base", table.Base), slog.Int("currencies", len(table.Rates)))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: failure})
		return
	}

	if base := strings.ToUpper(strings.TrimSpace(c.Query("base"))); base != "" {
		rebased, ok := table.Rebase(base)
		if !ok {
			logger.Warn("Unknown base currency requested", slog.String("base", base))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Error: "Unknown base currency: " + base})
			return
		}
		table = rebased
	}

	resp := dto.ToFXRatesResponse(table, h.now())
	resp.Refreshed = refreshed
	c.JSON(http.StatusOK, resp)
}

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

// preferenceHandler reads and changes the region, country and currency of the caller's session.
type preferenceHandler struct {
	sessions portssvc.SessionProviderSvc
}

func newPreferenceHandler(sessions portssvc.SessionProviderSvc) *preferenceHandler {
	return &preferenceHandler{sessions: sessions}
}

// registerPreferenceRoutes registers the session-scoped preference routes.
// refreshLimit, when set, guards the rate refresh route.
func registerPreferenceRoutes(rg *gin.RouterGroup, sessions portssvc.SessionProviderSvc, refreshLimit gin.HandlerFunc) {
	h := newPreferenceHandler(sessions)

	prefs := rg.Group("/preferences")
	{
		prefs.GET("/region", h.getRegion)
		prefs.PUT("/region", h.setRegion)
		prefs.PUT("/country", h.setCountry)
		prefs.GET("/currency", h.getCurrency)
		prefs.PUT("/currency", h.setCurrency)
		prefs.POST("/currency/refresh", withOptional(refreshLimit, h.refreshCurrencyRates)...)
	}
}

// session resolves the caller's session, writing an error response when there is none.
func (h *preferenceHandler) session(c *gin.Context) (*portssvc.Session, bool) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Session ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return nil, false
	}
	return h.sessions.Session(c.Request.Context(), sessionID), true
}

func regionResponse(outcome domain.Outcome, region portssvc.RegionPreferenceSvc) dto.RegionPreferenceResponse {
	sel := region.Snapshot()
	var countries []domain.Country
	if sel.Region != nil {
		countries = region.CountriesByRegion(*sel.Region)
	}
	return dto.ToRegionPreferenceResponse(outcome, sel, countries)
}

func currencyResponse(outcome domain.Outcome, currency portssvc.CurrencyPreferenceSvc) dto.CurrencyPreferenceResponse {
	return dto.ToCurrencyPreferenceResponse(outcome, currency.Snapshot(), currency.AvailableCurrencies())
}

// getRegion godoc
// @Summary Get the region preference
// @Description Returns the selected region and country of the session, if any.
// @Tags preferences
// @Produce json
// @Param X-Session-Token header string false "Session token; a new session is started when absent"
// @Success 200 {object} dto.RegionPreferenceResponse
// @Router /preferences/region [get]
func (h *preferenceHandler) getRegion(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, regionResponse("", s.Region))
}

// setRegion godoc
// @Summary Select a region
// @Description Keeps the selected country when it belongs to the region, otherwise selects the region's first country. Unknown regions are reported as ignored.
// @Tags preferences
// @Accept json
// @Produce json
// @Param X-Session-Token header string false "Session token"
// @Param request body dto.SetRegionRequest true "Region"
// @Success 200 {object} dto.RegionPreferenceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /preferences/region [put]
func (h *preferenceHandler) setRegion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetRegion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	s, ok := h.session(c)
	if !ok {
		return
	}

	outcome := s.Region.SetRegion(c.Request.Context(), domain.Region(strings.ToLower(strings.TrimSpace(req.Region))))
	logger.Info("Region preference updated", slog.String("region", req.Region), slog.String("outcome", string(outcome)))
	c.JSON(http.StatusOK, regionResponse(outcome, s.Region))
}

// setCountry godoc
// @Summary Select a country
// @Description Selects a country and its region. Unknown countries are reported as ignored and nothing is persisted.
// @Tags preferences
// @Accept json
// @Produce json
// @Param X-Session-Token header string false "Session token"
// @Param request body dto.SetCountryRequest true "Country"
// @Success 200 {object} dto.RegionPreferenceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /preferences/country [put]
func (h *preferenceHandler) setCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetCountry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	s, ok := h.session(c)
	if !ok {
		return
	}

	outcome := s.Region.SetCountry(c.Request.Context(), req.Country)
	logger.Info("Country preference updated", slog.String("country", req.Country), slog.String("outcome", string(outcome)))
	c.JSON(http.StatusOK, regionResponse(outcome, s.Region))
}

// getCurrency godoc
// @Summary Get the currency preference
// @Tags preferences
// @Produce json
// @Param X-Session-Token header string false "Session token"
// @Success 200 {object} dto.CurrencyPreferenceResponse
// @Router /preferences/currency [get]
func (h *preferenceHandler) getCurrency(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, currencyResponse("", s.Currency))
}

// setCurrency godoc
// @Summary Select a display currency
// @Description Unknown currencies are reported as ignored and the current selection is kept.
// @Tags preferences
// @Accept json
// @Produce json
// @Param X-Session-Token header string false "Session token"
// @Param request body dto.SetCurrencyRequest true "Currency"
// @Success 200 {object} dto.CurrencyPreferenceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /preferences/currency [put]
func (h *preferenceHandler) setCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	s, ok := h.session(c)
	if !ok {
		return
	}

	outcome := s.Currency.SetCurrency(c.Request.Context(), req.Currency)
	logger.Info("Currency preference updated", slog.String("currency", req.Currency), slog.String("outcome", string(outcome)))
	c.JSON(http.StatusOK, currencyResponse(outcome, s.Currency))
}

// refreshCurrencyRates godoc
// @Summary Refresh exchange rates for the session
// @Description Triggers a rate refresh and returns the currency state with the new last-updated time. A failed refresh keeps the previous rates.
// @Tags preferences
// @Produce json
// @Param X-Session-Token header string false "Session token"
// @Success 200 {object} dto.CurrencyPreferenceResponse
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /preferences/currency/refresh [post]
func (h *preferenceHandler) refreshCurrencyRates(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	s.Currency.RefreshRates(c.Request.Context())
	c.JSON(http.StatusOK, currencyResponse("", s.Currency))
}

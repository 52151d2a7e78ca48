package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	"github.com/SscSPs/pricex_locale/internal/core/domain"
	portssvc "github.com/SscSPs/pricex_locale/internal/core/ports/services"
	"github.com/SscSPs/pricex_locale/internal/dto"
	"github.com/SscSPs/pricex_locale/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// convertHandler converts and formats prices for display.
type convertHandler struct {
	converter portssvc.ConverterSvc
	sessions  portssvc.SessionProviderSvc
}

func newConvertHandler(converter portssvc.ConverterSvc, sessions portssvc.SessionProviderSvc) *convertHandler {
	return &convertHandler{converter: converter, sessions: sessions}
}

// registerConvertRoutes registers the conversion route.
func registerConvertRoutes(rg *gin.RouterGroup, converter portssvc.ConverterSvc, sessions portssvc.SessionProviderSvc) {
	h := newConvertHandler(converter, sessions)
	rg.GET("/convert", h.convert)
}

// convert godoc
// @Summary Convert a price
// @Description Converts amount from one currency to another and formats it. The target defaults to the session's display currency. When the target is unsupported the amount is shown in USD instead.
// @Tags convert
// @Produce json
// @Param X-Session-Token header string false "Session token"
// @Param amount query string true "Non-negative decimal amount"
// @Param from query string false "Source currency (default USD)"
// @Param to query string false "Target currency (default: session currency)"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} dto.ConvertResponse "Unsupported currency; amount shown in USD"
// @Router /convert [get]
func (h *convertHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ConvertQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(query.Amount))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a decimal number"})
		return
	}

	from := strings.ToUpper(query.From)
	if from == "" {
		from = domain.CanonicalCurrency
	}
	to := strings.ToUpper(query.To)
	if to == "" {
		to = h.sessionCurrency(c)
	}

	price, err := h.converter.Display(amount, from, to)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCurrencyUnsupported):
			logger.Warn("Unsupported currency in conversion", slog.String("from", from), slog.String("to", to))
			resp := dto.ToConvertResponse(from, price)
			resp.Error = err.Error()
			c.JSON(http.StatusUnprocessableEntity, resp)
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to convert price", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert price"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConvertResponse(from, price))
}

func (h *convertHandler) sessionCurrency(c *gin.Context) string {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok || h.sessions == nil {
		return domain.CanonicalCurrency
	}
	return h.sessions.Session(c.Request.Context(), sessionID).Currency.Currency()
}

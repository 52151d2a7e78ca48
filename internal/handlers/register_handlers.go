package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pricex_locale/cmd/docs"
	portssvc "github.com/SscSPs/pricex_locale/internal/core/ports/services"
	"github.com/SscSPs/pricex_locale/internal/middleware"
	"github.com/SscSPs/pricex_locale/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// HealthCheck reports whether an external dependency is reachable.
type HealthCheck func(ctx context.Context) error

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// refreshLimiter may be nil to leave the refresh routes unlimited.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	refreshLimiter *limiter.Limiter,
	checks ...HealthCheck,
) {
	r.GET("/", getHome)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		for _, check := range checks {
			if err := check(c.Request.Context()); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "UNAVAILABLE")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, cfg, services, refreshLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	refreshLimiter *limiter.Limiter,
) {
	var refreshLimit gin.HandlerFunc
	if refreshLimiter != nil {
		refreshLimit = middleware.RateLimit(refreshLimiter)
	}

	v1 := r.Group("/api/v1")
	registerFXRatesRoutes(v1, services.Rates, refreshLimit)
	registerCatalogRoutes(v1, services.Catalog)

	// Session-scoped routes
	scoped := v1.Group("", middleware.SessionMiddleware(cfg.SessionSecret, cfg.SessionTokenExpiry))
	registerPreferenceRoutes(scoped, services.Sessions, refreshLimit)
	registerConvertRoutes(scoped, services.Converter, services.Sessions)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// withOptional prepends mw to h when mw is set.
func withOptional(mw gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	if mw == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{mw, h}
}

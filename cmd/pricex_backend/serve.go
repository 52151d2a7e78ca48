package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/pricex_locale/internal/core/services"
	"github.com/SscSPs/pricex_locale/internal/dto"
	"github.com/SscSPs/pricex_locale/internal/handlers"
	"github.com/SscSPs/pricex_locale/internal/middleware"
	"github.com/SscSPs/pricex_locale/internal/platform/config"
	"github.com/SscSPs/pricex_locale/internal/platform/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCommand(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API and the periodic rate refresher",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	deps, err := openDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	container, err := services.NewServiceContainer(ctx, cfg, deps.repos, metrics.New(prometheus.DefaultRegisterer))
	if err != nil {
		return err
	}

	if deps.repos.RateProvider != nil {
		go services.NewRateRefresher(container.Rates, cfg.FXRefreshInterval).Run(middleware.WithLogger(ctx, logger))
	}

	if err := dto.RegisterValidators(); err != nil {
		return err
	}

	var (
		limiterClient *redis.Client
		checks        []handlers.HealthCheck
	)
	if deps.redis != nil {
		limiterClient = deps.redis.Client
		checks = append(checks, deps.redis.Health)
	}
	refreshLimiter, err := middleware.NewLimiter(cfg.RateLimitRefresh, limiterClient)
	if err != nil {
		return err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AddAllowHeaders(middleware.SessionTokenHeader)
	corsConfig.AddExposeHeaders(middleware.SessionTokenHeader, "X-Request-ID")
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	handlers.RegisterRoutes(r, cfg, container, refreshLimiter, checks...)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pricex_locale/internal/adapters/ratesapi"
	portsrepo "github.com/SscSPs/pricex_locale/internal/core/ports/repositories"
	"github.com/SscSPs/pricex_locale/internal/platform/config"
	platformredis "github.com/SscSPs/pricex_locale/internal/platform/redis"
	"github.com/SscSPs/pricex_locale/internal/repositories/database/pgsql"
	"github.com/SscSPs/pricex_locale/internal/repositories/file"
	"github.com/SscSPs/pricex_locale/internal/repositories/memory"
	redisrepo "github.com/SscSPs/pricex_locale/internal/repositories/redis"
	"github.com/SscSPs/pricex_locale/pkg/database"
)

// dependencies holds the external connections opened for a command.
type dependencies struct {
	repos  portsrepo.RepositoryProvider
	redis  *platformredis.Client
	closer []func()
}

func (d *dependencies) Close() {
	for i := len(d.closer) - 1; i >= 0; i-- {
		d.closer[i]()
	}
}

// openDependencies connects the configured preference store, the rate cache (Redis when
// REDIS_URL is set, process memory otherwise) and the live rate provider.
func openDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	redisClient, err := platformredis.New(ctx, cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	if redisClient != nil {
		deps.redis = redisClient
		deps.repos.RateCache = redisrepo.NewRateCache(redisClient.Client)
		deps.closer = append(deps.closer, func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("Error closing redis client", slog.String("error", err.Error()))
			}
		})
		logger.Info("Redis connection established.")
	}

	var memStore *memory.Store
	if redisClient == nil {
		memStore = memory.NewStore()
		deps.repos.RateCache = memStore
	}

	switch cfg.PreferenceStore {
	case config.StoreMemory:
		if memStore == nil {
			memStore = memory.NewStore()
		}
		deps.repos.PreferenceRepo = memStore
	case config.StoreRedis:
		if redisClient == nil {
			deps.Close()
			return nil, fmt.Errorf("preference store %q requires REDIS_URL", cfg.PreferenceStore)
		}
		deps.repos.PreferenceRepo = redisrepo.NewPreferenceRepository(redisClient.Client)
	case config.StorePostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		deps.closer = append(deps.closer, func() { database.ClosePgxPool(dbPool) })
		deps.repos.PreferenceRepo = pgsql.NewPreferenceRepository(dbPool)
	default:
		repo, err := file.NewPreferenceRepository(cfg.PreferenceDir)
		if err != nil {
			deps.Close()
			return nil, err
		}
		deps.repos.PreferenceRepo = repo
	}
	logger.Info("Preference store ready", slog.String("store", cfg.PreferenceStore))

	if cfg.FXRatesURL != "" {
		deps.repos.RateProvider = ratesapi.New(&http.Client{Timeout: cfg.FXRequestTimeout}, cfg.FXRatesURL)
	} else {
		logger.Info("FX_RATES_URL not set, serving the fallback rate table")
	}

	return deps, nil
}

package services

import (
	"context"

	portsrepo "github.com/SscSPs/pricex_locale/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pricex_locale/internal/core/ports/services"
	"github.com/SscSPs/pricex_locale/internal/platform/config"
)

// Recorder receives refresh and storage outcomes. A nil Recorder disables reporting.
type Recorder interface {
	RefreshRecorder
	StorageRecorder
}

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The rate source is warmed from the rate cache before the container is returned.
func NewServiceContainer(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider, recorder Recorder) (*portssvc.ServiceContainer, error) {
	catalog := NewCatalog()

	var (
		refreshRecorder RefreshRecorder
		storageRecorder StorageRecorder
	)
	if recorder != nil {
		refreshRecorder = recorder
		storageRecorder = recorder
	}

	opts := []RateSourceOption{
		WithFetchTimeout(cfg.FXRequestTimeout),
		WithRefreshRecorder(refreshRecorder),
	}
	if repos.RateCache != nil {
		opts = append(opts, WithRateCache(repos.RateCache, cfg.FXCacheTTL))
	}
	rates := NewRateSource(repos.RateProvider, opts...)
	rates.Warm(ctx)

	storage := NewPreferenceStorage(repos.PreferenceRepo, storageRecorder)
	sessions, err := NewSessionRegistry(catalog, rates, storage, cfg.MaxSessions)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Catalog:   catalog,
		Rates:     rates,
		Converter: NewPriceConverter(rates, catalog),
		Sessions:  sessions,
	}, nil
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CatalogReaderSvc      = (*Catalog)(nil)
	_ portssvc.ConverterSvc          = (*PriceConverter)(nil)
	_ portssvc.RegionPreferenceSvc   = (*RegionPreferenceManager)(nil)
	_ portssvc.CurrencyPreferenceSvc = (*CurrencyPreferenceManager)(nil)
)

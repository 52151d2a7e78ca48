package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	"github.com/SscSPs/pricex_locale/internal/core/domain"
	portsrepo "github.com/SscSPs/pricex_locale/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pricex_locale/internal/core/ports/services"
)

// DefaultRateCacheTTL is how long a good live table stays in the rate cache.
const DefaultRateCacheTTL = time.Hour

// RefreshRecorder receives refresh outcomes, typically for metrics.
type RefreshRecorder interface {
	RefreshSucceeded()
	RefreshFailed()
	RefreshSkipped()
}

type noopRefreshRecorder struct{}

func (noopRefreshRecorder) RefreshSucceeded() {}
func (noopRefreshRecorder) RefreshFailed()    {}
func (noopRefreshRecorder) RefreshSkipped()   {}

// RateSource holds the current rate table and refreshes it from a provider.
// It never fails: every failure path keeps the table it already had.
type RateSource struct {
	BaseService
	provider     portsrepo.RateProvider
	cache        portsrepo.RateCacheFacade
	cacheTTL     time.Duration
	fetchTimeout time.Duration
	recorder     RefreshRecorder
	now          func() time.Time

	mu         sync.RWMutex
	table      domain.RateTable
	refreshing bool
}

var _ portssvc.RateSourceSvc = (*RateSource)(nil)

// RateSourceOption configures a RateSource.
type RateSourceOption func(*RateSource)

// WithRateCache backs the source with a cache that survives restarts.
func WithRateCache(cache portsrepo.RateCacheFacade, ttl time.Duration) RateSourceOption {
	return func(s *RateSource) {
		s.cache = cache
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithFetchTimeout bounds each provider call.
func WithFetchTimeout(timeout time.Duration) RateSourceOption {
	return func(s *RateSource) {
		s.fetchTimeout = timeout
	}
}

// WithRefreshRecorder reports refresh outcomes to recorder.
func WithRefreshRecorder(recorder RefreshRecorder) RateSourceOption {
	return func(s *RateSource) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// WithClock overrides the time source used to stamp fetched tables.
func WithClock(now func() time.Time) RateSourceOption {
	return func(s *RateSource) {
		if now != nil {
			s.now = now
		}
	}
}

// NewRateSource creates a RateSource that starts out serving the static fallback table.
func NewRateSource(provider portsrepo.RateProvider, opts ...RateSourceOption) *RateSource {
	s := &RateSource{
		provider: provider,
		cacheTTL: DefaultRateCacheTTL,
		recorder: noopRefreshRecorder{},
		now:      time.Now,
		table:    FallbackRateTable(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Warm replaces the fallback table with a cached live table, if one is available.
func (s *RateSource) Warm(ctx context.Context) {
	if s.cache == nil {
		return
	}
	cached, err := s.cache.FindCachedRates(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No cached rate table found")
			return
		}
		s.LogWarn(ctx, err, "Failed to read cached rate table, keeping fallback table")
		return
	}
	if cached == nil || cached.Base != domain.CanonicalCurrency || !cached.Valid() {
		s.LogInfo(ctx, "Ignoring invalid cached rate table")
		return
	}

	table := completeWithFallback(*cached)
	s.mu.Lock()
	s.table = table
	s.mu.Unlock()
	s.LogInfo(ctx, "Rate table restored from cache", slog.Time("fetched_at", table.FetchedAt))
}

// GetRates returns a copy of the current table.
func (s *RateSource) GetRates() domain.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Clone()
}

// IsRefreshing reports whether a refresh is in flight.
func (s *RateSource) IsRefreshing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshing
}

// Refresh fetches a live table. Failures and re-entrant calls return the current table.
func (s *RateSource) Refresh(ctx context.Context) domain.RateTable {
	s.mu.Lock()
	if s.refreshing {
		current := s.table.Clone()
		s.mu.Unlock()
		s.recorder.RefreshSkipped()
		s.LogDebug(ctx, "Rate refresh already in flight, skipping")
		return current
	}
	s.refreshing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	fetched, err := s.fetch(ctx)
	if err != nil {
		s.recorder.RefreshFailed()
		s.LogWarn(ctx, err, "Rate refresh failed, keeping previous table")
		return s.GetRates()
	}

	s.mu.Lock()
	s.table = fetched
	s.mu.Unlock()
	s.recorder.RefreshSucceeded()
	s.LogInfo(ctx, "Rate table refreshed",
		slog.Int("currencies", len(fetched.Rates)),
		slog.Time("fetched_at", fetched.FetchedAt))

	if s.cache != nil {
		if cerr := s.cache.SaveCachedRates(ctx, fetched, s.cacheTTL); cerr != nil {
			s.LogWarn(ctx, cerr, "Failed to cache rate table")
		}
	}
	return fetched.Clone()
}

func (s *RateSource) fetch(ctx context.Context) (domain.RateTable, error) {
	if s.provider == nil {
		return domain.RateTable{}, fmt.Errorf("%w: no provider configured", apperrors.ErrRateSourceUnavailable)
	}
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	table, err := s.provider.FetchRates(ctx)
	if err != nil {
		return domain.RateTable{}, err
	}
	if table.Base != domain.CanonicalCurrency {
		return domain.RateTable{}, fmt.Errorf("%w: unexpected base currency %q", apperrors.ErrRateSourceUnavailable, table.Base)
	}
	if !table.Valid() {
		return domain.RateTable{}, fmt.Errorf("%w: malformed rate table", apperrors.ErrRateSourceUnavailable)
	}

	table = completeWithFallback(table)
	table.FetchedAt = s.now()
	return table, nil
}

// completeWithFallback copies table and adds the fallback rate for every code it lacks.
func completeWithFallback(table domain.RateTable) domain.RateTable {
	completed := table.Clone()
	for code, rate := range fallbackRates {
		if _, ok := completed.Rates[code]; !ok {
			completed.Rates[code] = rate
		}
	}
	return completed
}

// RateRefresher refreshes a rate source on a fixed interval.
type RateRefresher struct {
	BaseService
	source   portssvc.RateSourceSvc
	interval time.Duration
}

// NewRateRefresher creates a new RateRefresher.
func NewRateRefresher(source portssvc.RateSourceSvc, interval time.Duration) *RateRefresher {
	return &RateRefresher{source: source, interval: interval}
}

// Run refreshes immediately and then on every tick until ctx is cancelled.
func (r *RateRefresher) Run(ctx context.Context) {
	r.source.Refresh(ctx)
	if r.interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.LogInfo(ctx, "Rate refresher stopped")
			return
		case <-ticker.C:
			r.source.Refresh(ctx)
		}
	}
}

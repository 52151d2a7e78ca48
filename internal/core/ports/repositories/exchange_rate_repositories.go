package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
)

// RateProvider fetches a rate table from a live source.
type RateProvider interface {
	// FetchRates returns a fresh table or an error; it never returns a partial table with a nil error.
	FetchRates(ctx context.Context) (domain.RateTable, error)
}

// RateCacheReader defines read operations for cached rate tables.
type RateCacheReader interface {
	// FindCachedRates returns the cached table or apperrors.ErrNotFound if none is cached.
	FindCachedRates(ctx context.Context) (*domain.RateTable, error)
}

// RateCacheWriter defines write operations for cached rate tables.
type RateCacheWriter interface {
	// SaveCachedRates stores the table for ttl.
	SaveCachedRates(ctx context.Context, table domain.RateTable, ttl time.Duration) error
}

// RateCacheFacade combines all rate-cache interfaces.
type RateCacheFacade interface {
	RateCacheReader
	RateCacheWriter
}

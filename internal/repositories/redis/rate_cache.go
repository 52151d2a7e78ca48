package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	"github.com/SscSPs/pricex_locale/internal/core/domain"
	portsrepo "github.com/SscSPs/pricex_locale/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// Redis key for the last good live rate table
const rateTableKey = "pricex:fx-rates:latest"

// RateCache shares the last good rate table between instances and restarts.
type RateCache struct {
	client *redis.Client
}

var _ portsrepo.RateCacheFacade = (*RateCache)(nil)

// NewRateCache creates a Redis-backed rate cache.
func NewRateCache(client *redis.Client) *RateCache {
	return &RateCache{client: client}
}

func (c *RateCache) FindCachedRates(ctx context.Context) (*domain.RateTable, error) {
	b, err := c.client.Get(ctx, rateTableKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached rates: %w", err)
	}

	var table domain.RateTable
	if err := json.Unmarshal(b, &table); err != nil {
		return nil, fmt.Errorf("failed to decode cached rates: %w", err)
	}
	return &table, nil
}

// SaveCachedRates stores table with SET EX so stale tables expire on their own.
func (c *RateCache) SaveCachedRates(ctx context.Context, table domain.RateTable, ttl time.Duration) error {
	b, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to encode rates: %w", err)
	}
	return c.client.Set(ctx, rateTableKey, b, ttl).Err()
}

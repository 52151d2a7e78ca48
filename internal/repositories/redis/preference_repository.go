// Package redis stores preference records and the shared rate table in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	portsrepo "github.com/SscSPs/pricex_locale/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// PreferenceRepository keeps each record under its storage key. Records do not expire.
type PreferenceRepository struct {
	client *redis.Client
}

var _ portsrepo.PreferenceRepositoryFacade = (*PreferenceRepository)(nil)

// NewPreferenceRepository creates a Redis-backed preference repository.
func NewPreferenceRepository(client *redis.Client) *PreferenceRepository {
	return &PreferenceRepository{client: client}
}

func (r *PreferenceRepository) FindPreference(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return b, nil
}

func (r *PreferenceRepository) SavePreference(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save preference %s: %w", key, err)
	}
	return nil
}

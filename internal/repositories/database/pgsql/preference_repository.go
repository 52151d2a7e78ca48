package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	portsrepo "github.com/SscSPs/pricex_locale/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPreferenceRepository struct {
	BaseRepository
}

// newPgxPreferenceRepository creates a new repository for preference records.
func newPgxPreferenceRepository(pool *pgxpool.Pool) *PgxPreferenceRepository {
	return &PgxPreferenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PreferenceRepositoryFacade = (*PgxPreferenceRepository)(nil)

// FindPreference retrieves the JSON record stored under key.
func (r *PgxPreferenceRepository) FindPreference(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT pref_value::text
		FROM preferences
		WHERE pref_key = $1;
	`
	var value string
	err := r.Pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find preference %s: %w", key, err)
	}
	return []byte(value), nil
}

// SavePreference inserts or replaces the record stored under key.
// Values that are not valid JSON are rejected by the jsonb column.
func (r *PgxPreferenceRepository) SavePreference(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO preferences (pref_key, pref_value, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (pref_key) DO UPDATE SET
			pref_value = EXCLUDED.pref_value,
			updated_at = EXCLUDED.updated_at;
	`
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, query, key, string(value)); err != nil {
			return fmt.Errorf("failed to save preference %s: %w", key, err)
		}
		return nil
	})
}

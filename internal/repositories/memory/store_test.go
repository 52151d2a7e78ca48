package memory

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	"github.com/SscSPs/pricex_locale/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Preferences(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.FindPreference(ctx, "pricex-region-prefs:abc")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	value := []byte(`{"region":"europe","country":"FR"}`)
	require.NoError(t, s.SavePreference(ctx, "pricex-region-prefs:abc", value))
	value[0] = 'x' // the store keeps its own copy

	got, err := s.FindPreference(ctx, "pricex-region-prefs:abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"region":"europe","country":"FR"}`, string(got))

	require.NoError(t, s.SavePreference(ctx, "pricex-region-prefs:abc", []byte(`{"region":"asia","country":"JP"}`)))
	got, err = s.FindPreference(ctx, "pricex-region-prefs:abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"region":"asia","country":"JP"}`, string(got))
}

func TestStore_CachedRatesExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore()
	s.now = func() time.Time { return now }

	_, err := s.FindCachedRates(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	table := domain.RateTable{
		Base:      "USD",
		Rates:     map[string]decimal.Decimal{"USD": decimal.NewFromInt(1), "EUR": decimal.RequireFromString("0.9")},
		FetchedAt: now,
	}
	require.NoError(t, s.SaveCachedRates(ctx, table, time.Hour))

	cached, err := s.FindCachedRates(ctx)
	require.NoError(t, err)
	assert.True(t, cached.Rates["EUR"].Equal(decimal.RequireFromString("0.9")))

	now = now.Add(time.Hour)
	_, err = s.FindCachedRates(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

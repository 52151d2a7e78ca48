package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
	"github.com/SscSPs/pricex_locale/internal/core/services"
	"github.com/SscSPs/pricex_locale/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, store *memory.Store, maxSessions int) *services.SessionRegistry {
	t.Helper()
	rates := services.NewRateSource(nil)
	registry, err := services.NewSessionRegistry(services.NewCatalog(), rates, services.NewPreferenceStorage(store, nil), maxSessions)
	require.NoError(t, err)
	return registry
}

func TestSessionRegistry_ReturnsSameSession(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry(t, memory.NewStore(), 0)

	first := registry.Session(ctx, "abc")
	second := registry.Session(ctx, "abc")

	assert.Same(t, first, second)
	assert.Equal(t, "abc", first.ID)
	assert.False(t, first.Region.IsLoading())
	assert.False(t, first.Currency.IsLoading())
	assert.NotSame(t, first, registry.Session(ctx, "xyz"))
}

func TestSessionRegistry_CountryChangeAdoptsCurrency(t *testing.T) {
	ctx := context.Background()
	registry := newTestRegistry(t, memory.NewStore(), 0)
	session := registry.Session(ctx, "abc")

	session.Region.SetCountry(ctx, "JP")
	assert.Equal(t, "JPY", session.Currency.Currency())

	session.Region.SetRegion(ctx, domain.RegionEurope)
	assert.Equal(t, "GBP", session.Currency.Currency())

	session.Currency.SetCurrency(ctx, "USD")
	session.Region.SetCountry(ctx, "IN")
	assert.Equal(t, "USD", session.Currency.Currency(), "explicit currency wins over country default")
}

func TestSessionRegistry_EvictedSessionIsRestored(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	registry := newTestRegistry(t, store, 1)

	session := registry.Session(ctx, "abc")
	session.Region.SetCountry(ctx, "DE")
	session.Currency.SetCurrency(ctx, "GBP")

	registry.Session(ctx, "other")
	restored := registry.Session(ctx, "abc")

	assert.NotSame(t, session, restored)
	country, ok := restored.Region.SelectedCountry()
	require.True(t, ok)
	assert.Equal(t, "DE", country.Code)
	assert.Equal(t, "GBP", restored.Currency.Currency())

	// A restored currency counts as explicit.
	restored.Region.SetCountry(ctx, "JP")
	assert.Equal(t, "GBP", restored.Currency.Currency())
}

func TestSessionRegistry_LastUpdatedFollowsSharedRefresh(t *testing.T) {
	ctx := context.Background()
	provider := new(MockRateProvider)
	provider.On("FetchRates", mock.Anything).
		Return(liveTable(time.Time{}, map[string]string{"USD": "1", "EUR": "0.5"}), nil).Once()
	fetchedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rates := services.NewRateSource(provider, services.WithClock(func() time.Time { return fetchedAt }))
	registry, err := services.NewSessionRegistry(services.NewCatalog(), rates, services.NewPreferenceStorage(memory.NewStore(), nil), 0)
	require.NoError(t, err)

	session := registry.Session(ctx, "abc")
	_, ok := session.Currency.LastUpdated()
	require.False(t, ok)

	// A refresher tick refreshes the shared source, not the session.
	rates.Refresh(ctx)

	last, ok := session.Currency.LastUpdated()
	assert.True(t, ok)
	assert.Equal(t, fetchedAt, last)
	sel := session.Currency.Snapshot()
	require.NotNil(t, sel.LastUpdated)
	assert.Equal(t, fetchedAt, *sel.LastUpdated)
}

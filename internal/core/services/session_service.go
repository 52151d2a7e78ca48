package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
	portssvc "github.com/SscSPs/pricex_locale/internal/core/ports/services"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxSessions bounds how many sessions are kept in memory at once. Evicted sessions
// are restored from preference storage on their next request.
const DefaultMaxSessions = 10000

// SessionRegistry creates, restores and caches the preference managers of each session.
type SessionRegistry struct {
	BaseService
	catalog  portssvc.CatalogReaderSvc
	rates    portssvc.RateSourceSvc
	storage  *PreferenceStorage
	sessions *lru.Cache[string, *portssvc.Session]
}

var _ portssvc.SessionProviderSvc = (*SessionRegistry)(nil)

// NewSessionRegistry creates a registry keeping at most maxSessions sessions in memory.
func NewSessionRegistry(catalog portssvc.CatalogReaderSvc, rates portssvc.RateSourceSvc, storage *PreferenceStorage, maxSessions int) (*SessionRegistry, error) {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	cache, err := lru.New[string, *portssvc.Session](maxSessions)
	if err != nil {
		return nil, err
	}
	return &SessionRegistry{catalog: catalog, rates: rates, storage: storage, sessions: cache}, nil
}

// Session returns the managers for sessionID, restoring them from storage on first use.
func (r *SessionRegistry) Session(ctx context.Context, sessionID string) *portssvc.Session {
	if s, ok := r.sessions.Get(sessionID); ok {
		return s
	}

	currency := NewCurrencyPreferenceManager(r.catalog, r.rates, r.storage, sessionID)
	region := NewRegionPreferenceManager(r.catalog, r.storage, sessionID,
		WithCountryListener(func(ctx context.Context, country domain.Country) {
			currency.AdoptCountryCurrency(ctx, country)
		}),
	)
	currency.Load(ctx)
	region.Load(ctx)

	s := &portssvc.Session{ID: sessionID, Region: region, Currency: currency}
	if existing, ok, _ := r.sessions.PeekOrAdd(sessionID, s); ok {
		// Another request restored the same session first; use its managers.
		return existing
	}
	r.LogDebug(ctx, "Session restored", slog.String("session_id", sessionID))
	return s
}

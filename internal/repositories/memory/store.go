// Package memory keeps preferences and the rate cache in process memory.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	"github.com/SscSPs/pricex_locale/internal/core/domain"
	portsrepo "github.com/SscSPs/pricex_locale/internal/core/ports/repositories"
)

// Store is a map-backed preference repository and rate cache. Contents are lost on restart.
type Store struct {
	mu          sync.RWMutex
	preferences map[string][]byte
	rates       *domain.RateTable
	ratesExpiry time.Time
	now         func() time.Time
}

var (
	_ portsrepo.PreferenceRepositoryFacade = (*Store)(nil)
	_ portsrepo.RateCacheFacade            = (*Store)(nil)
)

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{preferences: make(map[string][]byte), now: time.Now}
}

func (s *Store) FindPreference(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.preferences[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) SavePreference(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences[key] = append([]byte(nil), value...)
	return nil
}

// FindCachedRates returns the cached table until its TTL passes.
func (s *Store) FindCachedRates(_ context.Context) (*domain.RateTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rates == nil || !s.now().Before(s.ratesExpiry) {
		return nil, apperrors.ErrNotFound
	}
	table := s.rates.Clone()
	return &table, nil
}

func (s *Store) SaveCachedRates(_ context.Context, table domain.RateTable, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cloned := table.Clone()
	s.rates = &cloned
	s.ratesExpiry = s.now().Add(ttl)
	return nil
}

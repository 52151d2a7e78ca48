package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock PreferenceRepository ---
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) FindPreference(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPreferenceRepository) SavePreference(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchRates(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable), args.Error(1)
}

// --- Mock RateCache ---
type MockRateCache struct {
	mock.Mock
}

func (m *MockRateCache) FindCachedRates(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockRateCache) SaveCachedRates(ctx context.Context, table domain.RateTable, ttl time.Duration) error {
	args := m.Called(ctx, table, ttl)
	return args.Error(0)
}

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) GetRates() domain.RateTable {
	args := m.Called()
	return args.Get(0).(domain.RateTable)
}

func (m *MockRateSource) Refresh(ctx context.Context) domain.RateTable {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable)
}

func (m *MockRateSource) IsRefreshing() bool {
	args := m.Called()
	return args.Bool(0)
}

// countingRecorder counts refresh and storage outcomes.
type countingRecorder struct {
	mu                                  sync.Mutex
	succeeded, failed, skipped          int
	storageReadFails, storageWriteFails int
}

func (r *countingRecorder) RefreshSucceeded() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.succeeded++
}

func (r *countingRecorder) RefreshFailed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed++
}

func (r *countingRecorder) RefreshSkipped() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped++
}

func (r *countingRecorder) StorageReadFailed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storageReadFails++
}

func (r *countingRecorder) StorageWriteFailed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storageWriteFails++
}

func liveTable(fetchedAt time.Time, rates map[string]string) domain.RateTable {
	t := domain.RateTable{Base: domain.CanonicalCurrency, Rates: map[string]decimal.Decimal{}, FetchedAt: fetchedAt}
	for code, r := range rates {
		t.Rates[code] = decimal.RequireFromString(r)
	}
	return t
}

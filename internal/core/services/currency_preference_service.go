package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
	portssvc "github.com/SscSPs/pricex_locale/internal/core/ports/services"
)

// CurrencyPreferenceManager holds one visitor's display currency and brackets rate refreshes
// with a loading flag. Only the currency code is persisted.
type CurrencyPreferenceManager struct {
	BaseService
	catalog portssvc.CatalogReaderSvc
	rates   portssvc.RateSourceSvc
	storage *PreferenceStorage
	key     string

	mu          sync.RWMutex
	currency    string
	explicit    bool // chosen by the visitor or restored from storage
	restoring   bool
	refreshing  bool
	lastUpdated *time.Time
	loadOnce    sync.Once
}

var _ portssvc.CurrencyPreferenceSvc = (*CurrencyPreferenceManager)(nil)

// NewCurrencyPreferenceManager creates a manager for sessionID defaulting to the canonical currency.
func NewCurrencyPreferenceManager(catalog portssvc.CatalogReaderSvc, rates portssvc.RateSourceSvc, storage *PreferenceStorage, sessionID string) *CurrencyPreferenceManager {
	return &CurrencyPreferenceManager{
		catalog:   catalog,
		rates:     rates,
		storage:   storage,
		key:       namespacedKey(domain.CurrencyPreferenceKey, sessionID),
		currency:  domain.CanonicalCurrency,
		restoring: true,
	}
}

// Load restores the persisted currency if it is still in the catalog. Only the first call has any effect.
func (m *CurrencyPreferenceManager) Load(ctx context.Context) {
	m.loadOnce.Do(func() {
		var prefs domain.CurrencyPreference
		found := m.storage.Load(ctx, m.key, &prefs)
		table := m.rates.GetRates()

		m.mu.Lock()
		defer m.mu.Unlock()
		m.restoring = false
		if table.IsLive() {
			fetchedAt := table.FetchedAt
			m.lastUpdated = &fetchedAt
		}

		if !found {
			return
		}
		cfg, ok := m.catalog.Currency(prefs.Currency)
		if !ok {
			m.LogInfo(ctx, "Stored currency is not in the catalog, keeping default",
				slog.String("currency", prefs.Currency))
			return
		}
		m.currency = cfg.Code
		m.explicit = true
	})
}

func (m *CurrencyPreferenceManager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.restoring || m.refreshing
}

func (m *CurrencyPreferenceManager) Currency() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currency
}

// CurrencyConfig resolves the current currency against the catalog, falling back to the
// canonical currency's entry.
func (m *CurrencyPreferenceManager) CurrencyConfig() domain.CurrencyConfig {
	return m.resolveConfig(m.Currency())
}

func (m *CurrencyPreferenceManager) resolveConfig(code string) domain.CurrencyConfig {
	if cfg, ok := m.catalog.Currency(code); ok {
		return cfg
	}
	if cfg, ok := m.catalog.Currency(domain.CanonicalCurrency); ok {
		return cfg
	}
	return domain.CurrencyConfig{Code: domain.CanonicalCurrency, Symbol: "$", DecimalPlaces: 2, SymbolPosition: domain.SymbolPrefix}
}

// SetCurrency selects code if the catalog knows it; unknown codes change nothing.
func (m *CurrencyPreferenceManager) SetCurrency(ctx context.Context, code string) domain.Outcome {
	cfg, ok := m.catalog.Currency(code)
	if !ok {
		m.LogDebug(ctx, "Ignoring unknown currency", slog.String("currency", code))
		return domain.OutcomeIgnoredUnknownCode
	}

	m.mu.Lock()
	m.currency = cfg.Code
	m.explicit = true
	m.mu.Unlock()

	m.storage.Save(ctx, m.key, domain.CurrencyPreference{Currency: cfg.Code})
	return domain.OutcomeApplied
}

// AdoptCountryCurrency switches to the country's default currency unless the visitor has
// already chosen one explicitly.
func (m *CurrencyPreferenceManager) AdoptCountryCurrency(ctx context.Context, country domain.Country) domain.Outcome {
	cfg, ok := m.catalog.Currency(country.DefaultCurrency)
	if !ok {
		return domain.OutcomeIgnoredUnknownCode
	}

	m.mu.Lock()
	if m.explicit || m.currency == cfg.Code {
		m.mu.Unlock()
		return domain.OutcomeUnchanged
	}
	m.currency = cfg.Code
	m.mu.Unlock()

	m.storage.Save(ctx, m.key, domain.CurrencyPreference{Currency: cfg.Code})
	m.LogDebug(ctx, "Adopted country currency",
		slog.String("country", country.Code),
		slog.String("currency", cfg.Code))
	return domain.OutcomeApplied
}

// RefreshRates asks the rate source for a fresh table. A call made while this manager is
// already refreshing returns immediately.
func (m *CurrencyPreferenceManager) RefreshRates(ctx context.Context) {
	m.mu.Lock()
	if m.refreshing {
		m.mu.Unlock()
		m.LogDebug(ctx, "Rate refresh already running for this session")
		return
	}
	m.refreshing = true
	m.mu.Unlock()

	table := m.rates.Refresh(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshing = false
	if table.IsLive() && (m.lastUpdated == nil || table.FetchedAt.After(*m.lastUpdated)) {
		fetchedAt := table.FetchedAt
		m.lastUpdated = &fetchedAt
	}
}

// LastUpdated returns the time of the most recent successful rate fetch, including fetches
// made by other sessions or the background refresher.
func (m *CurrencyPreferenceManager) LastUpdated() (time.Time, bool) {
	m.mu.RLock()
	local := m.lastUpdated
	m.mu.RUnlock()
	return m.latestFetch(local)
}

// latestFetch returns the later of local and the shared table's fetch time.
func (m *CurrencyPreferenceManager) latestFetch(local *time.Time) (time.Time, bool) {
	var latest time.Time
	ok := false
	if local != nil {
		latest, ok = *local, true
	}
	if table := m.rates.GetRates(); table.IsLive() && (!ok || table.FetchedAt.After(latest)) {
		latest, ok = table.FetchedAt, true
	}
	return latest, ok
}

func (m *CurrencyPreferenceManager) AvailableCurrencies() []domain.CurrencyConfig {
	return m.catalog.Currencies()
}

func (m *CurrencyPreferenceManager) Snapshot() domain.CurrencySelection {
	m.mu.RLock()
	sel := domain.CurrencySelection{
		Currency:  m.currency,
		IsLoading: m.restoring || m.refreshing,
	}
	local := m.lastUpdated
	m.mu.RUnlock()

	if t, ok := m.latestFetch(local); ok {
		sel.LastUpdated = &t
	}
	sel.Config = m.resolveConfig(sel.Currency)
	return sel
}

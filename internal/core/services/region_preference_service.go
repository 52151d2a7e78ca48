package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
	portssvc "github.com/SscSPs/pricex_locale/internal/core/ports/services"
)

// CountryListener is notified after a setter changes the selected country.
type CountryListener func(ctx context.Context, country domain.Country)

// RegionPreferenceManager holds one visitor's region and country selection.
type RegionPreferenceManager struct {
	BaseService
	catalog   portssvc.CatalogReaderSvc
	storage   *PreferenceStorage
	key       string
	listeners []CountryListener

	mu       sync.RWMutex
	region   *domain.Region
	country  *domain.Country
	loading  bool
	loadOnce sync.Once
}

var _ portssvc.RegionPreferenceSvc = (*RegionPreferenceManager)(nil)

// RegionManagerOption configures a RegionPreferenceManager.
type RegionManagerOption func(*RegionPreferenceManager)

// WithCountryListener registers l to run after every applied country change.
func WithCountryListener(l CountryListener) RegionManagerOption {
	return func(m *RegionPreferenceManager) {
		if l != nil {
			m.listeners = append(m.listeners, l)
		}
	}
}

// NewRegionPreferenceManager creates an empty manager for sessionID. It reports IsLoading
// until Load has run.
func NewRegionPreferenceManager(catalog portssvc.CatalogReaderSvc, storage *PreferenceStorage, sessionID string, opts ...RegionManagerOption) *RegionPreferenceManager {
	m := &RegionPreferenceManager{
		catalog: catalog,
		storage: storage,
		key:     namespacedKey(domain.RegionPreferenceKey, sessionID),
		loading: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Load restores the persisted selection. A stored country that no longer resolves leaves
// the whole selection unset. Only the first call has any effect.
func (m *RegionPreferenceManager) Load(ctx context.Context) {
	m.loadOnce.Do(func() {
		var prefs domain.RegionPreference
		found := m.storage.Load(ctx, m.key, &prefs)

		m.mu.Lock()
		defer m.mu.Unlock()
		m.loading = false

		if !found {
			return
		}
		country, ok := m.catalog.Country(prefs.Country)
		if !ok {
			m.LogInfo(ctx, "Stored country is not in the catalog, leaving region preference unset",
				slog.String("country", prefs.Country))
			return
		}
		region, c := reconcileLocale(m.catalog, country.Region, &country)
		m.region = &region
		m.country = c
	})
}

func (m *RegionPreferenceManager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// SetRegion selects region and reconciles the country with it: a country already in the
// region is kept, otherwise the region's first catalog country is selected (or none).
func (m *RegionPreferenceManager) SetRegion(ctx context.Context, region domain.Region) domain.Outcome {
	if !m.catalog.HasRegion(region) {
		m.LogDebug(ctx, "Ignoring unknown region", slog.String("region", string(region)))
		return domain.OutcomeIgnoredUnknownCode
	}

	m.mu.Lock()
	previous := m.country
	newRegion, newCountry := reconcileLocale(m.catalog, region, m.country)
	prefs := m.apply(newRegion, newCountry)
	m.mu.Unlock()

	m.storage.Save(ctx, m.key, prefs)

	if newCountry != nil && (previous == nil || previous.Code != newCountry.Code) {
		m.notify(ctx, *newCountry)
	}
	return domain.OutcomeApplied
}

// SetCountry selects the country with code; its catalog region overwrites the selected region.
// Unknown codes leave state and storage untouched.
func (m *RegionPreferenceManager) SetCountry(ctx context.Context, code string) domain.Outcome {
	country, ok := m.catalog.Country(code)
	if !ok {
		m.LogDebug(ctx, "Ignoring unknown country", slog.String("country", code))
		return domain.OutcomeIgnoredUnknownCode
	}

	m.mu.Lock()
	newRegion, newCountry := reconcileLocale(m.catalog, country.Region, &country)
	prefs := m.apply(newRegion, newCountry)
	m.mu.Unlock()

	m.storage.Save(ctx, m.key, prefs)

	m.notify(ctx, *newCountry)
	return domain.OutcomeApplied
}

// apply sets the pair and returns the record to persist. Callers hold m.mu.
func (m *RegionPreferenceManager) apply(region domain.Region, country *domain.Country) domain.RegionPreference {
	m.region = &region
	m.country = country

	prefs := domain.RegionPreference{Region: region}
	if country != nil {
		prefs.Country = country.Code
	}
	return prefs
}

func (m *RegionPreferenceManager) notify(ctx context.Context, country domain.Country) {
	for _, l := range m.listeners {
		l(ctx, country)
	}
}

func (m *RegionPreferenceManager) SelectedRegion() (domain.Region, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.region == nil {
		return "", false
	}
	return *m.region, true
}

func (m *RegionPreferenceManager) SelectedCountry() (domain.Country, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.country == nil {
		return domain.Country{}, false
	}
	return *m.country, true
}

func (m *RegionPreferenceManager) CountriesByRegion(region domain.Region) []domain.Country {
	return m.catalog.CountriesByRegion(region)
}

func (m *RegionPreferenceManager) Snapshot() domain.RegionSelection {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sel := domain.RegionSelection{IsLoading: m.loading}
	if m.region != nil {
		r := *m.region
		sel.Region = &r
	}
	if m.country != nil {
		c := *m.country
		sel.Country = &c
	}
	return sel
}

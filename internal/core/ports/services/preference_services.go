package services

import (
	"context"
	"time"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
)

// RegionPreferenceSvc holds and persists a visitor's region and country selection.
type RegionPreferenceSvc interface {
	Load(ctx context.Context)
	IsLoading() bool
	SetRegion(ctx context.Context, region domain.Region) domain.Outcome
	SetCountry(ctx context.Context, code string) domain.Outcome
	SelectedRegion() (domain.Region, bool)
	SelectedCountry() (domain.Country, bool)
	CountriesByRegion(region domain.Region) []domain.Country
	Snapshot() domain.RegionSelection
}

// CurrencyPreferenceSvc holds and persists a visitor's display currency.
type CurrencyPreferenceSvc interface {
	Load(ctx context.Context)
	IsLoading() bool
	Currency() string
	CurrencyConfig() domain.CurrencyConfig
	SetCurrency(ctx context.Context, code string) domain.Outcome
	AdoptCountryCurrency(ctx context.Context, country domain.Country) domain.Outcome
	RefreshRates(ctx context.Context)
	LastUpdated() (time.Time, bool)
	AvailableCurrencies() []domain.CurrencyConfig
	Snapshot() domain.CurrencySelection
}

// Session bundles the preference managers owned by one visitor session.
type Session struct {
	ID       string
	Region   RegionPreferenceSvc
	Currency CurrencyPreferenceSvc
}

// SessionProviderSvc hands out the session-scoped managers, creating and restoring them on first use.
type SessionProviderSvc interface {
	Session(ctx context.Context, sessionID string) *Session
}

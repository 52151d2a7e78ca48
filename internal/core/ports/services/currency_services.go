package services

import (
	"context"

	"github.com/SscSPs/pricex_locale/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateSourceSvc supplies rate tables and never fails.
type RateSourceSvc interface {
	// GetRates returns the last good table or the static fallback table.
	GetRates() domain.RateTable

	// Refresh attempts a live fetch and returns the previous table unchanged on any failure.
	// A call made while another refresh is in flight returns the current table without fetching.
	Refresh(ctx context.Context) domain.RateTable

	// IsRefreshing reports whether a refresh is currently in flight.
	IsRefreshing() bool
}

// ConverterSvc converts and formats canonical prices against the current rate table.
type ConverterSvc interface {
	// Convert returns apperrors.ErrCurrencyUnsupported for codes absent from both tables.
	Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error)

	// Format renders amount with the display convention of currencyCode.
	Format(amount decimal.Decimal, currencyCode string) string

	// Display converts and formats, falling back to the canonical currency when the
	// target is unsupported. The error is still returned so callers can report it.
	Display(amount decimal.Decimal, from, to string) (domain.DisplayPrice, error)
}

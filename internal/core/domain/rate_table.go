package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTable is a snapshot of multiplicative rates relative to Base.
// A valid table always contains Base with a rate of exactly 1.
type RateTable struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetchedAt"` // zero for the static fallback table
}

// Rate returns the rate for code and whether it is present and positive.
func (t RateTable) Rate(code string) (decimal.Decimal, bool) {
	r, ok := t.Rates[code]
	if !ok || !r.IsPositive() {
		return decimal.Zero, false
	}
	return r, true
}

// Valid reports whether the table satisfies the base invariant and holds only positive rates.
func (t RateTable) Valid() bool {
	if t.Base == "" || len(t.Rates) == 0 {
		return false
	}
	baseRate, ok := t.Rates[t.Base]
	if !ok || !baseRate.Equal(decimal.NewFromInt(1)) {
		return false
	}
	for _, r := range t.Rates {
		if !r.IsPositive() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so callers can never mutate a held table.
func (t RateTable) Clone() RateTable {
	rates := make(map[string]decimal.Decimal, len(t.Rates))
	for k, v := range t.Rates {
		rates[k] = v
	}
	return RateTable{Base: t.Base, Rates: rates, FetchedAt: t.FetchedAt}
}

// IsLive reports whether the table came from a successful fetch.
func (t RateTable) IsLive() bool {
	return !t.FetchedAt.IsZero()
}

// Rebase expresses the table relative to code. It reports false when code has no positive rate.
func (t RateTable) Rebase(code string) (RateTable, bool) {
	if code == t.Base {
		return t.Clone(), true
	}
	pivot, ok := t.Rate(code)
	if !ok {
		return RateTable{}, false
	}
	rates := make(map[string]decimal.Decimal, len(t.Rates))
	for k, v := range t.Rates {
		rates[k] = v.DivRound(pivot, 8)
	}
	rates[code] = decimal.NewFromInt(1)
	return RateTable{Base: code, Rates: rates, FetchedAt: t.FetchedAt}, true
}

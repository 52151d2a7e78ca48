package domain

import "time"

// Storage keys for persisted preference records. Keys are namespaced per session
// with a ":<sessionID>" suffix.
const (
	RegionPreferenceKey   = "pricex-region-prefs"
	CurrencyPreferenceKey = "pricex-currency-prefs"
)

// RegionPreference is the persisted shape of the region/country selection.
type RegionPreference struct {
	Region  Region `json:"region"`
	Country string `json:"country"`
}

// CurrencyPreference is the persisted shape of the display currency selection.
type CurrencyPreference struct {
	Currency string `json:"currency"`
}

// Outcome tells callers whether a setter changed state.
type Outcome string

const (
	OutcomeApplied            Outcome = "applied"
	OutcomeIgnoredUnknownCode Outcome = "ignored_unknown_code"
	// OutcomeUnchanged reports a valid request that did not change state.
	OutcomeUnchanged Outcome = "unchanged"
)

// Applied is a convenience for tests and handlers.
func (o Outcome) Applied() bool {
	return o == OutcomeApplied
}

// RegionSelection is a read-only view of a region preference manager.
type RegionSelection struct {
	Region    *Region  `json:"region"`
	Country   *Country `json:"country"`
	IsLoading bool     `json:"isLoading"`
}

// CurrencySelection is a read-only view of a currency preference manager.
type CurrencySelection struct {
	Currency    string         `json:"currency"`
	Config      CurrencyConfig `json:"config"`
	IsLoading   bool           `json:"isLoading"`
	LastUpdated *time.Time     `json:"lastUpdated"`
}

package repositories

import (
	"context"
)

// PreferenceReader defines read operations for persisted preference records.
type PreferenceReader interface {
	// FindPreference returns the raw JSON stored under key.
	// It returns apperrors.ErrNotFound when nothing was stored yet.
	FindPreference(ctx context.Context, key string) ([]byte, error)
}

// PreferenceWriter defines write operations for persisted preference records.
type PreferenceWriter interface {
	// SavePreference overwrites the record stored under key.
	SavePreference(ctx context.Context, key string, value []byte) error
}

// PreferenceRepositoryFacade combines all preference-related repository interfaces.
type PreferenceRepositoryFacade interface {
	PreferenceReader
	PreferenceWriter
}

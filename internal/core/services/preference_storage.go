package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	portsrepo "github.com/SscSPs/pricex_locale/internal/core/ports/repositories"
)

// StorageRecorder receives storage failures, typically for metrics.
type StorageRecorder interface {
	StorageReadFailed()
	StorageWriteFailed()
}

type noopStorageRecorder struct{}

func (noopStorageRecorder) StorageReadFailed()  {}
func (noopStorageRecorder) StorageWriteFailed() {}

// PreferenceStorage guards every preference read and write. Reads yield false on any
// failure and writes swallow errors; each failed attempt is logged once and never retried.
// A nil repository keeps preferences in memory only.
type PreferenceStorage struct {
	BaseService
	repo     portsrepo.PreferenceRepositoryFacade
	recorder StorageRecorder
}

// NewPreferenceStorage creates a new PreferenceStorage.
func NewPreferenceStorage(repo portsrepo.PreferenceRepositoryFacade, recorder StorageRecorder) *PreferenceStorage {
	if recorder == nil {
		recorder = noopStorageRecorder{}
	}
	return &PreferenceStorage{repo: repo, recorder: recorder}
}

// Load decodes the record under key into dst and reports whether a usable record was found.
// Absent and malformed records both count as "no preference yet".
func (p *PreferenceStorage) Load(ctx context.Context, key string, dst any) bool {
	if p.repo == nil {
		return false
	}
	raw, err := p.repo.FindPreference(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false
		}
		p.recorder.StorageReadFailed()
		p.LogWarn(ctx, err, "Failed to read preference, using defaults", slog.String("key", key))
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		p.LogWarn(ctx, err, "Ignoring malformed stored preference", slog.String("key", key))
		return false
	}
	return true
}

// Save encodes v and stores it under key. Failures are logged and swallowed.
func (p *PreferenceStorage) Save(ctx context.Context, key string, v any) {
	if p.repo == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		p.recorder.StorageWriteFailed()
		p.LogError(ctx, err, "Failed to encode preference", slog.String("key", key))
		return
	}
	if err := p.repo.SavePreference(ctx, key, raw); err != nil {
		p.recorder.StorageWriteFailed()
		p.LogWarn(ctx, err, "Failed to save preference, keeping it in memory only", slog.String("key", key))
	}
}

// namespacedKey scopes a fixed preference key to one session.
func namespacedKey(base, sessionID string) string {
	if sessionID == "" {
		return base
	}
	return base + ":" + sessionID
}

// Package file stores each preference record as one JSON file.
package file

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	portsrepo "github.com/SscSPs/pricex_locale/internal/core/ports/repositories"
	"github.com/spf13/afero"
)

// PreferenceRepository writes records under dir, one file per key.
type PreferenceRepository struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

var _ portsrepo.PreferenceRepositoryFacade = (*PreferenceRepository)(nil)

// NewPreferenceRepository creates a repository rooted at dir on the OS filesystem.
func NewPreferenceRepository(dir string) (*PreferenceRepository, error) {
	return NewPreferenceRepositoryOn(afero.NewOsFs(), dir)
}

// NewPreferenceRepositoryOn creates a repository rooted at dir on fs, creating dir if needed.
func NewPreferenceRepositoryOn(fs afero.Fs, dir string) (*PreferenceRepository, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preference directory %s: %w", dir, err)
	}
	return &PreferenceRepository{fs: fs, dir: dir}, nil
}

func (r *PreferenceRepository) path(key string) string {
	return filepath.Join(r.dir, url.PathEscape(key)+".json")
}

// FindPreference reads the file for key. A missing file is ErrNotFound.
func (r *PreferenceRepository) FindPreference(_ context.Context, key string) ([]byte, error) {
	b, err := afero.ReadFile(r.fs, r.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return b, nil
}

// SavePreference replaces the file for key. The record is written to a temporary file first
// so readers never observe a partial write.
func (r *PreferenceRepository) SavePreference(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	target := r.path(key)
	tmp := target + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, value, 0o644); err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	if err := r.fs.Rename(tmp, target); err != nil {
		_ = r.fs.Remove(tmp)
		return fmt.Errorf("failed to replace preference %s: %w", key, err)
	}
	return nil
}

package file

import (
	"context"
	"testing"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	repo, err := NewPreferenceRepositoryOn(fs, "/prefs")
	require.NoError(t, err)

	_, err = repo.FindPreference(ctx, "pricex-currency-prefs:s1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.SavePreference(ctx, "pricex-currency-prefs:s1", []byte(`{"currency":"EUR"}`)))
	got, err := repo.FindPreference(ctx, "pricex-currency-prefs:s1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"currency":"EUR"}`, string(got))

	exists, err := afero.Exists(fs, "/prefs/pricex-currency-prefs:s1.json.tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPreferenceRepository_KeysAreEscaped(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	repo, err := NewPreferenceRepositoryOn(fs, "/prefs")
	require.NoError(t, err)

	require.NoError(t, repo.SavePreference(ctx, "pricex-region-prefs:../../etc", []byte(`{}`)))

	exists, err := afero.Exists(fs, "/prefs/pricex-region-prefs:..%2F..%2Fetc.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPreferenceRepository_ReadOnlyFilesystem(t *testing.T) {
	ctx := context.Background()
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/prefs", 0o755))
	repo := &PreferenceRepository{fs: afero.NewReadOnlyFs(base), dir: "/prefs"}

	err := repo.SavePreference(ctx, "pricex-region-prefs:s1", []byte(`{}`))
	assert.Error(t, err)
}

package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/pricex_locale/internal/platform/config"
	"github.com/SscSPs/pricex_locale/internal/repositories/file"
	"github.com/SscSPs/pricex_locale/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenDependencies_MemoryStoreDoublesAsRateCache(t *testing.T) {
	cfg := &config.Config{PreferenceStore: config.StoreMemory}

	deps, err := openDependencies(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	defer deps.Close()

	store, ok := deps.repos.PreferenceRepo.(*memory.Store)
	require.True(t, ok)
	assert.Same(t, store, deps.repos.RateCache)
	assert.Nil(t, deps.redis)
	assert.Nil(t, deps.repos.RateProvider)
}

func TestOpenDependencies_FileStoreGetsMemoryRateCache(t *testing.T) {
	cfg := &config.Config{PreferenceStore: config.StoreFile, PreferenceDir: t.TempDir()}

	deps, err := openDependencies(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	defer deps.Close()

	assert.IsType(t, &file.PreferenceRepository{}, deps.repos.PreferenceRepo)
	assert.IsType(t, &memory.Store{}, deps.repos.RateCache)
}

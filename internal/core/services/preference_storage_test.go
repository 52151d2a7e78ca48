package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	"github.com/SscSPs/pricex_locale/internal/core/domain"
	"github.com/SscSPs/pricex_locale/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPreferenceStorage_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(MockPreferenceRepository)
		repo.On("FindPreference", ctx, "k").Return([]byte(`{"currency":"EUR"}`), nil).Once()
		storage := services.NewPreferenceStorage(repo, nil)

		var prefs domain.CurrencyPreference
		assert.True(t, storage.Load(ctx, "k", &prefs))
		assert.Equal(t, "EUR", prefs.Currency)
		repo.AssertExpectations(t)
	})

	t.Run("not found is not a failure", func(t *testing.T) {
		repo := new(MockPreferenceRepository)
		repo.On("FindPreference", ctx, "k").Return(nil, apperrors.ErrNotFound).Once()
		recorder := &countingRecorder{}
		storage := services.NewPreferenceStorage(repo, recorder)

		var prefs domain.CurrencyPreference
		assert.False(t, storage.Load(ctx, "k", &prefs))
		assert.Zero(t, recorder.storageReadFails)
	})

	t.Run("read failure", func(t *testing.T) {
		repo := new(MockPreferenceRepository)
		repo.On("FindPreference", ctx, "k").Return(nil, errors.New("disk on fire")).Once()
		recorder := &countingRecorder{}
		storage := services.NewPreferenceStorage(repo, recorder)

		var prefs domain.CurrencyPreference
		assert.False(t, storage.Load(ctx, "k", &prefs))
		assert.Equal(t, 1, recorder.storageReadFails)
		repo.AssertNumberOfCalls(t, "FindPreference", 1)
	})

	t.Run("malformed record", func(t *testing.T) {
		repo := new(MockPreferenceRepository)
		repo.On("FindPreference", ctx, "k").Return([]byte(`{not json`), nil).Once()
		storage := services.NewPreferenceStorage(repo, nil)

		var prefs domain.RegionPreference
		assert.False(t, storage.Load(ctx, "k", &prefs))
	})

	t.Run("nil repository", func(t *testing.T) {
		storage := services.NewPreferenceStorage(nil, nil)

		var prefs domain.RegionPreference
		assert.False(t, storage.Load(ctx, "k", &prefs))
		storage.Save(ctx, "k", prefs)
	})
}

func TestPreferenceStorage_SaveSwallowsErrors(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPreferenceRepository)
	repo.On("SavePreference", ctx, "k", []byte(`{"currency":"GBP"}`)).Return(errors.New("quota exceeded")).Once()
	recorder := &countingRecorder{}
	storage := services.NewPreferenceStorage(repo, recorder)

	assert.NotPanics(t, func() {
		storage.Save(ctx, "k", domain.CurrencyPreference{Currency: "GBP"})
	})
	assert.Equal(t, 1, recorder.storageWriteFails)
	repo.AssertExpectations(t)
}

func TestPreferenceStorage_SaveEncodesJSON(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPreferenceRepository)
	repo.On("SavePreference", ctx, "k", mock.MatchedBy(func(b []byte) bool {
		return string(b) == `{"region":"europe","country":"DE"}`
	})).Return(nil).Once()
	storage := services.NewPreferenceStorage(repo, nil)

	storage.Save(ctx, "k", domain.RegionPreference{Region: domain.RegionEurope, Country: "DE"})

	repo.AssertExpectations(t)
}

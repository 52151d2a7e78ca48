package ratesapi_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/SscSPs/pricex_locale/internal/adapters/ratesapi"
	"github.com/SscSPs/pricex_locale/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *ratesapi.Client {
	return ratesapi.New(&http.Client{Transport: fn}, "http://rates.test/api/v1/fx-rates")
}

func respond(status int, body string) rtFunc {
	return func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

func TestClient_FetchRates_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "rates.test", r.URL.Host)
		require.Equal(t, "/api/v1/fx-rates", r.URL.Path)
		return respond(http.StatusOK, `{"success":true,"base":"USD","rates":{"USD":1,"EUR":0.91,"jpy":150.25},"timestamp":"2024-01-01T00:00:00Z"}`)(r)
	})

	table, err := c.FetchRates(context.Background())
	require.NoError(t, err)
	require.Equal(t, "USD", table.Base)
	require.True(t, table.Rates["USD"].Equal(decimal.NewFromInt(1)))
	require.True(t, table.Rates["EUR"].Equal(decimal.RequireFromString("0.91")))
	require.True(t, table.Rates["JPY"].Equal(decimal.RequireFromString("150.25")))
	require.True(t, table.FetchedAt.IsZero())
}

func TestClient_FetchRates_serverError(t *testing.T) {
	c := newTestClient(respond(http.StatusInternalServerError, `{"success":false,"error":"Failed to fetch FX rates"}`))

	_, err := c.FetchRates(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, apperrors.ErrRateSourceUnavailable))
}

func TestClient_FetchRates_unsuccessfulPayload(t *testing.T) {
	c := newTestClient(respond(http.StatusOK, `{"success":false,"error":"upstream down"}`))

	_, err := c.FetchRates(context.Background())
	require.ErrorIs(t, err, apperrors.ErrRateSourceUnavailable)
	require.Contains(t, err.Error(), "upstream down")
}

func TestClient_FetchRates_malformedBody(t *testing.T) {
	c := newTestClient(respond(http.StatusOK, `not json`))

	_, err := c.FetchRates(context.Background())
	require.ErrorIs(t, err, apperrors.ErrRateSourceUnavailable)
}

func TestClient_FetchRates_transportError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := c.FetchRates(context.Background())
	require.ErrorIs(t, err, apperrors.ErrRateSourceUnavailable)
}

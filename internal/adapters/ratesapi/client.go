// Package ratesapi provides a repositories.RateProvider backed by the fx-rates HTTP endpoint.
package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	"github.com/SscSPs/pricex_locale/internal/core/domain"
	portsrepo "github.com/SscSPs/pricex_locale/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Client fetches rate tables from a JSON endpoint. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	url        string
}

var _ portsrepo.RateProvider = (*Client)(nil)

// New constructs a Client that fetches rates from url with httpClient.
// Timeouts are taken from httpClient and from the request context.
func New(httpClient *http.Client, url string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, url: url}
}

// FetchRates requests the current table. Transport failures, HTTP statuses >= 400, unsuccessful
// payloads and undecodable bodies are returned as errors wrapping ErrRateSourceUnavailable.
func (c *Client) FetchRates(ctx context.Context) (domain.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: could not send request: %w", apperrors.ErrRateSourceUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: could not read response body: %w", apperrors.ErrRateSourceUnavailable, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return domain.RateTable{}, fmt.Errorf("%w: status %d: %s", apperrors.ErrRateSourceUnavailable, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var payload struct {
		Success bool                       `json:"success"`
		Base    string                     `json:"base"`
		Rates   map[string]decimal.Decimal `json:"rates"`
		Error   string                     `json:"error"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: could not decode response: %w", apperrors.ErrRateSourceUnavailable, err)
	}
	if !payload.Success {
		return domain.RateTable{}, fmt.Errorf("%w: endpoint reported failure: %s", apperrors.ErrRateSourceUnavailable, payload.Error)
	}

	rates := make(map[string]decimal.Decimal, len(payload.Rates))
	for code, rate := range payload.Rates {
		rates[strings.ToUpper(code)] = rate
	}
	return domain.RateTable{Base: strings.ToUpper(payload.Base), Rates: rates}, nil
}

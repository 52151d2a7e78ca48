package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	"github.com/SscSPs/pricex_locale/internal/core/domain"
	portssvc "github.com/SscSPs/pricex_locale/internal/core/ports/services"
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// Convert converts amount from one currency to another using table, substituting the
// static fallback rate for any code the table lacks. Fallback rates are only used for
// tables based on the canonical currency.
// Same-currency conversions return amount untouched so display never drifts.
func Convert(amount decimal.Decimal, from, to string, table domain.RateTable) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	from = normalizeCurrencyCode(from)
	to = normalizeCurrencyCode(to)

	fromRate, ok := lookupRate(table, from)
	if !ok {
		return decimal.Zero, apperrors.NewCurrencyUnsupportedError(from)
	}
	toRate, ok := lookupRate(table, to)
	if !ok {
		return decimal.Zero, apperrors.NewCurrencyUnsupportedError(to)
	}
	if from == to {
		return amount, nil
	}

	// amount / fromRate * toRate, multiplied first to keep the division last.
	return amount.Mul(toRate).Div(fromRate), nil
}

// FormatAmount renders amount using the symbol, placement and decimal places of cfg.
// Amounts are rounded half away from zero to cfg.DecimalPlaces before rendering.
func FormatAmount(amount decimal.Decimal, cfg domain.CurrencyConfig) string {
	places := cfg.DecimalPlaces
	if places < 0 {
		places = 0
	}
	ac := accounting.Accounting{
		Symbol:    cfg.Symbol,
		Precision: places,
		Thousand:  ",",
		Decimal:   ".",
		Format:    "%s%v",
	}
	if cfg.SymbolPosition == domain.SymbolSuffix {
		ac.Format = "%v %s"
	}
	return ac.FormatMoneyDecimal(amount.Round(int32(places)))
}

func lookupRate(table domain.RateTable, code string) (decimal.Decimal, bool) {
	if r, ok := table.Rate(code); ok {
		return r, true
	}
	if table.Base != domain.CanonicalCurrency {
		return decimal.Zero, false
	}
	return fallbackRate(code)
}

func normalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// PriceConverter converts and formats amounts against the live rate source.
type PriceConverter struct {
	rates   portssvc.RateSourceSvc
	catalog portssvc.CatalogReaderSvc
}

var _ portssvc.ConverterSvc = (*PriceConverter)(nil)

// NewPriceConverter creates a new PriceConverter.
func NewPriceConverter(rates portssvc.RateSourceSvc, catalog portssvc.CatalogReaderSvc) *PriceConverter {
	return &PriceConverter{rates: rates, catalog: catalog}
}

func (p *PriceConverter) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	return Convert(amount, from, to, p.rates.GetRates())
}

// Format renders amount in currencyCode. Codes missing from the catalog are rendered bare.
func (p *PriceConverter) Format(amount decimal.Decimal, currencyCode string) string {
	cfg, ok := p.catalog.Currency(currencyCode)
	if !ok {
		return amount.String()
	}
	return FormatAmount(amount, cfg)
}

func (p *PriceConverter) Display(amount decimal.Decimal, from, to string) (domain.DisplayPrice, error) {
	table := p.rates.GetRates()
	to = normalizeCurrencyCode(to)

	converted, err := Convert(amount, from, to, table)
	if err == nil {
		return domain.DisplayPrice{Amount: converted, Currency: to, Formatted: p.Format(converted, to)}, nil
	}
	if !errors.Is(err, apperrors.ErrCurrencyUnsupported) {
		return domain.DisplayPrice{}, err
	}

	canonical, cerr := Convert(amount, from, domain.CanonicalCurrency, table)
	if cerr != nil {
		// The source currency itself is unknown; nothing sensible can be shown.
		return domain.DisplayPrice{}, err
	}
	return domain.DisplayPrice{
		Amount:    canonical,
		Currency:  domain.CanonicalCurrency,
		Formatted: p.Format(canonical, domain.CanonicalCurrency),
		FellBack:  true,
	}, err
}

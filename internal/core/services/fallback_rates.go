package services

import (
	"github.com/SscSPs/pricex_locale/internal/core/domain"
	"github.com/shopspring/decimal"
)

// fallbackRates is the static USD-based table used whenever no live table is available.
// It must cover every currency in the default catalog.
var fallbackRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"EUR": decimal.RequireFromString("0.92"),
	"GBP": decimal.RequireFromString("0.79"),
	"JPY": decimal.RequireFromString("149.50"),
	"CNY": decimal.RequireFromString("7.19"),
	"AED": decimal.RequireFromString("3.67"),
	"SAR": decimal.RequireFromString("3.75"),
	"TRY": decimal.RequireFromString("30.50"),
	"RUB": decimal.RequireFromString("92.50"),
	"INR": decimal.RequireFromString("83.12"),
	"PKR": decimal.RequireFromString("279.50"),
	"KRW": decimal.RequireFromString("1330.50"),
	"BRL": decimal.RequireFromString("4.95"),
	"MXN": decimal.RequireFromString("17.05"),
	"CAD": decimal.RequireFromString("1.35"),
	"AUD": decimal.RequireFromString("1.52"),
	"ZAR": decimal.RequireFromString("19.05"),
	"EGP": decimal.RequireFromString("30.90"),
}

// FallbackRateTable returns a fresh copy of the static fallback table.
func FallbackRateTable() domain.RateTable {
	return domain.RateTable{Base: domain.CanonicalCurrency, Rates: fallbackRates}.Clone()
}

// fallbackRate looks a code up in the static table.
func fallbackRate(code string) (decimal.Decimal, bool) {
	r, ok := fallbackRates[code]
	return r, ok
}

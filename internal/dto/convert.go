package dto

import (
	"github.com/SscSPs/pricex_locale/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertQuery defines the query parameters of the conversion endpoint.
// To defaults to the session's display currency.
type ConvertQuery struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"omitempty,currency_code"`
	To     string `form:"to" binding:"omitempty,currency_code"`
}

// ConvertResponse defines the data returned for a conversion.
type ConvertResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	Currency  string          `json:"currency"`
	Formatted string          `json:"formatted"`
	FellBack  bool            `json:"fellBack"`
	Error     string          `json:"error,omitempty"`
}

// ToConvertResponse converts a domain.DisplayPrice to ConvertResponse DTO.
func ToConvertResponse(from string, price domain.DisplayPrice) ConvertResponse {
	return ConvertResponse{
		Amount:    price.Amount,
		From:      from,
		Currency:  price.Currency,
		Formatted: price.Formatted,
		FellBack:  price.FellBack,
	}
}

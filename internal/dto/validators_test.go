package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidatorsOn(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterValidatorsOn(v))

	tests := []struct {
		name    string
		req     any
		wantErr bool
	}{
		{name: "valid currency", req: SetCurrencyRequest{Currency: "EUR"}},
		{name: "lowercase currency accepted", req: SetCurrencyRequest{Currency: "eur"}},
		{name: "currency too long", req: SetCurrencyRequest{Currency: "EURO"}, wantErr: true},
		{name: "currency with digits", req: SetCurrencyRequest{Currency: "E1R"}, wantErr: true},
		{name: "missing currency", req: SetCurrencyRequest{}, wantErr: true},
		{name: "valid country", req: SetCountryRequest{Country: "US"}},
		{name: "country too long", req: SetCountryRequest{Country: "USA"}, wantErr: true},
		{name: "convert without target", req: ConvertQuery{Amount: "10", From: "USD"}},
		{name: "convert with bad target", req: ConvertQuery{Amount: "10", To: "DOLLAR"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

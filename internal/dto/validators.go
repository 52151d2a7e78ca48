package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)
	countryCodePattern  = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

// RegisterValidators adds the currency_code and country_code tags to gin's binding validator.
// They check shape only; catalog membership is decided by the services.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterValidatorsOn(v)
}

// RegisterValidatorsOn adds the custom tags to v.
func RegisterValidatorsOn(v *validator.Validate) error {
	if err := v.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		return currencyCodePattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("country_code", func(fl validator.FieldLevel) bool {
		return countryCodePattern.MatchString(fl.Field().String())
	})
}

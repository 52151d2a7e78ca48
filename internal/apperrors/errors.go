package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrCurrencyUnsupported indicates a conversion was requested for a currency code that is
// absent from both the live rate table and the fallback table.
var ErrCurrencyUnsupported = errors.New("currency unsupported")

// ErrRateSourceUnavailable is returned by rate providers when the upstream could not produce a
// usable table. The rate source never lets it escape to its own callers.
var ErrRateSourceUnavailable = errors.New("rate source unavailable")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates an AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewCurrencyUnsupportedError wraps ErrCurrencyUnsupported with the offending code.
func NewCurrencyUnsupportedError(code string) error {
	return fmt.Errorf("%w: %q is not present in the rate table or the fallback table", ErrCurrencyUnsupported, code)
}

// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "accounts/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator.Validate instance for echo.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the echo server.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Validation failures map to the
// domain's validation error so the error middleware renders them as 400s.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

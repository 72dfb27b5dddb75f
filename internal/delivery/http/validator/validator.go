// Package validator wires go-playground validation into Echo.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"

	domainerrors "backoffice/internal/domain/errors"
)

// CustomValidator adapts go-playground/validator to echo.Validator.
type CustomValidator struct {
	validate *validatorlib.Validate
}

// New builds the validator used for every bound request payload.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validatorlib.New(validatorlib.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags on a bound payload. Failures surface as the
// application's validation error so the boundary maps them to 400.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

package handlers

import (
	"bankpulse/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator on top of the shared validator
type CustomValidator struct {
	validator *validation.Validator
}

func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate returns the raw validator.ValidationErrors so the HTTP error
// handler can render them field by field.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.GetValidate().Struct(i)
}

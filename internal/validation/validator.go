package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("non_negative_decimal", validateNonNegativeDecimal)
	_ = v.RegisterValidation("decimal_places", validateDecimalPlaces)
	_ = v.RegisterValidation("decimal_lt", validateDecimalLessThan)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and flattens any field errors into one message.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, FormatFieldError(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

// FormatFieldError renders a single field failure as "field: reason".
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", fe.Field())
	case "non_negative_decimal":
		return fmt.Sprintf("%s: must be a non-negative amount, got %v", fe.Field(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s: must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s: must be at most %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", fe.Field(), fe.Param())
	case "decimal_places":
		return fmt.Sprintf("%s: must have at most %s decimal places, got %v", fe.Field(), fe.Param(), fe.Value())
	case "decimal_lt":
		return fmt.Sprintf("%s: must be less than %s, got %v", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag())
	}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// validateNonNegativeDecimal accepts decimal amounts (already rendered as
// strings by decimalValue) and plain numbers that are >= 0.
func validateNonNegativeDecimal(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl.Field())
	return ok && !d.IsNegative()
}

// validateDecimalPlaces rejects values with more fractional digits than the
// param allows, so the store never rounds an amount.
func validateDecimalPlaces(fl validator.FieldLevel) bool {
	places, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil || places < 0 {
		return false
	}
	d, ok := decimalField(fl.Field())
	return ok && d.Equal(d.Truncate(int32(places)))
}

// validateDecimalLessThan requires the value to be strictly below the param.
func validateDecimalLessThan(fl validator.FieldLevel) bool {
	limit, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	d, ok := decimalField(fl.Field())
	return ok && d.LessThan(limit)
}

func decimalField(field reflect.Value) (decimal.Decimal, bool) {
	switch field.Kind() {
	case reflect.String:
		d, err := decimal.NewFromString(field.String())
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(field.Int()), true
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(field.Float()), true
	default:
		return decimal.Decimal{}, false
	}
}

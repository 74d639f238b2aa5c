package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

const (
	ErrRequired      = "is required"
	ErrEmail         = "must be a valid email address"
	ErrMinValue      = "must be at least %s"
	ErrMaxValue      = "must be at most %s"
	ErrMinLength     = "must be at least %s characters long"
	ErrMaxLength     = "must be at most %s characters long"
	ErrOneOf         = "must be one of: %s"
	ErrPastDate      = "must not be in the past"
	ErrShowTime      = "must be a time of day in HH:MM format"
	ErrPositivePrice = "must be greater than zero"
	ErrInvalid       = "is invalid"
)

var showTimeRgx = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)

	validator.RegisterValidation("not_past_date", validateNotPastDate)
	validator.RegisterValidation("show_time", validateShowTime)
	validator.RegisterValidation("positive_price", validatePositivePrice)

	return validator
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}

func validateNotPastDate(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(openapi_types.Date)
	if !ok {
		return false
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	d := date.Time
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)

	return !day.Before(today)
}

func validateShowTime(fl validator.FieldLevel) bool {
	return showTimeRgx.MatchString(fl.Field().String())
}

func validatePositivePrice(fl validator.FieldLevel) bool {
	price, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return price.IsPositive()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "min":
		if isNumber(err.Kind()) {
			return fmt.Sprintf(ErrMinValue, err.Param())
		}
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		if isNumber(err.Kind()) {
			return fmt.Sprintf(ErrMaxValue, err.Param())
		}
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "not_past_date":
		return ErrPastDate
	case "show_time":
		return ErrShowTime
	case "positive_price":
		return ErrPositivePrice
	default:
		return ErrInvalid
	}
}

func isNumber(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

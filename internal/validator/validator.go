package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired        = "is required"
	ErrInvalidEmail    = "must be a valid email address"
	ErrMinLength       = "must be at least %s characters long"
	ErrMaxLength       = "must be at most %s characters long"
	ErrMinValue        = "must be at least %s"
	ErrMaxValue        = "must be at most %s"
	ErrMinItems        = "must contain at least %s item(s)"
	ErrMaxItems        = "must contain at most %s item(s)"
	ErrNotBlank        = "must not be blank"
	ErrDefaultInvalid  = "is invalid"
	ErrInvalidPassword = "must be at least 8 characters long and include at least one uppercase letter, " +
		"one lowercase letter, one number, and one special character (!@#$%^&*)."
)

var hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("notblank", validateNotBlank)

	// report JSON field names so that clients can match errors to their payload
	validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		if name == "" {
			return fld.Name
		}

		return name
	})

	return validator
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrInvalidEmail
	case "notblank":
		return ErrNotBlank
	case "password":
		return ErrInvalidPassword
	case "min", "gte":
		return boundMessage(err, ErrMinLength, ErrMinItems, ErrMinValue)
	case "max", "lte":
		return boundMessage(err, ErrMaxLength, ErrMaxItems, ErrMaxValue)
	default:
		return ErrDefaultInvalid
	}
}

// boundMessage picks the wording of a min/max violation by the kind of the
// validated field.
func boundMessage(err validator.FieldError, length, items, value string) string {
	switch err.Kind() {
	case reflect.String:
		return fmt.Sprintf(length, err.Param())
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf(items, err.Param())
	default:
		return fmt.Sprintf(value, err.Param())
	}
}

package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()
	_ = v.RegisterValidation("player", validatePlayer)
	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidateVar validates a single value against a tag
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

// FormatValidationError formats validation errors into a field map without
// leaking struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "player":
			errs[field] = "Must be a non-blank identifier without control characters"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validatePlayer accepts non-blank identifiers with no control characters
func validatePlayer(fl validator.FieldLevel) bool {
	player := fl.Field().String()
	if strings.TrimSpace(player) == "" {
		return false
	}
	for _, r := range player {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

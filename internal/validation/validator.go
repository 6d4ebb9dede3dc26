// Package validation wraps go-playground/validator so handlers can validate
// request bodies declaratively via struct tags and report field-level errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a JSON field name to a human-readable reason.
// It is returned by Validate so handlers can serialize it directly into the
// "Invalid input" error response.
type FieldErrors map[string]string

// Error implements the error interface.
func (e FieldErrors) Error() string {
	return fmt.Sprintf("invalid input (%d field(s))", len(e))
}

// Validator validates request structs against their `validate` tags.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for this API.
// Error messages reference fields by their JSON tag name, not the Go name.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		// Strip options like ",omitempty".
		for i := 0; i < len(name); i++ {
			if name[i] == ',' {
				return name[:i]
			}
		}
		return name
	})

	return &Validator{v: v}
}

// Validate checks s against its struct tags.
// Returns a FieldErrors on validation failure, nil on success.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(FieldErrors, len(validationErrs))
	for _, e := range validationErrs {
		fields[e.Field()] = friendlyMessage(e)
	}
	return fields
}

// friendlyMessage translates a validator tag into a caller-actionable reason.
func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "url":
		return "must be a valid URL"
	case "dive":
		return "contains an invalid entry"
	default:
		return "is invalid"
	}
}

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMessages converts a validator error into a field-to-message map
// suitable for rendering next to form fields. Returns nil when the error is
// not a validation error.
func ValidationMessages(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	messages := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			messages[field] = "this field is required"
		case "email":
			messages[field] = "must be a valid email address"
		case "url":
			messages[field] = "must be a valid URL"
		case "min":
			messages[field] = fmt.Sprintf("must be at least %s characters", fieldErr.Param())
		case "max":
			messages[field] = fmt.Sprintf("must be at most %s characters", fieldErr.Param())
		case "gte":
			messages[field] = fmt.Sprintf("must be at least %s", fieldErr.Param())
		default:
			messages[field] = fmt.Sprintf("failed %s validation", fieldErr.Tag())
		}
	}
	return messages
}

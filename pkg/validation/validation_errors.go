package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"resume-builder-backend/pkg/apperror"
)

// FormatValidationErrors converts validator.ValidationErrors into per-field
// details for the response envelope.
func FormatValidationErrors(err error) []apperror.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperror.FieldError{{Field: "body", Message: err.Error()}}
	}

	details := make([]apperror.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, apperror.FieldError{
			Field:   jsonFieldName(e.Field()),
			Message: formatSingleError(e),
		})
	}
	return details
}

func formatSingleError(e validator.FieldError) string {
	label := formatCamelCase(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))
	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces and . ' -", label)
	case "valid_phone":
		return fmt.Sprintf("%s must be a valid phone number (7-15 digits, optional +)", label)
	case "gtefield":
		return fmt.Sprintf("%s must not be before %s", label, formatCamelCase(param))
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// jsonFieldName lowercases the first camelCase segment boundary into the
// snake_case key the API uses.
func jsonFieldName(fieldName string) string {
	var result strings.Builder
	for i, r := range fieldName {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

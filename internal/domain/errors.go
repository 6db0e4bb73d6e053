package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is returned when input fails validation.
// This is often wrapped with a more specific error message.
var ErrValidation = errors.New("validation failed")

// FieldIssue describes a single violated constraint on a named input field.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field-level violation found while
// validating a request, so callers can report all of them at once rather
// than failing on the first. It wraps ErrValidation to support errors.Is.
type ValidationError struct {
	Issues []FieldIssue
}

// NewValidationError creates a ValidationError with a single field issue.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Issues: []FieldIssue{{Field: field, Message: message}},
	}
}

// Add appends another field issue to the error.
func (e *ValidationError) Add(field, message string) {
	e.Issues = append(e.Issues, FieldIssue{Field: field, Message: message})
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return ErrValidation.Error()
	}

	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Unwrap returns ErrValidation to support errors.Is checks.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")

	// ErrInsufficientData is returned when brief generation is requested but
	// the principal has no journal entries, documents, financial items, or
	// timeline events to build a brief from.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrGenerationFailed wraps completion-service and transport failures.
	// The underlying error is logged server-side; clients get a generic message.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrPersistenceFailed is returned when a generated summary could not be
	// written back to the store. The generated text is discarded.
	ErrPersistenceFailed = errors.New("persistence failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

package models

import (
	"errors"
	"fmt"
)

// ValidationError is raised before any write when a form field is unusable
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ErrNotFound is returned when no row matches the requested identifier
var ErrNotFound = errors.New("record not found")

package services

import (
	"errors"
	"strings"
)

// ErrRestaurantNotFound is returned when a restaurant lookup by ID finds nothing
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ValidationError carries the client-facing messages of a rejected request
type ValidationError struct {
	Messages []string
}

// NewValidationError creates a ValidationError with the given messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

package util

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicateKey marks a unique-index violation surfaced by the store.
	// Callers may retry with a different key; it is never a generic failure.
	ErrDuplicateKey = errors.New("duplicate key")

	ErrNotFound           = errors.New("not found")
	ErrInstructorRequired = errors.New("instructorId must reference a user with role=instructor")
)

// ValidationError carries the full list of problems found before a write;
// the write is skipped when the list is non-empty.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// Package apperrors defines the application error taxonomy. Handlers map
// these onto HTTP status codes; anything else surfaces as a generic 500.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the referenced trip or user does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthenticated means no valid session accompanied the request.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidCredentials is deliberately the same for unknown username
	// and wrong password, so login never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError reports the first failing input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation builds a ValidationError for a field.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ForbiddenError reports a role/state policy violation.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

// Forbidden builds a ForbiddenError.
func Forbidden(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

// ConflictError reports a uniqueness violation, e.g. a duplicate username.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Conflict builds a ConflictError.
func Conflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrNotOwner is returned when a mutation is attempted by a user
	// who does not own the target entity.
	ErrNotOwner = errors.New("user does not own this entity")
)

// ValidationError carries the field that failed validation along with a
// human-readable reason. It wraps one of the sentinel errors above so
// callers can classify it with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// IsValidationError reports whether err represents invalid entity data,
// covering both ErrValidation wrappers and the per-field sentinels.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	for _, sentinel := range []error{
		ErrValidation,
		ErrInvalidID,
		ErrEmptyUserID,
		ErrEmptyName,
		ErrEmptyEmail,
		ErrInvalidEmail,
		ErrPasswordTooShort,
		ErrPasswordTooLong,
		ErrEmptyPassword,
		ErrEmptyHashedPassword,
		ErrEmptyPlaceID,
		ErrEmptyTitle,
		ErrDescriptionTooShort,
		ErrEmptyAddress,
		ErrEmptyOwnerID,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}

package service

import (
	"errors"
	"fmt"
)

// Common sentinel errors returned by the services. Handlers map these to
// HTTP statuses; anything else surfaces as an internal error.
var (
	// ErrPlaceNotFound indicates that the place does not exist
	ErrPlaceNotFound = errors.New("place not found")

	// ErrUserNotFound indicates that the user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNotPlaceOwner indicates a mutation attempted by someone other
	// than the place's owner
	ErrNotPlaceOwner = errors.New("requester does not own this place")

	// ErrEmailTaken indicates a signup with an already-registered email
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login. Deliberately shared
	// between "no such user" and "wrong password" so the two cases are
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ServiceError wraps errors from the services with operation context.
type ServiceError struct {
	// Service is the service that failed (e.g., "place", "user")
	Service string
	// Operation is the operation that failed (e.g., "create_place")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError wraps err with service and operation context. Sentinel
// errors defined above pass through unwrapped so callers can match them
// directly.
func newServiceError(svc, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range []error{
		ErrPlaceNotFound,
		ErrUserNotFound,
		ErrNotPlaceOwner,
		ErrEmailTaken,
		ErrInvalidCredentials,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}

	return &ServiceError{
		Service:   svc,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/placeshare/places-api/internal/api/shared"
	"github.com/placeshare/places-api/internal/domain"
	"github.com/placeshare/places-api/internal/service"
	"github.com/placeshare/places-api/internal/service/auth"
	"github.com/placeshare/places-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Token errors surface through the auth gate
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusForbidden

	// Ownership errors
	case errors.Is(err, service.ErrNotPlaceOwner),
		errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden

	// Login failures
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, service.ErrPlaceNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, store.ErrPlaceNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound

	// Duplicate signups and invalid input data both come back as
	// unprocessable, matching the API's published contract
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	case domain.IsValidationError(err):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// given error. Internal details never pass through here.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Authentication failed"

	case errors.Is(err, service.ErrNotPlaceOwner),
		errors.Is(err, domain.ErrNotOwner):
		return "You are not allowed to modify this place."

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials, could not log you in."

	case errors.Is(err, service.ErrPlaceNotFound),
		errors.Is(err, store.ErrPlaceNotFound):
		return "Could not find place for the provided id."

	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return "Could not find user for the provided id."

	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, store.ErrEmailExists):
		return "User exists already, please login instead."

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid inputs passed, please check your data."

	case domain.IsValidationError(err):
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Sprintf("Invalid %s, please check your data.", validationErr.Field)
		}
		return "Invalid inputs passed, please check your data."

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps err to a status code and safe message and writes the
// response. messageOverride replaces the derived message when non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, messageOverride string) {
	status := MapErrorToStatusCode(err)

	message := messageOverride
	if message == "" {
		message = GetSafeErrorMessage(err)
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError converts a validator error into a user-friendly
// message without echoing submitted values back.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Invalid inputs passed, please check your data."
}

// getValidationTagMessage maps validation tags to user-friendly fragments.
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}

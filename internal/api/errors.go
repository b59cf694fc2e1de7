package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openstays/stays-api/internal/domain"
	"github.com/openstays/stays-api/internal/service"
	"github.com/openstays/stays-api/internal/service/auth"
	"github.com/openstays/stays-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Duplicate review sits in the policy family but is a conflict, not a
	// permission problem.
	case errors.Is(err, service.ErrDuplicateReview):
		return http.StatusConflict

	// Policy errors
	case service.IsPolicyError(err):
		return http.StatusForbidden

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		service.IsReferenceError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, auth.ErrMissingToken):
		return "Authentication required"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid email or password"

	// Policy errors
	case errors.Is(err, service.ErrSelfReview):
		return "You cannot review your own place"

	case errors.Is(err, service.ErrDuplicateReview):
		return "You have already reviewed this place"

	case errors.Is(err, service.ErrEmailChangeNotAllowed):
		return "Email changes are not permitted on this path"

	case errors.Is(err, service.ErrPasswordChangeNotAllowed):
		return "Password changes are not permitted on this path"

	case errors.Is(err, service.ErrNotPlaceOwner):
		return "You do not own this place"

	// Reference errors
	case errors.Is(err, service.ErrOwnerNotFound):
		return "Owner does not exist"

	case errors.Is(err, service.ErrReviewUserNotFound):
		return "Review author does not exist"

	case errors.Is(err, service.ErrReviewPlaceNotFound):
		return "Reviewed place does not exist"

	case errors.Is(err, service.ErrAmenityRefNotFound):
		return "Amenity does not exist"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"

	case errors.Is(err, store.ErrAmenityNameExists):
		return "Amenity name already taken"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrPlaceNotFound):
		return "Place not found"

	case errors.Is(err, store.ErrReviewNotFound):
		return "Review not found"

	case errors.Is(err, store.ErrAmenityNotFound):
		return "Amenity not found"

	// Validation errors carry their own caller-correctable message.
	case errors.Is(err, domain.ErrValidation):
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)
		}
		return "Validation error"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validator tag
// failures and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'LoginRequest.Email' Error:Field validation for
	// 'Email' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
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

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
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
	case "gt":
		return "must be greater than the minimum"
	case "latitude", "longitude":
		return "out of range"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

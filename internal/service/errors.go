package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for
// with errors.Is().
//
// Two families exist beyond the store-level sentinels:
//   - reference errors: a related entity named by the request does not exist
//     (API layer maps these to HTTP 400)
//   - policy errors: the request names real entities but violates a business
//     rule (API layer maps these to HTTP 403, duplicate review to 409)
//
// The specific sentinels wrap their family parent, so errors.Is(err,
// ErrReference) matches any reference failure while errors.Is(err,
// ErrOwnerNotFound) still identifies the exact condition.
var (
	// ErrReference is the parent sentinel for failed related-entity lookups.
	ErrReference = errors.New("referenced entity does not exist")

	// ErrOwnerNotFound indicates the owner named by a place does not exist.
	ErrOwnerNotFound = fmt.Errorf("%w: owner not found", ErrReference)

	// ErrReviewUserNotFound indicates the author named by a review does not exist.
	ErrReviewUserNotFound = fmt.Errorf("%w: review user not found", ErrReference)

	// ErrReviewPlaceNotFound indicates the place named by a review does not exist.
	ErrReviewPlaceNotFound = fmt.Errorf("%w: review place not found", ErrReference)

	// ErrAmenityRefNotFound indicates an amenity id attached to a place does
	// not resolve to a stored amenity.
	ErrAmenityRefNotFound = fmt.Errorf("%w: amenity not found", ErrReference)
)

var (
	// ErrPolicy is the parent sentinel for business rule violations.
	ErrPolicy = errors.New("operation violates a business rule")

	// ErrSelfReview indicates a user attempted to review their own place.
	ErrSelfReview = fmt.Errorf("%w: users cannot review their own place", ErrPolicy)

	// ErrDuplicateReview indicates the user has already reviewed this place.
	ErrDuplicateReview = fmt.Errorf("%w: user has already reviewed this place", ErrPolicy)

	// ErrEmailChangeNotAllowed indicates an email change was requested
	// through a path that does not permit it.
	ErrEmailChangeNotAllowed = fmt.Errorf("%w: email change not allowed", ErrPolicy)

	// ErrPasswordChangeNotAllowed indicates a password change was requested
	// through a path that does not permit it.
	ErrPasswordChangeNotAllowed = fmt.Errorf("%w: password change not allowed", ErrPolicy)

	// ErrNotPlaceOwner indicates a destructive place operation was requested
	// by a user who neither owns the place nor holds the admin flag.
	ErrNotPlaceOwner = fmt.Errorf("%w: requesting user does not own this place", ErrPolicy)
)

// IsReferenceError reports whether err belongs to the reference family.
func IsReferenceError(err error) bool {
	return errors.Is(err, ErrReference)
}

// IsPolicyError reports whether err belongs to the policy family.
func IsPolicyError(err error) bool {
	return errors.Is(err, ErrPolicy)
}

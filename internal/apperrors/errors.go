// Package apperrors holds the error kinds shared by the persistence layer,
// the form validation and the HTTP handlers.
package apperrors

import "errors"

var (
	// ErrValidation marks a submitted form that failed validation.
	ErrValidation = errors.New("validation failed")

	// ErrConstraintViolation marks an insert rejected by a unique constraint.
	ErrConstraintViolation = errors.New("unique constraint violated")

	// ErrRecordNotFound is returned by exact-match lookups that found nothing.
	ErrRecordNotFound = errors.New("record not found")

	ErrRouteNotFound = errors.New("route not found")
	ErrInternalFault = errors.New("internal fault")
)

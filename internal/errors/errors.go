// Package errors defines the sentinel errors storage and handlers agree on,
// plus their mapping onto HTTP status codes.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound signals a record that does not exist or is not visible to
	// the requesting user.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized signals a missing or expired session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden signals a record owned by someone else.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict signals a uniqueness violation (duplicate email, second
	// entry on the same day).
	ErrConflict = errors.New("conflict")

	// ErrInvalid signals malformed or missing input fields.
	ErrInvalid = errors.New("invalid input")
)

// Invalidf wraps ErrInvalid with a field-level explanation.
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalid}, args...)...)
}

// NotFoundf wraps ErrNotFound with context.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

// HTTPStatus maps a domain error to the status code the API responds with.
// Unknown errors map to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Package apperror holds the error taxonomy shared by services, middleware
// and handlers, and its mapping onto HTTP status codes.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Every *Error wraps exactly one of them.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrExpired         = errors.New("token expired")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation error")
	ErrRateLimited     = errors.New("rate limited")
)

// Error carries a kind and the human readable detail sent to the client
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func New(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return New(ErrNotFound, format, args...)
}

func Conflict(format string, args ...interface{}) *Error {
	return New(ErrConflict, format, args...)
}

func Unauthenticated(format string, args ...interface{}) *Error {
	return New(ErrUnauthenticated, format, args...)
}

func Forbidden(format string, args ...interface{}) *Error {
	return New(ErrForbidden, format, args...)
}

func Validation(format string, args ...interface{}) *Error {
	return New(ErrValidation, format, args...)
}

// Status maps an error onto the HTTP status returned to the caller
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Detail returns the client-facing message. Unclassified errors are hidden.
func Detail(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Detail
	}
	return "Internal server error"
}

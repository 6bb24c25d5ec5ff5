// Package apperror classifies failures of the contact book so the API layer
// can map them to HTTP status codes without inspecting storage errors.
package apperror

import (
	"errors"
	"net/http"
)

// Kind identifies the class of an application error.
type Kind string

const (
	// KindValidation indicates malformed or missing input.
	KindValidation Kind = "VALIDATION"
	// KindNotFound indicates no entity exists at the requested id.
	KindNotFound Kind = "NOT_FOUND"
	// KindConflict indicates a uniqueness violation.
	KindConflict Kind = "CONFLICT"
	// KindInternal indicates a storage failure or an unexpected error.
	KindInternal Kind = "INTERNAL"
)

// Error is a classified application error. Message is safe to show to a
// client; Cause is kept for logging only.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
	Cause   error
}

// Error returns the client-safe message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Validation creates a validation error with optional field-level detail.
func Validation(msg string, fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

// NotFound creates a not-found error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict creates a conflict error wrapping the constraint failure.
func Conflict(msg string, cause error) *Error {
	return &Error{Kind: KindConflict, Message: msg, Cause: cause}
}

// Internal wraps an unexpected failure behind a generic message.
func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Cause: cause}
}

// KindOf reports the kind of err. Unclassified errors are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err is an application error of the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// StatusCode maps an error to its HTTP status.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

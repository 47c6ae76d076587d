package apperror

import (
	"errors"
	"net/http"
)

// Kind labels the error family surfaced to clients in the errorType field.
type Kind string

const (
	KindClient        Kind = "CLIENT ERROR"
	KindNotFound      Kind = "NOT FOUND"
	KindAuthorization Kind = "AUTHORIZATION ERROR"
	KindAdmin         Kind = "ADMIN ERROR"
	KindServer        Kind = "SERVER ERROR"
)

// Error is a tagged business error carrying the HTTP status to render.
// Every rule violation in the booking core is one of these; anything else
// reaching a handler is wrapped as a SERVER ERROR.
type Error struct {
	Kind    Kind   `json:"errorType"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

// Client reports a malformed or conflicting request (400).
func Client(message string) *Error {
	return New(KindClient, http.StatusBadRequest, message)
}

// Admin reports a rejected admin operation (400).
func Admin(message string) *Error {
	return New(KindAdmin, http.StatusBadRequest, message)
}

// NotFound reports a missing resource (404).
func NotFound(message string) *Error {
	return New(KindNotFound, http.StatusNotFound, message)
}

// Forbidden reports access to a resource the caller does not own or a
// missing role (403).
func Forbidden(message string) *Error {
	return New(KindAuthorization, http.StatusForbidden, message)
}

// Server wraps an unexpected failure with a generic client-facing message.
func Server(message string) *Error {
	return New(KindServer, http.StatusInternalServerError, message)
}

// From extracts the *Error from err, or wraps err as a SERVER ERROR with a
// generic message so infrastructure details never leak to clients.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Server("Internal server error")
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

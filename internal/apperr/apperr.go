// Package apperr defines the typed application errors that the HTTP layer
// translates into status codes and response bodies.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable error codes returned in API error bodies.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeUpstream   = "UPSTREAM_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// Error carries a stable string code and the HTTP status it maps to.
type Error struct {
	Code    string
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Validation returns a 400 validation failure carrying the violated rule's
// message.
func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusBadRequest, Message: message}
}

// Upstream returns a 502 error for a failed or unreachable external service.
func Upstream(message string) *Error {
	return &Error{Code: CodeUpstream, Status: http.StatusBadGateway, Message: message}
}

// Upstreamf is Upstream with fmt.Sprintf formatting.
func Upstreamf(format string, args ...any) *Error {
	return Upstream(fmt.Sprintf(format, args...))
}

// NotFound returns a 404 error for a routing miss.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Status: http.StatusNotFound, Message: message}
}

// As unwraps err into an *Error if one is anywhere in its chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

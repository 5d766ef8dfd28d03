package httperr

import (
	"fmt"
	"net/http"
)

// Error is a typed API failure carrying the HTTP status it translates to.
// Services raise these as soon as a condition is detected; the handler layer
// renders them with Respond.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFound reports a referenced entity that does not exist.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// Forbidden reports an entity that exists but does not belong to the caller.
func Forbidden(format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusForbidden, Message: fmt.Sprintf(format, args...)}
}

// Validation reports input failing field constraints.
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

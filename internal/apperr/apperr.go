// Package apperr defines the request-terminating error taxonomy. Each error
// carries a fixed HTTP status and a fixed detail message; handlers map them to
// a {"detail": ...} JSON body.
package apperr

import "net/http"

// Error is a terminal request error with a fixed status and message.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// New builds an Error with an arbitrary status.
func New(status int, detail string) *Error {
	return &Error{Status: status, Detail: detail}
}

// Unauthorized covers missing, invalid or expired credentials.
func Unauthorized(detail string) *Error {
	return New(http.StatusUnauthorized, detail)
}

// Forbidden covers an authenticated identity acting on a resource it does not own.
func Forbidden(detail string) *Error {
	return New(http.StatusForbidden, detail)
}

// NotFound covers a target id that does not resolve to an existing row.
func NotFound(detail string) *Error {
	return New(http.StatusNotFound, detail)
}

// Conflict covers uniqueness violations on create or rename.
func Conflict(detail string) *Error {
	return New(http.StatusConflict, detail)
}

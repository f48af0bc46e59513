package apperr

import (
	"errors"
	"fmt"
)

// Code classifies an application error.
type Code string

const (
	CodeValidation     Code = "VALIDATION"     // 400
	CodeConflict       Code = "CONFLICT"       // 400, matching the auth contract
	CodeAuthentication Code = "AUTHENTICATION" // 403
	CodeNotFound       Code = "NOT_FOUND"      // 404
	CodeInternal       Code = "INTERNAL"       // 500
)

// Error is a structured error with a code, an HTTP status and a
// client-facing message. Detail carries extra context (for example the
// validation failure) that may be echoed in the response envelope.
type Error struct {
	Code    Code
	Status  int
	Message string
	Detail  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidation creates a 400 error for malformed input.
func NewValidation(detail string) *Error {
	return &Error{
		Code:    CodeValidation,
		Status:  400,
		Message: "Validation error",
		Detail:  detail,
	}
}

// NewConflict creates a 400 error for a duplicate unique field.
func NewConflict(msg string) *Error {
	return &Error{
		Code:    CodeConflict,
		Status:  400,
		Message: msg,
	}
}

// NewAuthentication creates a 403 error for failed credential or token
// checks. The message never distinguishes an unknown email from a wrong
// password.
func NewAuthentication() *Error {
	return &Error{
		Code:    CodeAuthentication,
		Status:  403,
		Message: "Auth Failed: Email or password is wrong",
	}
}

// NewNotFound creates a 404 error for a missing record.
func NewNotFound(resource string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Status:  404,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInternal creates a 500 error. The wrapped error's text goes into
// Detail; Message stays generic so internals never leak as the headline.
func NewInternal(err error) *Error {
	e := &Error{
		Code:    CodeInternal,
		Status:  500,
		Message: "Internal server error",
	}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

// Is reports whether err is, or wraps, an *Error with the given code.
func Is(err error, code Code) bool {
	var aErr *Error
	if errors.As(err, &aErr) {
		return aErr.Code == code
	}
	return false
}

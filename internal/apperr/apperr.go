package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an operation failure.
type Kind int

const (
	// Validation means the input was malformed or violated a schema constraint.
	Validation Kind = iota + 1
	// NotFound means the identity has no matching document.
	NotFound
	// Conflict means a uniqueness constraint was violated.
	Conflict
	// Upstream means a collaborator returned a failure.
	Upstream
)

// Error is a typed operation failure. Every failure is synchronous and
// surfaces directly to the caller; nothing is retried or swallowed.
type Error struct {
	Kind    Kind
	Message string
	// Status carries the collaborator's HTTP status for Upstream errors.
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validationf builds a Validation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a Conflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: Conflict, Message: fmt.Sprintf(format, args...)}
}

// Upstreamf builds an Upstream error carrying the collaborator's status.
func Upstreamf(status int, format string, args ...any) *Error {
	return &Error{Kind: Upstream, Status: status, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err, or 0 when err is not a typed Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool {
	return KindOf(err) == NotFound
}

// IsValidation reports whether err is a Validation error.
func IsValidation(err error) bool {
	return KindOf(err) == Validation
}

// IsConflict reports whether err is a Conflict error.
func IsConflict(err error) bool {
	return KindOf(err) == Conflict
}

package result

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ncobase/mediator/ecode"
)

// Error describes a failure carried inside a Result.
//
// An Error is either plain (internal / unclassified) or an HTTP error, which
// additionally carries a transport status code. Errors are immutable values
// and are compared by Code and Message only.
type Error struct {
	Code    string
	Message string
	Cause   error

	status int
}

// NewError creates a plain error.
func NewError(code, message string) Error {
	return Error{Code: code, Message: message}
}

// WrapError creates a plain error caused by err.
func WrapError(code, message string, cause error) Error {
	return Error{Code: code, Message: message, Cause: cause}
}

// HTTP creates an error that maps to the given transport status.
func HTTP(status int, code, message string) Error {
	return Error{Code: code, Message: message, status: status}
}

// AsHTTP tags an existing error with a transport status.
func AsHTTP(status int, err Error) Error {
	err.status = status
	return err
}

// Internal converts an unexpected host or integration failure into a generic error.
func Internal(cause error) Error {
	return Error{Code: ecode.Internal, Message: ecode.Text(ecode.Internal), Cause: cause}
}

// Canceled converts a context error into a failure.
func Canceled(cause error) Error {
	if cause == nil {
		cause = context.Canceled
	}
	return Error{Code: ecode.Canceled, Message: ecode.Text(ecode.Canceled), Cause: cause}
}

// NotFound returns an HTTP 404 error for the named resource.
func NotFound(resource, key string) Error {
	msg := ecode.NotExist(resource)
	if key != "" {
		msg = ecode.NotExist(fmt.Sprintf("%s (%s)", resource, key))
	}
	return HTTP(ecode.ToHTTPStatus(ecode.NotFound), ecode.NotFound, msg)
}

// Conflict returns an HTTP 409 error.
func Conflict(message string) Error {
	return HTTP(ecode.ToHTTPStatus(ecode.Conflict), ecode.Conflict, message)
}

// HTTPStatus returns the transport status carried by the error, if any.
func (e Error) HTTPStatus() (int, bool) {
	return e.status, e.status != 0
}

// IsHTTP reports whether the error carries a transport status.
func (e Error) IsHTTP() bool {
	return e.status != 0
}

// Equal reports whether two errors have the same code and message.
func (e Error) Equal(other Error) bool {
	return e.Code == other.Code && e.Message == other.Message
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the cause.
func (e Error) Unwrap() error {
	return e.Cause
}

// Is matches other Error values by code and message.
func (e Error) Is(target error) bool {
	var t Error
	if errors.As(target, &t) {
		return e.Equal(t)
	}
	return false
}

// FirstHTTP returns the first error carrying a transport status.
func FirstHTTP(errs []Error) (Error, bool) {
	for _, e := range errs {
		if e.IsHTTP() {
			return e, true
		}
	}
	return Error{}, false
}

// Join renders errors as "code: message; code: message".
func Join(errs []Error) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Code+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// FromError converts a Go error into a result error. Errors that already are
// result errors are returned verbatim; context errors become Canceled;
// everything else becomes Internal.
func FromError(err error) Error {
	var re Error
	if errors.As(err, &re) {
		return re
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Canceled(err)
	}
	return Internal(err)
}

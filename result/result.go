// Package result provides the success/failure containers returned by every
// request handler in place of panics or sentinel errors for expected failures.
//
// A Result is either succeeded with no errors, or failed with at least one
// Error. Of[T] additionally carries a value that is only accessible when the
// result succeeded. Illegal combinations are rejected at construction time
// with a panic, since they indicate a bug in the calling code.
//
// # Composition
//
//	r := result.Bind(loadUser(id), func(u User) result.Of[Profile] {
//	    return loadProfile(u.ProfileID)
//	})
//
//	msg := result.Match(r,
//	    func(p Profile) string { return p.Name },
//	    func(errs []result.Error) string { return result.Join(errs) },
//	)
package result

import (
	"errors"
	"fmt"

	"github.com/ncobase/mediator/ecode"
)

var (
	// ErrInvalidResultState is wrapped by the panic raised on illegal construction.
	ErrInvalidResultState = errors.New("result: invalid result state")
	// ErrInvalidResultAccess is wrapped by the panic raised on illegal value access.
	ErrInvalidResultAccess = errors.New("result: invalid result access")
)

// InvalidResultStateError is the panic value for illegal construction.
type InvalidResultStateError struct {
	Reason string
}

func (e *InvalidResultStateError) Error() string {
	return ErrInvalidResultState.Error() + ": " + e.Reason
}
func (e *InvalidResultStateError) Unwrap() error { return ErrInvalidResultState }

// InvalidResultAccessError is the panic value for reading the value of a
// failed or uninitialized result.
type InvalidResultAccessError struct {
	Reason string
	Errors []Error
}

func (e *InvalidResultAccessError) Error() string {
	return ErrInvalidResultAccess.Error() + ": " + e.Reason
}
func (e *InvalidResultAccessError) Unwrap() error { return ErrInvalidResultAccess }

// Uninitialized is reported by the zero value of Result and Of.
var Uninitialized = NewError(ecode.Uninitialized, ecode.Text(ecode.Uninitialized))

// Result is an outcome without a payload.
type Result struct {
	init   bool
	errors []Error
}

// Ok creates a succeeded result.
func Ok() Result {
	return newResult(true, nil)
}

// Fail creates a failed result. At least one error is required.
func Fail(errs ...Error) Result {
	return newResult(false, errs)
}

// Failf creates a failed result with a single plain error whose message is
// formatted with fmt.Sprintf.
func Failf(code, format string, args ...any) Result {
	return newResult(false, []Error{NewError(code, fmt.Sprintf(format, args...))})
}

func newResult(succeeded bool, errs []Error) Result {
	validate(succeeded, errs)
	var cp []Error
	if len(errs) > 0 {
		cp = make([]Error, len(errs))
		copy(cp, errs)
	}
	return Result{init: true, errors: cp}
}

func validate(succeeded bool, errs []Error) {
	switch {
	case succeeded && len(errs) > 0:
		panic(&InvalidResultStateError{Reason: "cannot assign errors when creating a successful result"})
	case !succeeded && len(errs) == 0:
		panic(&InvalidResultStateError{Reason: "cannot create a failed result when there are no errors"})
	}
}

// Succeeded reports whether the result is in its success state.
func (r Result) Succeeded() bool {
	return r.init && len(r.errors) == 0
}

// Failed reports whether the result is in its failed state.
func (r Result) Failed() bool {
	return !r.Succeeded()
}

// Errors returns a copy of the errors.
func (r Result) Errors() []Error {
	if !r.init {
		return []Error{Uninitialized}
	}
	if len(r.errors) == 0 {
		return nil
	}
	out := make([]Error, len(r.errors))
	copy(out, r.errors)
	return out
}

// Err returns the errors joined into a single Go error, or nil on success.
func (r Result) Err() error {
	return joinErr(r.Errors())
}

// String renders the errors, or "ok".
func (r Result) String() string {
	if r.Succeeded() {
		return "ok"
	}
	return Join(r.Errors())
}

// Of is an outcome carrying a value of type T on success.
type Of[T any] struct {
	res   Result
	value T
}

// Success creates a succeeded result holding v.
func Success[T any](v T) Of[T] {
	return Of[T]{res: newResult(true, nil), value: v}
}

// Failure creates a failed result. At least one error is required.
func Failure[T any](errs ...Error) Of[T] {
	return Of[T]{res: newResult(false, errs)}
}

// FromValue bridges a conventional (value, error) pair.
func FromValue[T any](v T, err error) Of[T] {
	if err != nil {
		return Failure[T](FromError(err))
	}
	return Success(v)
}

// Succeeded reports whether the result is in its success state.
func (r Of[T]) Succeeded() bool { return r.res.Succeeded() }

// Failed reports whether the result is in its failed state.
func (r Of[T]) Failed() bool { return r.res.Failed() }

// Errors returns a copy of the errors.
func (r Of[T]) Errors() []Error { return r.res.Errors() }

// Err returns the errors joined into a single Go error, or nil on success.
func (r Of[T]) Err() error { return r.res.Err() }

func (r Of[T]) String() string { return r.res.String() }

// Discard drops the payload, keeping the outcome.
func (r Of[T]) Discard() Result { return r.res }

// Value returns the payload of a succeeded result.
//
// It panics with *InvalidResultAccessError when the result failed or was
// never initialized; prefer Match, Bind or Unwrap.
func (r Of[T]) Value() T {
	if !r.res.init {
		panic(&InvalidResultAccessError{Reason: "the value of the result was not initialized"})
	}
	if r.res.Failed() {
		panic(&InvalidResultAccessError{Reason: "cannot access the value of a failed result", Errors: r.res.Errors()})
	}
	return r.value
}

// ValueOr returns the payload, or def when the result failed.
func (r Of[T]) ValueOr(def T) T {
	if r.Succeeded() {
		return r.value
	}
	return def
}

// Unwrap returns the payload and a nil error, or the zero value and the joined errors.
func (r Of[T]) Unwrap() (T, error) {
	if r.Succeeded() {
		return r.value, nil
	}
	var zero T
	return zero, r.Err()
}

func joinErr(errs []Error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	wrapped := make([]error, len(errs))
	for i, e := range errs {
		wrapped[i] = e
	}
	return errors.Join(wrapped...)
}

package validation

import (
	"errors"
	"strings"

	"github.com/ncobase/mediator/ecode"
	"github.com/ncobase/mediator/result"
)

// Error aggregates every failure of a validation run.
type Error struct {
	errs []FieldError
}

// NewError creates an aggregate. It returns nil when errs is empty.
func NewError(errs []FieldError) *Error {
	if len(errs) == 0 {
		return nil
	}
	cp := make([]FieldError, len(errs))
	copy(cp, errs)
	return &Error{errs: cp}
}

// FromResult collects the field errors carried by result errors, if any.
func FromResult(errs []result.Error) (*Error, bool) {
	var found []FieldError
	for _, e := range errs {
		if e.Code != ecode.Validation {
			continue
		}
		var fe FieldError
		if errors.As(e.Cause, &fe) {
			found = append(found, fe)
		} else {
			found = append(found, FieldError{Code: ecode.Validation, Message: e.Message})
		}
	}
	if len(found) == 0 {
		return nil, false
	}
	return NewError(found), true
}

// FieldErrors returns the failures in the order they were reported.
func (e *Error) FieldErrors() []FieldError {
	out := make([]FieldError, len(e.errs))
	copy(out, e.errs)
	return out
}

// Fields groups messages by field name.
func (e *Error) Fields() map[string][]string {
	out := make(map[string][]string, len(e.errs))
	for _, fe := range e.errs {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}

// Results converts every failure into a result error.
func (e *Error) Results() []result.Error {
	out := make([]result.Error, len(e.errs))
	for i, fe := range e.errs {
		out[i] = fe.Result()
	}
	return out
}

func (e *Error) Error() string {
	parts := make([]string, len(e.errs))
	for i, fe := range e.errs {
		parts[i] = fe.Error()
	}
	return ecode.Text(ecode.Validation) + ": " + strings.Join(parts, "; ")
}

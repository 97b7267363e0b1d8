// Package validation runs request validators and aggregates their failures.
//
// Validators report expected failures as FieldError values. A returned Go
// error means the validator itself could not run (a lookup failed, the
// context was canceled) and is never treated as a validation failure.
package validation

import (
	"context"
	"fmt"

	"github.com/ncobase/mediator/ecode"
	"github.com/ncobase/mediator/result"
	"golang.org/x/sync/errgroup"
)

// FieldError is a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Result converts the failure into a result error carrying it as the cause.
func (e FieldError) Result() result.Error {
	return result.AsHTTP(
		ecode.ToHTTPStatus(ecode.Validation),
		result.WrapError(ecode.Validation, e.Error(), e),
	)
}

// Validator checks a value of type T.
type Validator[T any] interface {
	Validate(ctx context.Context, v T) ([]FieldError, error)
}

// Func adapts a function to Validator.
type Func[T any] func(ctx context.Context, v T) ([]FieldError, error)

// Validate calls f.
func (f Func[T]) Validate(ctx context.Context, v T) ([]FieldError, error) {
	return f(ctx, v)
}

// Run executes all validators concurrently and waits for every one of them.
//
// Failures are returned in validator order, then in the order each validator
// reported them. The first infrastructure error, or the context error, is
// returned instead of the failures.
func Run[T any](ctx context.Context, validators []Validator[T], v T) ([]FieldError, error) {
	if len(validators) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	found := make([][]FieldError, len(validators))
	g, gctx := errgroup.WithContext(ctx)
	for i, validator := range validators {
		i, validator := i, validator
		g.Go(func() error {
			errs, err := validator.Validate(gctx, v)
			if err != nil {
				return fmt.Errorf("validator %T: %w", validator, err)
			}
			found[i] = errs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []FieldError
	for _, errs := range found {
		out = append(out, errs...)
	}
	return out, nil
}

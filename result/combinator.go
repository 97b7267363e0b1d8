package result

import (
	"context"
	"fmt"
)

// Bind invokes f with the value of a succeeded result and returns its result.
// A failed result is propagated with its errors unchanged and f is never invoked.
func Bind[A, B any](r Of[A], f func(A) Of[B]) Of[B] {
	if r.Failed() {
		return Of[B]{res: failedFrom(r.res)}
	}
	return f(r.value)
}

// BindResult is Bind for functions producing a Result without payload.
func BindResult[A any](r Of[A], f func(A) Result) Result {
	if r.Failed() {
		return failedFrom(r.res)
	}
	return f(r.value)
}

// Then chains a payload-less result into a function producing Of[B].
func Then[B any](r Result, f func() Of[B]) Of[B] {
	if r.Failed() {
		return Of[B]{res: failedFrom(r)}
	}
	return f()
}

// Map transforms the value of a succeeded result.
func Map[A, B any](r Of[A], f func(A) B) Of[B] {
	return Bind(r, func(a A) Of[B] {
		return Success(f(a))
	})
}

// BindCtx is the context-aware Bind. A succeeded input whose context is
// already done yields a Canceled failure without invoking f.
func BindCtx[A, B any](ctx context.Context, r Of[A], f func(context.Context, A) Of[B]) Of[B] {
	return Bind(r, func(a A) Of[B] {
		if err := ctx.Err(); err != nil {
			return Failure[B](Canceled(err))
		}
		return f(ctx, a)
	})
}

// MapCtx is the context-aware Map. f may fail with a Go error, which is
// converted with FromError.
func MapCtx[A, B any](ctx context.Context, r Of[A], f func(context.Context, A) (B, error)) Of[B] {
	return BindCtx(ctx, r, func(ctx context.Context, a A) Of[B] {
		return FromValue(f(ctx, a))
	})
}

// Match calls onSuccess with the value or onFailure with the errors.
// Exactly one branch is invoked.
func Match[A, T any](r Of[A], onSuccess func(A) T, onFailure func([]Error) T) T {
	if r.Succeeded() {
		return onSuccess(r.value)
	}
	return onFailure(r.Errors())
}

// MatchResult is Match for payload-less results.
func MatchResult[T any](r Result, onSuccess func() T, onFailure func([]Error) T) T {
	if r.Succeeded() {
		return onSuccess()
	}
	return onFailure(r.Errors())
}

// Recover runs fn and converts a panic or a returned Go error into an
// Internal failure. Handlers use it at their boundary so that host failures
// never cross a Bind or Match chain. Invalid result construction and access
// are programmer errors and keep panicking.
func Recover[T any](fn func() (T, error)) (out Of[T]) {
	defer func() {
		if p := recover(); p != nil {
			switch p.(type) {
			case *InvalidResultStateError, *InvalidResultAccessError:
				panic(p)
			}
			err, ok := p.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", p)
			}
			out = Failure[T](Internal(err))
		}
	}()
	return FromValue(fn())
}

func failedFrom(r Result) Result {
	if !r.init {
		return newResult(false, []Error{Uninitialized})
	}
	return newResult(false, r.errors)
}

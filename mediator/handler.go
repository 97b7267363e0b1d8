package mediator

import (
	"context"

	"github.com/ncobase/mediator/result"
)

// Handler produces the outcome of a request.
type Handler[Req, Res any] interface {
	Handle(ctx context.Context, req Req) result.Of[Res]
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[Req, Res any] func(ctx context.Context, req Req) result.Of[Res]

// Handle calls f.
func (f HandlerFunc[Req, Res]) Handle(ctx context.Context, req Req) result.Of[Res] {
	return f(ctx, req)
}

// ValueHandler adapts a conventional (value, error) function. A returned
// result.Error is used as is; any other error becomes an internal failure.
func ValueHandler[Req, Res any](fn func(ctx context.Context, req Req) (Res, error)) Handler[Req, Res] {
	return HandlerFunc[Req, Res](func(ctx context.Context, req Req) result.Of[Res] {
		return result.FromValue(fn(ctx, req))
	})
}

// Unit is the payload of commands that return no value.
type Unit struct{}

// CommandHandler adapts a function returning a plain Result.
func CommandHandler[Req any](fn func(ctx context.Context, req Req) result.Result) Handler[Req, Unit] {
	return HandlerFunc[Req, Unit](func(ctx context.Context, req Req) result.Of[Unit] {
		return result.Then(fn(ctx, req), func() result.Of[Unit] {
			return result.Success(Unit{})
		})
	})
}

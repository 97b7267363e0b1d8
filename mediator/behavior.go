package mediator

import (
	"context"

	"github.com/ncobase/mediator/logging/logger"
	"github.com/ncobase/mediator/result"
	"github.com/ncobase/mediator/validation"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Next invokes the rest of the pipeline.
type Next[Res any] func(ctx context.Context) result.Of[Res]

// Behavior wraps the rest of the pipeline. A behavior either returns the
// outcome of next or short-circuits with its own.
type Behavior[Req, Res any] func(ctx context.Context, req Req, next Next[Res]) result.Of[Res]

// ValidationBehavior runs every validator before continuing. Any field error
// short-circuits with a failure carrying all of them.
func ValidationBehavior[Req, Res any](validators []validation.Validator[Req], l *logger.Logger) Behavior[Req, Res] {
	return func(ctx context.Context, req Req, next Next[Res]) result.Of[Res] {
		if len(validators) == 0 {
			l.Debugf(ctx, "no validators for %T", req)
			return next(ctx)
		}

		errs, err := validation.Run(ctx, validators, req)
		if err != nil {
			return result.Failure[Res](result.FromError(err))
		}
		if len(errs) > 0 {
			trace.SpanFromContext(ctx).AddEvent("validation failed",
				trace.WithAttributes(attribute.Int("mediator.validation.errors", len(errs))))
			l.Debugf(ctx, "validation of %T failed with %d errors", req, len(errs))
			return result.Failure[Res](validation.NewError(errs).Results()...)
		}
		return next(ctx)
	}
}

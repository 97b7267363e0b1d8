package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/ncobase/mediator/cache"
	"github.com/ncobase/mediator/config"
	"github.com/ncobase/mediator/data/metrics"
	"github.com/ncobase/mediator/ecode"
	"github.com/ncobase/mediator/logging/logger"
	"github.com/ncobase/mediator/result"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ncobase/mediator"

// Dispatcher sends requests through the pipeline.
type Dispatcher struct {
	registry   *Registry
	cache      cache.Cache
	codec      Codec
	defaultTTL time.Duration
	logger     *logger.Logger
	tracer     trace.Tracer
	metrics    metrics.Collector
	sealOnce   sync.Once
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithCache enables response caching. Without a cache, Cacheable requests
// go straight to their handler.
func WithCache(c cache.Cache) Option {
	return func(d *Dispatcher) { d.cache = c }
}

// WithDefaultTTL sets the lifetime of cached responses whose request does
// not set one. Non-positive values keep the default of five minutes.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(d *Dispatcher) {
		if ttl > 0 {
			d.defaultTTL = ttl
		}
	}
}

// WithCodec replaces the JSON codec used for cached responses.
func WithCodec(c Codec) Option {
	return func(d *Dispatcher) {
		if c != nil {
			d.codec = c
		}
	}
}

// WithLogger sets the logger. Defaults to logger.StdLogger().
func WithLogger(l *logger.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithTracer sets the tracer used for dispatch spans. Defaults to the global
// tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(d *Dispatcher) {
		if t != nil {
			d.tracer = t
		}
	}
}

// WithMetrics reports cache hits and misses to c.
func WithMetrics(c metrics.Collector) Option {
	return func(d *Dispatcher) {
		if c != nil {
			d.metrics = c
		}
	}
}

// New creates a dispatcher over r.
func New(r *Registry, opts ...Option) *Dispatcher {
	if r == nil {
		panic("mediator: nil registry")
	}
	d := &Dispatcher{
		registry:   r,
		codec:      JSONCodec{},
		defaultTTL: config.DefaultCacheTTL,
		logger:     logger.StdLogger(),
		tracer:     otel.Tracer(instrumentationName),
		metrics:    metrics.NoOpCollector{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DefaultTTL returns the lifetime applied to requests without their own.
func (d *Dispatcher) DefaultTTL() time.Duration {
	return d.defaultTTL
}

// Send dispatches req to its handler through validation and caching.
//
// An unregistered request type yields a handler_not_found failure.
// Dispatching with a Res that differs from the registered response type
// panics.
func Send[Req, Res any](ctx context.Context, d *Dispatcher, req Req) result.Of[Res] {
	d.sealOnce.Do(d.registry.seal)

	name := requestName(reflect.TypeOf((*Req)(nil)).Elem())
	ctx, span := d.tracer.Start(ctx, "mediator.Send "+name,
		trace.WithAttributes(attribute.String("mediator.request", name)))
	defer span.End()
	start := time.Now()

	res := dispatch[Req, Res](ctx, d, req, name)

	if res.Failed() {
		errs := res.Errors()
		span.SetStatus(codes.Error, errs[0].Code)
		span.SetAttributes(attribute.String("mediator.error.code", errs[0].Code))
		d.logger.Debugf(ctx, "dispatch %s failed in %s: %s", name, time.Since(start), res)
	} else {
		span.SetStatus(codes.Ok, "")
		d.logger.Debugf(ctx, "dispatch %s succeeded in %s", name, time.Since(start))
	}
	return res
}

// Execute dispatches a command registered with RegisterCommand.
func Execute[Req any](ctx context.Context, d *Dispatcher, req Req) result.Result {
	return Send[Req, Unit](ctx, d, req).Discard()
}

func dispatch[Req, Res any](ctx context.Context, d *Dispatcher, req Req, name string) result.Of[Res] {
	handler, validators, ok := lookup[Req, Res](d.registry)
	if !ok {
		return result.Failure[Res](result.HTTP(
			ecode.ToHTTPStatus(ecode.HandlerNotFound),
			ecode.HandlerNotFound,
			fmt.Sprintf("no handler registered for %s", name),
		))
	}
	if err := ctx.Err(); err != nil {
		return result.Failure[Res](result.Canceled(err))
	}

	validate := ValidationBehavior[Req, Res](validators, d.logger)
	caching := CachingBehavior[Req, Res](CachingOptions{
		Cache:      d.cache,
		Codec:      d.codec,
		DefaultTTL: d.defaultTTL,
		Logger:     d.logger,
		Metrics:    d.metrics,
	})
	terminal := func(ctx context.Context) result.Of[Res] {
		if err := ctx.Err(); err != nil {
			return result.Failure[Res](result.Canceled(err))
		}
		return handler.Handle(ctx, req)
	}

	return validate(ctx, req, func(ctx context.Context) result.Of[Res] {
		return caching(ctx, req, terminal)
	})
}

// Invalidate removes cached responses. Removing keys that are not cached
// is not an error.
func Invalidate(ctx context.Context, d *Dispatcher, keys ...string) error {
	if d.cache == nil {
		return nil
	}
	var errs []error
	for _, key := range keys {
		if err := d.cache.Remove(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("invalidate %q: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func requestName(t reflect.Type) string {
	return t.String()
}

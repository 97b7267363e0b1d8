package mediator

import (
	"context"
	"time"

	"github.com/ncobase/mediator/cache"
	"github.com/ncobase/mediator/data/metrics"
	"github.com/ncobase/mediator/logging/logger"
	"github.com/ncobase/mediator/result"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Cacheable is implemented by requests whose successful responses may be
// served from the cache.
type Cacheable interface {
	// CacheKey identifies the response. It is used verbatim.
	CacheKey() string
	// CacheTTL returns the lifetime of the entry, if the request sets one.
	CacheTTL() (time.Duration, bool)
}

// AsCacheable reports whether req opts into caching.
func AsCacheable(req any) (Cacheable, bool) {
	c, ok := req.(Cacheable)
	return c, ok
}

// EffectiveTTL returns the request TTL when it is set and positive, def
// otherwise.
func EffectiveTTL(c Cacheable, def time.Duration) time.Duration {
	if ttl, ok := c.CacheTTL(); ok && ttl > 0 {
		return ttl
	}
	return def
}

// CachingOptions configures CachingBehavior.
type CachingOptions struct {
	Cache      cache.Cache
	Codec      Codec
	DefaultTTL time.Duration
	Logger     *logger.Logger
	Metrics    metrics.Collector
}

// CachingBehavior serves cacheable requests from the cache and stores
// successful responses of misses. Cache failures never fail the request:
// read errors count as a miss, undecodable entries are removed and treated
// as a miss, and write errors are logged.
func CachingBehavior[Req, Res any](o CachingOptions) Behavior[Req, Res] {
	if o.Codec == nil {
		o.Codec = JSONCodec{}
	}
	if o.Logger == nil {
		o.Logger = logger.StdLogger()
	}
	if o.Metrics == nil {
		o.Metrics = metrics.NoOpCollector{}
	}

	return func(ctx context.Context, req Req, next Next[Res]) result.Of[Res] {
		cacheable, ok := AsCacheable(req)
		if !ok || o.Cache == nil {
			return next(ctx)
		}
		key := cacheable.CacheKey()
		if key == "" {
			o.Logger.Debugf(ctx, "empty cache key for %T, skipping cache", req)
			return next(ctx)
		}
		span := trace.SpanFromContext(ctx)

		if v, hit := lookupCached[Res](ctx, o, key); hit {
			o.Metrics.CacheLookup(true)
			span.AddEvent("cache hit", trace.WithAttributes(attribute.String("mediator.cache.key", key)))
			return result.Success(v)
		}
		if err := ctx.Err(); err != nil {
			return result.Failure[Res](result.Canceled(err))
		}
		o.Metrics.CacheLookup(false)
		span.AddEvent("cache miss", trace.WithAttributes(attribute.String("mediator.cache.key", key)))

		res := next(ctx)
		if res.Failed() {
			return res
		}

		data, err := o.Codec.Encode(res.Value())
		if err != nil {
			o.Logger.Warnf(ctx, "encode cached response %q: %v", key, err)
			return res
		}
		ttl := EffectiveTTL(cacheable, o.DefaultTTL)
		if err := o.Cache.Set(ctx, key, data, ttl); err != nil {
			o.Logger.Warnf(ctx, "write cache %q: %v", key, err)
		}
		return res
	}
}

func lookupCached[Res any](ctx context.Context, o CachingOptions, key string) (Res, bool) {
	var v Res
	data, ok, err := o.Cache.Get(ctx, key)
	if err != nil {
		if ctx.Err() == nil {
			o.Logger.Warnf(ctx, "read cache %q: %v", key, err)
		}
		return v, false
	}
	if !ok {
		return v, false
	}
	if err := o.Codec.Decode(data, &v); err != nil {
		o.Logger.Warnf(ctx, "decode cached response %q: %v", key, err)
		if err := o.Cache.Remove(ctx, key); err != nil {
			o.Logger.Warnf(ctx, "remove cache %q: %v", key, err)
		}
		var zero Res
		return zero, false
	}
	return v, true
}

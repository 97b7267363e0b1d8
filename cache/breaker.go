package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ncobase/mediator/config"
	"github.com/ncobase/mediator/data/metrics"
	"github.com/ncobase/mediator/logging/logger"
	"github.com/sony/gobreaker"
)

// ErrUnavailable wraps the error returned while the breaker rejects calls.
var ErrUnavailable = errors.New("cache: unavailable")

// Breaker fails fast while the wrapped cache keeps failing. Misses and
// context cancellation do not count as failures.
type Breaker struct {
	next Cache
	cb   *gobreaker.CircuitBreaker
}

var _ Cache = (*Breaker)(nil)

// WithBreaker wraps next in a circuit breaker.
func WithBreaker(next Cache, st gobreaker.Settings) *Breaker {
	if st.IsSuccessful == nil {
		st.IsSuccessful = func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		}
	}
	return &Breaker{next: next, cb: gobreaker.NewCircuitBreaker(st)}
}

// BreakerSettings builds breaker settings from configuration. State changes
// are logged and reported to collector; both may be nil.
func BreakerSettings(name string, cfg *config.Breaker, collector metrics.Collector, l *logger.Logger) gobreaker.Settings {
	st := gobreaker.Settings{Name: name}
	failures := uint32(5)
	if cfg != nil {
		st.MaxRequests = cfg.MaxRequests
		st.Interval = cfg.Interval
		st.Timeout = cfg.Timeout
		if cfg.ConsecutiveFailures > 0 {
			failures = cfg.ConsecutiveFailures
		}
	}
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= failures
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		if collector != nil {
			collector.BreakerState(name, from.String(), to.String())
		}
		if l != nil {
			l.Warnf(context.Background(), "cache breaker %s: %s -> %s", name, from, to)
		}
	}
	return st
}

// State returns the breaker state.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

type lookup struct {
	data []byte
	ok   bool
}

// Get implements Cache.
func (b *Breaker) Get(ctx context.Context, key string) ([]byte, bool, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		data, ok, err := b.next.Get(ctx, key)
		return lookup{data: data, ok: ok}, err
	})
	if err != nil {
		return nil, false, b.wrap(err)
	}
	l := res.(lookup)
	return l.data, l.ok, nil
}

// Set implements Cache.
func (b *Breaker) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Set(ctx, key, value, ttl)
	})
	return b.wrap(err)
}

// Remove implements Cache.
func (b *Breaker) Remove(ctx context.Context, key string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Remove(ctx, key)
	})
	return b.wrap(err)
}

// Refresh implements Cache.
func (b *Breaker) Refresh(ctx context.Context, key string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Refresh(ctx, key)
	})
	return b.wrap(err)
}

func (b *Breaker) wrap(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}

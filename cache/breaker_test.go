package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ncobase/mediator/config"
	"github.com/ncobase/mediator/data/metrics"
	"github.com/ncobase/mediator/logging/logger"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	ctx := context.Background()
	down := &failingCache{err: errors.New("redis down")}
	collector := metrics.NewDataCollector()

	b := WithBreaker(down, BreakerSettings("test", &config.Breaker{
		ConsecutiveFailures: 3,
		Timeout:             time.Hour,
	}, collector, logger.Discard()))

	for i := 0; i < 3; i++ {
		_, _, err := b.Get(ctx, "k")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnavailable)
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	_, _, err := b.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, b.Set(ctx, "k", nil, time.Minute), ErrUnavailable)
	assert.Equal(t, 3, down.calls, "open breaker must not reach the cache")

	stats := collector.GetStats()["cache"].(map[string]any)
	assert.Equal(t, int64(1), stats["breaker_trips"])
}

func TestBreakerIgnoresMissesAndCancellation(t *testing.T) {
	ctx := context.Background()
	b := WithBreaker(NewMemory(), BreakerSettings("test", &config.Breaker{ConsecutiveFailures: 1}, nil, nil))

	_, ok, err := b.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = b.Get(canceled, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestBreakerPassesThrough(t *testing.T) {
	ctx := context.Background()
	b := WithBreaker(NewMemory(), BreakerSettings("test", nil, nil, nil))

	require.NoError(t, b.Set(ctx, "k", []byte("v"), time.Minute))
	data, ok, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(data))
	require.NoError(t, b.Refresh(ctx, "k"))
	require.NoError(t, b.Remove(ctx, "k"))
}

func TestNewSelectsDriver(t *testing.T) {
	c := New(&config.Cache{Breaker: &config.Breaker{Enabled: false}}, nil, nil, nil)
	assert.IsType(t, &Memory{}, c)

	c = New(&config.Cache{Driver: DriverMemory, Breaker: &config.Breaker{Enabled: true}}, nil, nil, logger.Discard())
	assert.IsType(t, &Breaker{}, c)

	r, _, _ := newTestRedis(t)
	assert.IsType(t, &Redis{}, New(nil, r.rc, nil, nil))
}

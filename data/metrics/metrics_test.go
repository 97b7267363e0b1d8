package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataCollectorStats(t *testing.T) {
	c := NewDataCollector()
	c.RedisCommand("get", nil)
	c.RedisCommand("get", errors.New("timeout"))
	c.RedisCommand("set", nil)
	c.CacheLookup(true)
	c.CacheLookup(false)
	c.CacheLookup(false)
	c.BreakerState("cache", "closed", "open")
	c.BreakerState("cache", "open", "half-open")

	assert.Equal(t, int64(2), c.Command("get"))
	assert.Equal(t, int64(0), c.Command("del"))

	stats := c.GetStats()
	redis := stats["redis"].(map[string]any)
	assert.Equal(t, int64(3), redis["commands"])
	assert.Equal(t, int64(1), redis["errors"])

	cache := stats["cache"].(map[string]any)
	assert.Equal(t, int64(1), cache["hits"])
	assert.Equal(t, int64(2), cache["misses"])
	assert.Equal(t, int64(1), cache["breaker_trips"])
	assert.Equal(t, map[string]string{"cache": "half-open"}, cache["breakers"])
}

func TestHealthMonitor(t *testing.T) {
	c := NewDataCollector()
	h := NewHealthMonitor(c)
	h.RegisterComponent(CheckerFunc{ComponentName: "redis", Fn: func(context.Context) error { return nil }})
	h.RegisterComponent(CheckerFunc{ComponentName: "cache", Fn: func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		require.True(t, ok, "checks run under a timeout")
		return errors.New("down")
	}})

	assert.Equal(t, []string{"cache", "redis"}, h.Components())
	assert.Equal(t, map[string]bool{"cache": false, "redis": true}, h.CheckAll(context.Background()))
	assert.False(t, h.CheckComponent(context.Background(), "missing"))
	assert.Equal(t, map[string]bool{"cache": false, "redis": true}, c.GetStats()["health"])
}

func TestHealthMonitorNilCollector(t *testing.T) {
	h := NewHealthMonitor(nil)
	h.RegisterComponent(CheckerFunc{ComponentName: "x", Fn: func(context.Context) error { return nil }})
	assert.True(t, h.CheckComponent(context.Background(), "x"))
}

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ncobase/mediator/data/metrics"
	"github.com/redis/go-redis/v9"
)

// Hash fields of a stored entry.
const (
	dataField = "data"
	ttlField  = "ttl"
)

// Redis stores each entry as a hash holding the payload and its TTL in
// milliseconds, with the key expiring after that TTL.
type Redis struct {
	rc        *redis.Client
	collector metrics.CacheMetricsCollector
}

var _ Cache = (*Redis)(nil)

// NewRedis creates a Redis cache.
func NewRedis(rc *redis.Client) *Redis {
	return &Redis{rc: rc, collector: metrics.NoOpCollector{}}
}

// NewRedisWithMetrics creates a Redis cache reporting every command to collector.
func NewRedisWithMetrics(rc *redis.Client, collector metrics.CacheMetricsCollector) *Redis {
	c := NewRedis(rc)
	if collector != nil {
		c.collector = collector
	}
	return c
}

// Get retrieves a single entry
func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.rc == nil {
		c.collector.RedisCommand("hget", ErrNilClient)
		return nil, false, ErrNilClient
	}

	data, err := c.rc.HGet(ctx, key, dataField).Bytes()
	if errors.Is(err, redis.Nil) {
		c.collector.RedisCommand("hget", nil)
		return nil, false, nil
	}
	c.collector.RedisCommand("hget", err)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cache: %w", err)
	}
	return data, true, nil
}

// Set saves a single entry
func (c *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.rc == nil {
		c.collector.RedisCommand("hset", ErrNilClient)
		return ErrNilClient
	}
	if ttl < 0 {
		ttl = 0
	}

	_, err := c.rc.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, dataField, value, ttlField, ttl.Milliseconds())
		if ttl > 0 {
			pipe.PExpire(ctx, key, ttl)
		} else {
			pipe.Persist(ctx, key)
		}
		return nil
	})
	c.collector.RedisCommand("hset", err)

	if err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Remove deletes an entry
func (c *Redis) Remove(ctx context.Context, key string) error {
	if c.rc == nil {
		c.collector.RedisCommand("del", ErrNilClient)
		return ErrNilClient
	}

	err := c.rc.Del(ctx, key).Err()
	c.collector.RedisCommand("del", err)

	if err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}

// Refresh re-applies the TTL an entry was stored with
func (c *Redis) Refresh(ctx context.Context, key string) error {
	if c.rc == nil {
		c.collector.RedisCommand("pexpire", ErrNilClient)
		return ErrNilClient
	}

	ms, err := c.rc.HGet(ctx, key, ttlField).Int64()
	if errors.Is(err, redis.Nil) {
		c.collector.RedisCommand("hget", nil)
		return nil
	}
	c.collector.RedisCommand("hget", err)
	if err != nil {
		return fmt.Errorf("failed to read cache ttl: %w", err)
	}
	if ms <= 0 {
		return nil
	}

	err = c.rc.PExpire(ctx, key, time.Duration(ms)*time.Millisecond).Err()
	c.collector.RedisCommand("pexpire", err)

	if err != nil {
		return fmt.Errorf("failed to refresh cache: %w", err)
	}
	return nil
}

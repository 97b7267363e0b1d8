// Package redis builds go-redis clients from configuration.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncobase/mediator/config"
	"github.com/ncobase/mediator/data/metrics"
	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured is returned when no Redis address is configured.
var ErrNotConfigured = errors.New("redis: address is empty")

// NewClient connects to Redis and verifies the connection. The returned
// cleanup closes the client.
func NewClient(ctx context.Context, cfg *config.Redis) (*redis.Client, func(), error) {
	if !cfg.Enabled() {
		return nil, nil, ErrNotConfigured
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.Db,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		DialTimeout:  cfg.DialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis: failed to ping server: %w", err)
	}

	return client, func() { _ = client.Close() }, nil
}

// Checker reports the health of a Redis client.
type Checker struct {
	client *redis.Client
}

var _ metrics.HealthChecker = (*Checker)(nil)

// NewChecker creates a health checker for client.
func NewChecker(client *redis.Client) *Checker {
	return &Checker{client: client}
}

// Name implements metrics.HealthChecker.
func (c *Checker) Name() string {
	return "redis"
}

// Check implements metrics.HealthChecker.
func (c *Checker) Check(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}

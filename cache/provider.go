package cache

import (
	"context"

	"github.com/google/wire"
	"github.com/ncobase/mediator/config"
	"github.com/ncobase/mediator/data/metrics"
	"github.com/ncobase/mediator/logging/logger"
	"github.com/redis/go-redis/v9"
)

// ProviderSet is the wire provider set for the cache package
var ProviderSet = wire.NewSet(New)

// Drivers accepted by config.Cache.Driver.
const (
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// New selects the cache for cfg: Redis when a client is available (or the
// driver asks for it), memory otherwise, wrapped in a breaker when enabled.
func New(cfg *config.Cache, rc *redis.Client, collector metrics.Collector, l *logger.Logger) Cache {
	driver := ""
	if cfg != nil {
		driver = cfg.Driver
	}
	if driver == "" {
		driver = DriverMemory
		if rc != nil {
			driver = DriverRedis
		}
	}

	var c Cache
	switch driver {
	case DriverRedis:
		c = NewRedisWithMetrics(rc, collector)
	default:
		c = NewMemory()
	}

	if l != nil {
		l.Infof(context.Background(), "response cache driver: %s", driver)
	}

	if cfg != nil && cfg.Breaker != nil && cfg.Breaker.Enabled {
		c = WithBreaker(c, BreakerSettings("cache-"+driver, cfg.Breaker, collector, l))
	}
	return c
}

package config

import (
	"time"

	"github.com/spf13/viper"
)

// DefaultCacheTTL applies to cacheable requests without their own TTL.
const DefaultCacheTTL = 5 * time.Minute

// Cache holds the response cache settings.
type Cache struct {
	// Driver is "redis" or "memory". Empty selects redis when an address
	// is configured, memory otherwise.
	Driver     string        `json:"driver" yaml:"driver"`
	DefaultTTL time.Duration `json:"default_ttl" yaml:"default_ttl"`
	Breaker    *Breaker      `json:"breaker" yaml:"breaker"`
}

// Breaker configures the circuit breaker in front of the cache.
type Breaker struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// MaxRequests allowed through while half-open.
	MaxRequests uint32 `json:"max_requests" yaml:"max_requests"`
	// Interval clears the failure counts while closed.
	Interval time.Duration `json:"interval" yaml:"interval"`
	// Timeout is how long the breaker stays open.
	Timeout             time.Duration `json:"timeout" yaml:"timeout"`
	ConsecutiveFailures uint32        `json:"consecutive_failures" yaml:"consecutive_failures"`
}

func getCacheConfig(v *viper.Viper) *Cache {
	ttl := getDurationOrDefault(v, "cache.default_ttl", DefaultCacheTTL)
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		Driver:     v.GetString("cache.driver"),
		DefaultTTL: ttl,
		Breaker: &Breaker{
			Enabled:             getBoolOrDefault(v, "cache.breaker.enabled", true),
			MaxRequests:         getUint32OrDefault(v, "cache.breaker.max_requests", 1),
			Interval:            getDurationOrDefault(v, "cache.breaker.interval", time.Minute),
			Timeout:             getDurationOrDefault(v, "cache.breaker.timeout", 30*time.Second),
			ConsecutiveFailures: getUint32OrDefault(v, "cache.breaker.consecutive_failures", 5),
		},
	}
}

// Package metrics collects counters for the data layer and the response
// cache.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// CacheMetricsCollector for Redis cache operations
type CacheMetricsCollector interface {
	RedisCommand(command string, err error)
}

// Collector interface for data layer metrics
type Collector interface {
	CacheMetricsCollector
	CacheLookup(hit bool)
	BreakerState(name, from, to string)
	HealthCheck(component string, healthy bool)
}

// NoOpCollector implements Collector with no-op methods
type NoOpCollector struct{}

func (NoOpCollector) RedisCommand(string, error)          {}
func (NoOpCollector) CacheLookup(bool)                    {}
func (NoOpCollector) BreakerState(string, string, string) {}
func (NoOpCollector) HealthCheck(string, bool)            {}

// DataCollector keeps in-process counters.
type DataCollector struct {
	redisCommands atomic.Int64
	redisErrors   atomic.Int64
	cacheHits     atomic.Int64
	cacheMisses   atomic.Int64
	breakerTrips  atomic.Int64

	lastRedisCommand atomic.Value // time.Time

	mu           sync.RWMutex
	commands     map[string]int64
	breakers     map[string]string
	healthChecks map[string]bool
}

// NewDataCollector creates an empty collector.
func NewDataCollector() *DataCollector {
	c := &DataCollector{
		commands:     make(map[string]int64),
		breakers:     make(map[string]string),
		healthChecks: make(map[string]bool),
	}
	c.lastRedisCommand.Store(time.Time{})
	return c
}

// RedisCommand records Redis command metrics
func (c *DataCollector) RedisCommand(command string, err error) {
	c.redisCommands.Add(1)
	c.lastRedisCommand.Store(time.Now())
	if err != nil {
		c.redisErrors.Add(1)
	}

	c.mu.Lock()
	c.commands[command]++
	c.mu.Unlock()
}

// CacheLookup records a response cache hit or miss.
func (c *DataCollector) CacheLookup(hit bool) {
	if hit {
		c.cacheHits.Add(1)
	} else {
		c.cacheMisses.Add(1)
	}
}

// BreakerState records a circuit breaker transition.
func (c *DataCollector) BreakerState(name, _, to string) {
	if to == "open" {
		c.breakerTrips.Add(1)
	}
	c.mu.Lock()
	c.breakers[name] = to
	c.mu.Unlock()
}

// HealthCheck records health check results
func (c *DataCollector) HealthCheck(component string, healthy bool) {
	c.mu.Lock()
	c.healthChecks[component] = healthy
	c.mu.Unlock()
}

// Command returns how many times command was issued.
func (c *DataCollector) Command(command string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.commands[command]
}

// GetStats returns current statistics
func (c *DataCollector) GetStats() map[string]any {
	c.mu.RLock()
	commands := make(map[string]int64, len(c.commands))
	for k, v := range c.commands {
		commands[k] = v
	}
	breakers := make(map[string]string, len(c.breakers))
	for k, v := range c.breakers {
		breakers[k] = v
	}
	health := make(map[string]bool, len(c.healthChecks))
	for k, v := range c.healthChecks {
		health[k] = v
	}
	c.mu.RUnlock()

	return map[string]any{
		"redis": map[string]any{
			"commands":     c.redisCommands.Load(),
			"errors":       c.redisErrors.Load(),
			"by_command":   commands,
			"last_command": c.lastRedisCommand.Load(),
		},
		"cache": map[string]any{
			"hits":          c.cacheHits.Load(),
			"misses":        c.cacheMisses.Load(),
			"breaker_trips": c.breakerTrips.Load(),
			"breakers":      breakers,
		},
		"health":    health,
		"timestamp": time.Now(),
	}
}

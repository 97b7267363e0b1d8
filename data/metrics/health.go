package metrics

import (
	"context"
	"sort"
	"sync"
	"time"
)

// HealthChecker interface for health checking
type HealthChecker interface {
	Check(ctx context.Context) error
	Name() string
}

// HealthMonitor monitors data layer component health
type HealthMonitor struct {
	collector Collector
	timeout   time.Duration

	mu         sync.RWMutex
	components map[string]HealthChecker
}

// NewHealthMonitor creates a new health monitor. A nil collector is allowed.
func NewHealthMonitor(collector Collector) *HealthMonitor {
	if collector == nil {
		collector = NoOpCollector{}
	}
	return &HealthMonitor{
		collector:  collector,
		timeout:    3 * time.Second,
		components: make(map[string]HealthChecker),
	}
}

// RegisterComponent registers a component for health monitoring
func (h *HealthMonitor) RegisterComponent(checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.components[checker.Name()] = checker
}

// Components returns the registered component names, sorted.
func (h *HealthMonitor) Components() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.components))
	for name := range h.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckAll performs health check on all registered components
func (h *HealthMonitor) CheckAll(ctx context.Context) map[string]bool {
	results := make(map[string]bool)
	for _, name := range h.Components() {
		results[name] = h.CheckComponent(ctx, name)
	}
	return results
}

// CheckComponent checks a specific component
func (h *HealthMonitor) CheckComponent(ctx context.Context, name string) bool {
	h.mu.RLock()
	checker, exists := h.components[name]
	h.mu.RUnlock()
	if !exists {
		return false
	}

	checkCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	healthy := checker.Check(checkCtx) == nil
	h.collector.HealthCheck(name, healthy)
	return healthy
}

package mediator

import (
	"github.com/google/wire"
	"github.com/ncobase/mediator/cache"
	"github.com/ncobase/mediator/config"
	"github.com/ncobase/mediator/data/metrics"
	"github.com/ncobase/mediator/logging/logger"
)

// ProviderSet is the mediator providers.
var ProviderSet = wire.NewSet(ProvideDispatcher)

// ProvideDispatcher creates a dispatcher from the application configuration.
func ProvideDispatcher(r *Registry, cfg *config.Cache, c cache.Cache, collector metrics.Collector, l *logger.Logger) *Dispatcher {
	ttl := config.DefaultCacheTTL
	if cfg != nil {
		ttl = cfg.DefaultTTL
	}
	return New(r,
		WithCache(c),
		WithDefaultTTL(ttl),
		WithMetrics(collector),
		WithLogger(l),
	)
}

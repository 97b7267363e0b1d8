package metrics

import (
	"context"

	"github.com/google/wire"
)

// ProviderSet is the wire provider set for the metrics package.
var ProviderSet = wire.NewSet(
	NewDataCollector,
	wire.Bind(new(Collector), new(*DataCollector)),
)

// CheckerFunc adapts a function to HealthChecker.
type CheckerFunc struct {
	ComponentName string
	Fn            func(ctx context.Context) error
}

// Name implements HealthChecker.
func (c CheckerFunc) Name() string { return c.ComponentName }

// Check implements HealthChecker.
func (c CheckerFunc) Check(ctx context.Context) error { return c.Fn(ctx) }

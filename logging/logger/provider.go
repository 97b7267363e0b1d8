package logger

import (
	"github.com/google/wire"
	"github.com/ncobase/mediator/logging/logger/config"
)

// ProviderSet is the wire provider set for the logger package
var ProviderSet = wire.NewSet(ProvideLogger)

// ProvideLogger configures the process-wide logger and returns it. The
// cleanup closes the log file, if any.
func ProvideLogger(cfg *config.Config) (*Logger, func(), error) {
	if cfg == nil {
		cfg = config.Default()
	}
	cleanup, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return StdLogger(), cleanup, nil
}

package config

import "github.com/google/wire"

// ProviderSet is the wire provider set for the config package.
// It provides the main *Config and extracts sub-configurations for
// other modules to use.
//
//	wire.Build(
//	    config.ProviderSet,
//	    logger.ProviderSet,
//	    cache.ProviderSet,
//	)
var ProviderSet = wire.NewSet(
	GetConfig,
	ProvideLoggerConfig,
	ProvideDataConfig,
	ProvideCacheConfig,
	ProvidePagingConfig,
)

// ProvideLoggerConfig provides the logger configuration.
func ProvideLoggerConfig(cfg *Config) *Logger {
	if cfg == nil {
		return nil
	}
	return cfg.Logger
}

// ProvideDataConfig provides the data layer configuration.
func ProvideDataConfig(cfg *Config) *Data {
	if cfg == nil {
		return nil
	}
	return cfg.Data
}

// ProvideCacheConfig provides the cache configuration.
func ProvideCacheConfig(cfg *Config) *Cache {
	if cfg == nil {
		return nil
	}
	return cfg.Cache
}

// ProvidePagingConfig provides the paging bounds.
func ProvidePagingConfig(cfg *Config) *Paging {
	if cfg == nil {
		return nil
	}
	return cfg.Paging
}

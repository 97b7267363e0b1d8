// Package config loads application configuration with Viper from a YAML or
// JSON file, with environment overrides and hot reloading.
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfig("./config.yaml")
//
// Or through the -conf flag:
//
//	cfg, err := config.GetConfig()
//
// # Configuration Format
//
//	app_name: products
//	run_mode: debug
//	server:
//	  host: 127.0.0.1
//	  port: 8080
//	logger:
//	  level: 4
//	  format: json
//	  output: stdout
//	data:
//	  redis:
//	    addr: 127.0.0.1:6379
//	cache:
//	  default_ttl: 5m
//	  breaker:
//	    consecutive_failures: 5
//	    timeout: 30s
//	paging:
//	  max_limit: 100
//	  default_limit: 10
//	observes:
//	  tracer:
//	    endpoint: 127.0.0.1:4317
//	  sentry:
//	    endpoint: https://key@sentry.example.com/1
//
// # Environment Variables
//
// Every key can be overridden with the MEDIATOR_ prefix, dots replaced by
// underscores:
//
//	MEDIATOR_CACHE_DEFAULT_TTL=1m
//	MEDIATOR_DATA_REDIS_ADDR=redis:6379
//
// # Hot Reload
//
//	config.Watch(func(c *config.Config) {
//	    logger.Infof(ctx, "config reloaded, cache ttl %s", c.Cache.DefaultTTL)
//	}, nil)
package config

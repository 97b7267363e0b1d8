package redis

import (
	"context"

	"github.com/google/wire"
	"github.com/ncobase/mediator/config"
	"github.com/redis/go-redis/v9"
)

// ProviderSet is the wire provider set for the redis package.
var ProviderSet = wire.NewSet(ProvideClient)

// ProvideClient connects when an address is configured. Without one it
// returns a nil client, letting consumers fall back to in-process stores.
func ProvideClient(cfg *config.Data) (*redis.Client, func(), error) {
	if cfg == nil || !cfg.Redis.Enabled() {
		return nil, func() {}, nil
	}
	return NewClient(context.Background(), cfg.Redis)
}

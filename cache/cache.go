// Package cache provides the byte-level cache facade used for response
// caching, with Redis, in-memory and circuit-breaker implementations.
//
// Keys are used verbatim. A TTL of zero stores the entry without expiry.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNilClient is returned by Redis when it was built without a client.
var ErrNilClient = errors.New("cache: redis client is nil")

// Cache is an external get/set/expire store.
type Cache interface {
	// Get returns the stored bytes and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// Refresh restarts the expiry of key using the TTL it was stored with.
	Refresh(ctx context.Context, key string) error
}

// GetObject reads and decodes a JSON value. Undecodable entries are reported
// as an error and left in place.
func GetObject[T any](ctx context.Context, c Cache, key string) (T, bool, error) {
	var v T
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return v, false, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, false, fmt.Errorf("cache: decode %q: %w", key, err)
	}
	return v, true, nil
}

// SetObject encodes v as JSON and stores it.
func SetObject[T any](ctx context.Context, c Cache, key string, v T, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode %q: %w", key, err)
	}
	return c.Set(ctx, key, data, ttl)
}

// GetOrCreate returns the cached value for key, or calls create and stores
// its result. A read or decode failure falls through to create. When storing
// fails the created value is returned together with the error.
func GetOrCreate[T any](ctx context.Context, c Cache, key string, ttl time.Duration, create func(context.Context) (T, error)) (T, error) {
	if v, ok, err := GetObject[T](ctx, c, key); err == nil && ok {
		return v, nil
	}

	v, err := create(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return v, SetObject(ctx, c, key, v, ttl)
}

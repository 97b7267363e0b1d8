package cache

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	data    []byte
	ttl     time.Duration
	expires time.Time
}

func (i memoryItem) expired(now time.Time) bool {
	return i.ttl > 0 && !now.Before(i.expires)
}

// Memory is an in-process cache for development and tests. Expired entries
// are dropped when they are read or purged.
type Memory struct {
	mu    sync.Mutex
	items map[string]memoryItem
	now   func() time.Time
}

var _ Cache = (*Memory)(nil)

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]memoryItem), now: time.Now}
}

// Get implements Cache.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	if item.expired(m.now()) {
		delete(m.items, key)
		return nil, false, nil
	}
	return clone(item.data), true, nil
}

// Set implements Cache.
func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ttl < 0 {
		ttl = 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = memoryItem{data: clone(value), ttl: ttl, expires: m.now().Add(ttl)}
	return nil
}

// Remove implements Cache.
func (m *Memory) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

// Refresh implements Cache.
func (m *Memory) Refresh(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[key]
	if !ok || item.ttl == 0 {
		return nil
	}
	now := m.now()
	if item.expired(now) {
		delete(m.items, key)
		return nil
	}
	item.expires = now.Add(item.ttl)
	m.items[key] = item
	return nil
}

// Purge drops expired entries and returns how many remain.
func (m *Memory) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, item := range m.items {
		if item.expired(now) {
			delete(m.items, k)
		}
	}
	return len(m.items)
}

// RunJanitor purges expired entries every interval until ctx is done.
func (m *Memory) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Purge()
		}
	}
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestMemory() (*Memory, *clock) {
	clk := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := NewMemory()
	m.now = clk.now
	return m, clk
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m, clk := newTestMemory()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))
	data, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), data)

	clk.advance(time.Minute)
	_, ok, err = m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryWithoutTTL(t *testing.T) {
	ctx := context.Background()
	m, clk := newTestMemory()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 0))
	clk.advance(24 * time.Hour)
	_, ok, _ := m.Get(ctx, "k")
	assert.True(t, ok)
}

func TestMemoryRefreshSlidesExpiry(t *testing.T) {
	ctx := context.Background()
	m, clk := newTestMemory()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))
	clk.advance(50 * time.Second)
	require.NoError(t, m.Refresh(ctx, "k"))
	clk.advance(50 * time.Second)

	_, ok, _ := m.Get(ctx, "k")
	assert.True(t, ok)

	assert.NoError(t, m.Refresh(ctx, "missing"))
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMemory()

	value := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", value, time.Minute))
	value[0] = 'x'

	data, _, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(data))
	data[1] = 'y'

	again, _, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestMemoryRemoveAndPurge(t *testing.T) {
	ctx := context.Background()
	m, clk := newTestMemory()

	require.NoError(t, m.Set(ctx, "a", []byte("1"), time.Second))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), time.Hour))
	require.NoError(t, m.Set(ctx, "c", []byte("3"), time.Hour))
	require.NoError(t, m.Remove(ctx, "c"))
	require.NoError(t, m.Remove(ctx, "missing"))

	clk.advance(time.Minute)
	assert.Equal(t, 1, m.Purge())
}

func TestMemoryHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m, _ := newTestMemory()

	_, _, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, m.Set(ctx, "k", nil, 0), context.Canceled)
}

package paging

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Default bounds of a page.
const (
	MinLimit     = 1
	MaxLimit     = 100
	DefaultLimit = 10
	MinCursor    = 0
)

// Options holds the limit bounds applied to requests.
type Options struct {
	MinLimit     int `json:"min_limit" yaml:"min_limit"`
	MaxLimit     int `json:"max_limit" yaml:"max_limit"`
	DefaultLimit int `json:"default_limit" yaml:"default_limit"`
}

// DefaultOptions returns the default bounds (1..100, default 10).
func DefaultOptions() Options {
	return Options{MinLimit: MinLimit, MaxLimit: MaxLimit, DefaultLimit: DefaultLimit}
}

// normalize fills unset or inconsistent bounds with the defaults
func (o Options) normalize() Options {
	d := DefaultOptions()
	if o.MinLimit < 1 {
		o.MinLimit = d.MinLimit
	}
	if o.MaxLimit < o.MinLimit {
		o.MaxLimit = max(d.MaxLimit, o.MinLimit)
	}
	if o.DefaultLimit < o.MinLimit || o.DefaultLimit > o.MaxLimit {
		o.DefaultLimit = min(max(d.DefaultLimit, o.MinLimit), o.MaxLimit)
	}
	return o
}

// ClampLimit applies the bounds: values below MinLimit become DefaultLimit,
// values above MaxLimit become MaxLimit.
func (o Options) ClampLimit(limit int) int {
	o = o.normalize()
	switch {
	case limit < o.MinLimit:
		return o.DefaultLimit
	case limit > o.MaxLimit:
		return o.MaxLimit
	default:
		return limit
	}
}

// NewRequest creates a request bounded by these options.
func (o Options) NewRequest(cursor, limit int) Request {
	o = o.normalize()
	return Request{cursor: clampCursor(cursor), limit: o.ClampLimit(limit), opts: o}
}

// ParseQuery reads "cursor" and "limit" from query values. Missing or
// malformed values fall back to the defaults.
func (o Options) ParseQuery(q url.Values) Request {
	cursor, _ := strconv.Atoi(q.Get("cursor"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return o.NewRequest(cursor, limit)
}

func clampCursor(cursor int) int {
	if cursor < MinCursor {
		return MinCursor
	}
	return cursor
}

// Request holds the unified pagination parameters.
//
// The zero value is a valid first page with the default limit. The limit is
// always within bounds; the cursor is never negative.
type Request struct {
	cursor int
	limit  int
	opts   Options
}

// NewRequest creates a request bounded by the default options.
func NewRequest(cursor, limit int) Request {
	return DefaultOptions().NewRequest(cursor, limit)
}

// ParseQuery reads a request from query values using the default options.
func ParseQuery(q url.Values) Request {
	return DefaultOptions().ParseQuery(q)
}

// Cursor returns the zero-based offset of the first record.
func (r Request) Cursor() int {
	return r.cursor
}

// Limit returns the page size.
func (r Request) Limit() int {
	if r.limit == 0 {
		return r.opts.normalize().DefaultLimit
	}
	return r.limit
}

// WithCursor returns a copy positioned at cursor.
func (r Request) WithCursor(cursor int) Request {
	r.cursor = clampCursor(cursor)
	return r
}

// WithLimit returns a copy with a clamped limit.
func (r Request) WithLimit(limit int) Request {
	r.limit = r.opts.ClampLimit(limit)
	return r
}

// Query returns the query values identifying this page.
func (r Request) Query() Query {
	return Query{Cursor: r.Cursor(), Limit: r.Limit()}
}

func (r Request) String() string {
	return fmt.Sprintf("cursor=%d limit=%d", r.Cursor(), r.Limit())
}

type requestJSON struct {
	Cursor int `json:"cursor"`
	Limit  int `json:"limit"`
}

// MarshalJSON implements json.Marshaler.
func (r Request) MarshalJSON() ([]byte, error) {
	return json.Marshal(requestJSON{Cursor: r.Cursor(), Limit: r.Limit()})
}

// UnmarshalJSON implements json.Unmarshaler, clamping the decoded values.
func (r *Request) UnmarshalJSON(data []byte) error {
	var raw requestJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = r.opts.NewRequest(raw.Cursor, raw.Limit)
	return nil
}

// Response holds a page of records.
type Response[T any] struct {
	Results []T    `json:"results"`
	Total   int    `json:"total"`
	Links   *Links `json:"links,omitempty"`
}

// PagingFunc loads one page of records and the total number available.
type PagingFunc[T any] func(ctx context.Context, cursor, limit int) (items []T, total int, err error)

// Paginate applies pagination using the provided PagingFunc
func Paginate[T any](ctx context.Context, req Request, fn PagingFunc[T]) (*Response[T], error) {
	items, total, err := fn(ctx, req.Cursor(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("pagination error: %w", err)
	}

	if len(items) > req.Limit() {
		items = items[:req.Limit()]
	}
	if items == nil {
		items = make([]T, 0)
	}
	if total < 0 {
		total = 0
	}

	return &Response[T]{
		Results: items,
		Total:   total,
	}, nil
}

// NoopPagingFunc is a noop paging function
func NoopPagingFunc[T any](context.Context, int, int) ([]T, int, error) {
	return nil, 0, nil
}

// SlicePagingFunc pages over an in-memory slice.
func SlicePagingFunc[T any](items []T) PagingFunc[T] {
	return func(_ context.Context, cursor, limit int) ([]T, int, error) {
		total := len(items)
		if cursor >= total {
			return []T{}, total, nil
		}
		end := min(cursor+limit, total)
		page := make([]T, end-cursor)
		copy(page, items[cursor:end])
		return page, total, nil
	}
}

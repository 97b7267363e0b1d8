package paging

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
)

// ErrNilBuilder is returned when links are computed without a UrlBuilder.
var ErrNilBuilder = errors.New("paging: url builder is nil")

// Query carries the page coordinates handed to a UrlBuilder.
type Query struct {
	Cursor int `url:"cursor"`
	Limit  int `url:"limit"`
}

// Values encodes the query. Keys are always "cursor" then "limit".
func (q Query) Values() url.Values {
	v, err := query.Values(q)
	if err != nil {
		// Query only holds ints; encoding cannot fail.
		panic(err)
	}
	return v
}

// Encode renders the query string, e.g. "cursor=10&limit=10".
func (q Query) Encode() string {
	return q.Values().Encode()
}

// UrlBuilder materializes a route-aware URL for an action.
type UrlBuilder interface {
	Build(action string, q Query) (*url.URL, error)
}

// UrlBuilderFunc adapts a function to UrlBuilder.
type UrlBuilderFunc func(action string, q Query) (*url.URL, error)

// Build calls f.
func (f UrlBuilderFunc) Build(action string, q Query) (*url.URL, error) {
	return f(action, q)
}

// Links holds the current, next and previous page URLs.
type Links struct {
	Self     *url.URL
	Next     *url.URL
	Previous *url.URL
}

type linksJSON struct {
	Self     string `json:"self,omitempty"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
}

func urlString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

// MarshalJSON renders the links as strings, omitting absent ones.
func (l Links) MarshalJSON() ([]byte, error) {
	return json.Marshal(linksJSON{
		Self:     urlString(l.Self),
		Next:     urlString(l.Next),
		Previous: urlString(l.Previous),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Links) UnmarshalJSON(data []byte) error {
	var raw linksJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parse := func(s string) (*url.URL, error) {
		if s == "" {
			return nil, nil
		}
		return url.Parse(s)
	}
	var err error
	if l.Self, err = parse(raw.Self); err != nil {
		return err
	}
	if l.Next, err = parse(raw.Next); err != nil {
		return err
	}
	l.Previous, err = parse(raw.Previous)
	return err
}

// NextCursor returns the cursor of the next page, if there is one.
func NextCursor(cursor, limit, total int) (int, bool) {
	cursor = clampCursor(cursor)
	// cursor+limit may overflow for cursors taken from a query string.
	if limit > 0 && total > 0 && cursor < total-limit {
		return cursor + limit, true
	}
	return 0, false
}

// PreviousCursor returns the cursor of the previous page, if there is one.
// It never goes below zero.
func PreviousCursor(cursor, limit int) (int, bool) {
	cursor = clampCursor(cursor)
	if cursor <= MinCursor {
		return 0, false
	}
	return max(MinCursor, cursor-limit), true
}

// ComputeLinks builds the self, next and previous links of a page.
//
// Self is always present. Next is present when cursor+limit < total.
// Previous is present when cursor > 0 and never points below zero. An
// action name ending in "Async" is trimmed. Identical inputs always produce
// identical URLs.
func ComputeLinks(action string, req Request, total int, b UrlBuilder) (Links, error) {
	if b == nil {
		return Links{}, ErrNilBuilder
	}
	action = trimAsync(action)
	cursor, limit := req.Cursor(), req.Limit()

	var links Links
	var err error

	if links.Self, err = build(b, action, cursor, limit); err != nil {
		return Links{}, err
	}
	if next, ok := NextCursor(cursor, limit, total); ok {
		if links.Next, err = build(b, action, next, limit); err != nil {
			return Links{}, err
		}
	}
	if prev, ok := PreviousCursor(cursor, limit); ok {
		if links.Previous, err = build(b, action, prev, limit); err != nil {
			return Links{}, err
		}
	}
	return links, nil
}

// Decorate computes the links of resp and stores them on it.
func Decorate[T any](action string, req Request, resp *Response[T], b UrlBuilder) error {
	if resp == nil {
		return errors.New("paging: response is nil")
	}
	links, err := ComputeLinks(action, req, resp.Total, b)
	if err != nil {
		return err
	}
	resp.Links = &links
	return nil
}

func build(b UrlBuilder, action string, cursor, limit int) (*url.URL, error) {
	u, err := b.Build(action, Query{Cursor: cursor, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("paging: build %q link: %w", action, err)
	}
	return u, nil
}

func trimAsync(action string) string {
	const suffix = "async"
	if len(action) > len(suffix) && strings.EqualFold(action[len(action)-len(suffix):], suffix) {
		return action[:len(action)-len(suffix)]
	}
	return action
}

// Package urlbuilder provides paging.UrlBuilder implementations.
package urlbuilder

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/mediator/paging"
)

// ErrUnknownAction is returned for actions without a route.
var ErrUnknownAction = errors.New("urlbuilder: unknown action")

// Static builds URLs from a fixed action to path table.
type Static struct {
	base   *url.URL
	routes map[string]string
}

var _ paging.UrlBuilder = (*Static)(nil)

// NewStatic creates a builder. A nil base produces relative URLs.
func NewStatic(base *url.URL, routes map[string]string) *Static {
	cp := make(map[string]string, len(routes))
	for k, v := range routes {
		cp[k] = v
	}
	return &Static{base: base, routes: cp}
}

// Build implements paging.UrlBuilder.
func (s *Static) Build(action string, q paging.Query) (*url.URL, error) {
	path, ok := s.routes[action]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	return resolve(s.base, path, q), nil
}

// Gin builds URLs from the GET routes of a gin engine.
//
// Actions are resolved through the explicit action map first, then by the
// name of the route handler: an action "ListProducts" matches a handler
// named "listProducts" or "(*api).ListProducts-fm".
type Gin struct {
	engine  *gin.Engine
	base    *url.URL
	actions map[string]string

	once   sync.Once
	byName map[string]string
}

var _ paging.UrlBuilder = (*Gin)(nil)

// NewGin creates a builder over the routes of e. Routes are read on the
// first Build, after registration is complete.
func NewGin(e *gin.Engine, base *url.URL, actions map[string]string) *Gin {
	cp := make(map[string]string, len(actions))
	for k, v := range actions {
		cp[k] = v
	}
	return &Gin{engine: e, base: base, actions: cp}
}

// Build implements paging.UrlBuilder.
func (g *Gin) Build(action string, q paging.Query) (*url.URL, error) {
	g.once.Do(g.index)

	if path, ok := g.actions[action]; ok {
		return resolve(g.base, path, q), nil
	}
	if path, ok := g.byName[strings.ToLower(action)]; ok {
		return resolve(g.base, path, q), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAction, action)
}

func (g *Gin) index() {
	g.byName = make(map[string]string)
	for _, r := range g.engine.Routes() {
		if r.Method != "GET" {
			continue
		}
		g.byName[strings.ToLower(handlerName(r.Handler))] = r.Path
	}
}

// handlerName reduces "pkg.(*api).ListProducts-fm" to "ListProducts".
func handlerName(full string) string {
	name := strings.TrimSuffix(full, "-fm")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func resolve(base *url.URL, path string, q paging.Query) *url.URL {
	ref := &url.URL{Path: path, RawQuery: q.Encode()}
	if base == nil {
		return ref
	}
	u := *base
	u.Path = strings.TrimSuffix(base.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	u.RawPath = ""
	u.RawQuery = ref.RawQuery
	return &u
}

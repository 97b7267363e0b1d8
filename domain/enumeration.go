package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/ncobase/mediator/ecode"
	"github.com/ncobase/mediator/result"
)

// Member describes one value of an enumeration.
type Member struct {
	Value   int    `json:"value"`
	Name    string `json:"name"`
	Display string `json:"display_name,omitempty"`
}

// DisplayName returns the display name, falling back to Name.
func (m Member) DisplayName() string {
	if m.Display == "" {
		return m.Name
	}
	return m.Display
}

func (m Member) String() string {
	return m.Name
}

// Compare orders members by value.
func (m Member) Compare(other Member) int {
	return cmp.Compare(m.Value, other.Value)
}

// Enum is implemented by enumeration types.
type Enum interface {
	Member() Member
}

// Enumeration is the closed set of values of an Enum type.
type Enumeration[T Enum] struct {
	kind    string
	items   []T
	byValue map[int]T
	byName  map[string]T
}

// NewEnumeration registers the values of an enumeration. kind names the
// enumeration in lookup failures. Duplicate values or names panic.
func NewEnumeration[T Enum](kind string, items ...T) *Enumeration[T] {
	e := &Enumeration[T]{
		kind:    kind,
		byValue: make(map[int]T, len(items)),
		byName:  make(map[string]T, len(items)),
	}
	for _, item := range items {
		m := item.Member()
		if _, ok := e.byValue[m.Value]; ok {
			panic(fmt.Sprintf("domain: duplicate %s value %d", kind, m.Value))
		}
		if _, ok := e.byName[m.Name]; ok {
			panic(fmt.Sprintf("domain: duplicate %s name %q", kind, m.Name))
		}
		e.byValue[m.Value] = item
		e.byName[m.Name] = item
		e.items = append(e.items, item)
	}
	slices.SortStableFunc(e.items, func(a, b T) int { return a.Member().Compare(b.Member()) })
	return e
}

// All returns the values ordered by Value.
func (e *Enumeration[T]) All() []T {
	return slices.Clone(e.items)
}

// FromValue finds the member with the given value.
func (e *Enumeration[T]) FromValue(v int) result.Of[T] {
	if item, ok := e.byValue[v]; ok {
		return result.Success(item)
	}
	return result.Failure[T](e.notFound(strconv.Itoa(v)))
}

// FromName finds the member with the given name. Names are case sensitive.
func (e *Enumeration[T]) FromName(name string) result.Of[T] {
	if item, ok := e.byName[name]; ok {
		return result.Success(item)
	}
	return result.Failure[T](e.notFound(name))
}

// Parse accepts a name or a decimal value.
func (e *Enumeration[T]) Parse(s string) (T, bool) {
	if item, ok := e.byName[s]; ok {
		return item, true
	}
	if v, err := strconv.Atoi(s); err == nil {
		item, ok := e.byValue[v]
		return item, ok
	}
	var zero T
	return zero, false
}

func (e *Enumeration[T]) notFound(key string) result.Error {
	return result.HTTP(
		ecode.ToHTTPStatus(ecode.NotFound),
		ecode.NotFound,
		fmt.Sprintf("'%s' is not a valid %s", key, e.kind),
	)
}

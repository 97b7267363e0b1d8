package domain

import (
	"net/http"
	"testing"

	"github.com/ncobase/mediator/ecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type product struct {
	ID   string
	Name string
	Tags []string
}

func (p *product) EntityID() string           { return p.ID }
func (p *product) SignatureComponents() []any { return []any{p.Name, p.Tags} }

type order struct {
	ID   string
	Name string
}

func (o *order) EntityID() string           { return o.ID }
func (o *order) SignatureComponents() []any { return []any{o.Name} }

type money struct {
	Amount   int64
	Currency string
}

func (m money) SignatureComponents() []any { return []any{m.Amount, m.Currency} }

type price struct {
	Net, Gross money
}

func (p price) SignatureComponents() []any { return []any{p.Net, p.Gross} }

func TestEntityEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Entity[string]
		want bool
	}{
		{"same id", &product{ID: "1", Name: "a"}, &product{ID: "1", Name: "b"}, true},
		{"different id", &product{ID: "1", Name: "a"}, &product{ID: "2", Name: "a"}, false},
		{"transient same components", &product{Name: "a", Tags: []string{"x"}}, &product{Name: "a", Tags: []string{"x"}}, true},
		{"transient different components", &product{Name: "a"}, &product{Name: "b"}, false},
		{"transient vs persisted", &product{Name: "a"}, &product{ID: "1", Name: "a"}, false},
		{"persisted vs transient", &product{ID: "1", Name: "a"}, &product{Name: "a"}, false},
		{"different types", &product{ID: "1"}, &order{ID: "1"}, false},
		{"both nil", nil, nil, true},
		{"one nil", &product{ID: "1"}, nil, false},
		{"typed nil", (*product)(nil), &product{ID: "1"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, EntityEqual(c.a, c.b))
		})
	}
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient[string](&product{}))
	assert.False(t, IsTransient[string](&product{ID: "x"}))
}

func TestValueEqual(t *testing.T) {
	assert.True(t, ValueEqual(money{100, "EUR"}, money{100, "EUR"}))
	assert.False(t, ValueEqual(money{100, "EUR"}, money{100, "USD"}))
	assert.False(t, ValueEqual(money{100, "EUR"}, price{}))
	assert.True(t, ValueEqual(nil, nil))
	assert.False(t, ValueEqual(money{}, nil))

	a := price{Net: money{80, "EUR"}, Gross: money{100, "EUR"}}
	b := price{Net: money{80, "EUR"}, Gross: money{100, "EUR"}}
	assert.True(t, ValueEqual(a, b))
	b.Gross.Amount = 99
	assert.False(t, ValueEqual(a, b))
}

type status int

const (
	statusDraft status = iota + 1
	statusActive
	statusRetired
)

func (s status) Member() Member {
	switch s {
	case statusDraft:
		return Member{Value: 1, Name: "draft"}
	case statusActive:
		return Member{Value: 2, Name: "active", Display: "Active"}
	case statusRetired:
		return Member{Value: 3, Name: "retired"}
	}
	return Member{}
}

var statuses = NewEnumeration("status", statusRetired, statusDraft, statusActive)

func TestEnumerationLookup(t *testing.T) {
	assert.Equal(t, []status{statusDraft, statusActive, statusRetired}, statuses.All())

	assert.Equal(t, statusActive, statuses.FromValue(2).Value())
	assert.Equal(t, statusRetired, statuses.FromName("retired").Value())

	res := statuses.FromName("Retired")
	require.True(t, res.Failed())
	e := res.Errors()[0]
	assert.Equal(t, ecode.NotFound, e.Code)
	assert.Equal(t, "'Retired' is not a valid status", e.Message)
	code, ok := e.HTTPStatus()
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, code)

	assert.True(t, statuses.FromValue(9).Failed())
}

func TestEnumerationParse(t *testing.T) {
	s, ok := statuses.Parse("draft")
	assert.True(t, ok)
	assert.Equal(t, statusDraft, s)

	s, ok = statuses.Parse("3")
	assert.True(t, ok)
	assert.Equal(t, statusRetired, s)

	_, ok = statuses.Parse("7")
	assert.False(t, ok)
	_, ok = statuses.Parse("unknown")
	assert.False(t, ok)
}

func TestMember(t *testing.T) {
	assert.Equal(t, "Active", statusActive.Member().DisplayName())
	assert.Equal(t, "draft", statusDraft.Member().DisplayName())
	assert.Equal(t, "draft", statusDraft.Member().String())
	assert.Negative(t, statusDraft.Member().Compare(statusActive.Member()))
}

func TestEnumerationRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() { NewEnumeration("status", statusDraft, statusDraft) })
}

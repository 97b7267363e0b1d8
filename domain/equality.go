package domain

import "reflect"

// Signature is implemented by types whose equality is defined by a list of
// components.
type Signature interface {
	SignatureComponents() []any
}

// Entity is a domain object with an identity.
type Entity[ID comparable] interface {
	Signature
	EntityID() ID
}

// IsTransient reports whether e has not been assigned an identity yet.
func IsTransient[ID comparable](e Entity[ID]) bool {
	var zero ID
	return e.EntityID() == zero
}

// EntityEqual compares two entities of the same concrete type. Entities with
// an identity are equal when their identities are; two transient entities
// are equal when their signature components are. A transient entity never
// equals one with an identity.
func EntityEqual[ID comparable](a, b Entity[ID]) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !IsTransient(a) {
		return a.EntityID() == b.EntityID()
	}
	return IsTransient(b) && componentsEqual(a.SignatureComponents(), b.SignatureComponents())
}

// ValueEqual compares two value objects of the same concrete type by their
// signature components.
func ValueEqual(a, b Signature) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return componentsEqual(a.SignatureComponents(), b.SignatureComponents())
}

func componentsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if s, ok := a[i].(Signature); ok {
			if !ValueEqual(s, asSignature(b[i])) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func asSignature(v any) Signature {
	s, _ := v.(Signature)
	return s
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

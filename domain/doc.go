// Package domain provides equality for entities and value objects and a
// registry for enumeration types.
//
// Entities compare by identity once they have one. Transient entities and
// value objects compare by their signature components:
//
//	func (p Price) SignatureComponents() []any { return []any{p.Amount, p.Currency} }
//
//	domain.ValueEqual(a, b)
package domain

// Package unorderedpair provides a symmetric pair key whose equality and hash
// do not depend on which element came first.
package unorderedpair

import "cmp"

// UnorderedPair holds two values in canonical (min, max) order so that it can
// be used directly as a map key: New(a, b) == New(b, a) for all a, b.
type UnorderedPair[T cmp.Ordered] struct {
	A T
	B T
}

// New canonicalizes the two values at construction.
func New[T cmp.Ordered](a, b T) UnorderedPair[T] {
	if b < a {
		a, b = b, a
	}
	return UnorderedPair[T]{A: a, B: b}
}

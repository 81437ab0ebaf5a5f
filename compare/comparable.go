// Package compare provides the equality and ordering predicates shared by
// the sorting and analytics packages.
package compare

import "cmp"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Equal reports whether a and b are equal.
func Equal[T cmp.Ordered](a, b T) bool {
	return a == b
}

// Less reports whether a is strictly less than b.
func Less[T cmp.Ordered](a, b T) bool {
	return a < b
}

// Greater reports whether a is strictly greater than b.
func Greater[T cmp.Ordered](a, b T) bool {
	return a > b
}

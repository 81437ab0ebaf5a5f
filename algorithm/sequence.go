package algorithm

import (
	"fmt"
	"maps"
	"slices"

	"github.com/amp-labs/lvt/tuple"
)

// Accumulate folds s from the left starting at init.
func Accumulate[T, A any](s []T, init A, op func(A, T) A) A {
	acc := init
	for _, v := range s {
		acc = op(acc, v)
	}

	return acc
}

// RemoveSameElems returns s with runs of consecutive equal elements collapsed
// to one.
func RemoveSameElems[T comparable](s []T) []T {
	return slices.Compact(slices.Clone(s))
}

// Zip pairs a[i] with b[i]. The result is as long as the shorter input.
func Zip[A, B any](a []A, b []B) []tuple.Tuple2[A, B] {
	n := min(len(a), len(b))

	out := make([]tuple.Tuple2[A, B], n)
	for i := range out {
		out[i] = tuple.NewTuple2(a[i], b[i])
	}

	return out
}

// Slice returns a copy of s[first..last], both ends inclusive.
func Slice[T any](s []T, first, last int) ([]T, error) {
	if first < 0 || last >= len(s) || first > last+1 {
		return nil, fmt.Errorf("%w: [%d, %d] of %d", ErrIndexOutOfRange, first, last, len(s))
	}

	return slices.Clone(s[first : last+1]), nil
}

// FindAll returns the indexes of every element matching pred.
func FindAll[T any](s []T, pred func(T) bool) []int {
	out := []int{}

	for i, v := range s {
		if pred(v) {
			out = append(out, i)
		}
	}

	return out
}

// Duplicate returns s followed by a second copy of s.
func Duplicate[T any](s []T) []T {
	return slices.Concat(s, s)
}

// MapsEqual reports whether both maps hold the same keys with equal values.
func MapsEqual[M ~map[K]V, K, V comparable](a, b M) bool {
	return maps.Equal(a, b)
}

package algorithm

import "golang.org/x/exp/constraints"

// UniqueElements returns the values that occur in exactly one of a and b,
// each once. Values from a come first, then values from b, both in order of
// first occurrence.
func UniqueElements[T constraints.Integer](a, b []T) []T {
	inA := make(map[T]struct{}, len(a))
	for _, v := range a {
		inA[v] = struct{}{}
	}

	inB := make(map[T]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}

	out := []T{}
	emitted := make(map[T]struct{})

	collect := func(src []T, other map[T]struct{}) {
		for _, v := range src {
			if _, shared := other[v]; shared {
				continue
			}

			if _, done := emitted[v]; done {
				continue
			}

			emitted[v] = struct{}{}
			out = append(out, v)
		}
	}

	collect(a, inB)
	collect(b, inA)

	return out
}

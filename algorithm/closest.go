package algorithm

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// FindClosest returns the element of the ascending sequence sorted with the
// smallest absolute difference to v. When two elements are equally close the
// smaller one wins. The boolean is false when sorted is empty.
//
// An unsorted reference gives an unspecified answer.
func FindClosest[T constraints.Integer](sorted []T, v T) (T, bool) {
	return closest(sorted, v)
}

// ApproxBinSearch returns, for every query, the closest element of the
// ascending reference sequence (ties to the smaller one). The result has one
// entry per query, or is empty when ref is empty.
func ApproxBinSearch[T Number](ref, queries []T) []T {
	if len(ref) == 0 {
		return []T{}
	}

	out := make([]T, len(queries))
	for i, q := range queries {
		out[i], _ = closest(ref, q)
	}

	return out
}

func closest[T Number](sorted []T, v T) (T, bool) {
	if len(sorted) == 0 {
		var zero T

		return zero, false
	}

	// i is the first index with sorted[i] >= v.
	i, _ := slices.BinarySearch(sorted, v)

	switch {
	case i == 0:
		return sorted[0], true
	case i == len(sorted):
		return sorted[len(sorted)-1], true
	}

	lo, hi := sorted[i-1], sorted[i]
	if distance(v, hi) < distance(v, lo) {
		return hi, true
	}

	return lo, true
}

// distance is |a-b| computed without going below zero for unsigned types.
func distance[T Number](a, b T) T {
	if a > b {
		return a - b
	}

	return b - a
}

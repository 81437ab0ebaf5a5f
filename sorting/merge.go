package sorting

import "github.com/amp-labs/lvt/compare"

// MergeFunc sorts s with top-down merge sort. Halves are merged through an
// auxiliary buffer of len(s) elements, allocated once. Stable.
func MergeFunc[T any](s []T, less compare.LessFunc[T]) {
	if len(s) < 2 {
		return
	}

	buf := make([]T, len(s))
	mergeSort(s, buf, 0, len(s), less)
}

// mergeSort sorts s[lo:hi) using buf[lo:hi) as scratch space.
func mergeSort[T any](s, buf []T, lo, hi int, less compare.LessFunc[T]) {
	if hi-lo < 2 {
		return
	}

	mid := lo + (hi-lo)/2

	mergeSort(s, buf, lo, mid, less)
	mergeSort(s, buf, mid, hi, less)

	// Already in order, nothing to merge.
	if !less(s[mid], s[mid-1]) {
		return
	}

	copy(buf[lo:hi], s[lo:hi])

	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		// Ties take the left element to stay stable.
		if less(buf[j], buf[i]) {
			s[k] = buf[j]
			j++
		} else {
			s[k] = buf[i]
			i++
		}

		k++
	}

	k += copy(s[k:], buf[i:mid])
	copy(s[k:], buf[j:hi])
}

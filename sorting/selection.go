package sorting

import "github.com/amp-labs/lvt/compare"

// SelectionFunc sorts s in place by repeatedly moving the extremum of the
// unsorted suffix to its front. Not stable.
func SelectionFunc[T any](s []T, less compare.LessFunc[T]) {
	for i := 0; i < len(s)-1; i++ {
		best := i

		for j := i + 1; j < len(s); j++ {
			if less(s[j], s[best]) {
				best = j
			}
		}

		if best != i {
			s[i], s[best] = s[best], s[i]
		}
	}
}

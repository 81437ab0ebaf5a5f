package sorting

import "github.com/amp-labs/lvt/compare"

// InsertionFunc sorts s in place by shifting each element into the sorted
// prefix before it. Stable, O(n) on sorted input.
func InsertionFunc[T any](s []T, less compare.LessFunc[T]) {
	for i := 1; i < len(s); i++ {
		cur := s[i]
		j := i

		for ; j > 0 && less(cur, s[j-1]); j-- {
			s[j] = s[j-1]
		}

		s[j] = cur
	}
}

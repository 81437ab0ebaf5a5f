package sorting

import "github.com/amp-labs/lvt/compare"

// ShellFunc sorts s in place with gapped insertion passes. The gap starts at
// len(s)/2 and halves until the final pass at gap 1. Not stable.
func ShellFunc[T any](s []T, less compare.LessFunc[T]) {
	for gap := len(s) / 2; gap > 0; gap /= 2 {
		for i := gap; i < len(s); i++ {
			cur := s[i]
			j := i

			for ; j >= gap && less(cur, s[j-gap]); j -= gap {
				s[j] = s[j-gap]
			}

			s[j] = cur
		}
	}
}

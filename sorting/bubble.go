package sorting

import "github.com/amp-labs/lvt/compare"

// BubbleFunc sorts s in place with adjacent-swap passes, stopping after the
// first pass that swaps nothing. Stable.
func BubbleFunc[T any](s []T, less compare.LessFunc[T]) {
	for end := len(s); end > 1; end-- {
		swapped := false

		for i := 1; i < end; i++ {
			if less(s[i], s[i-1]) {
				s[i], s[i-1] = s[i-1], s[i]
				swapped = true
			}
		}

		if !swapped {
			return
		}
	}
}

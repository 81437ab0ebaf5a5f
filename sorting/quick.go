package sorting

import "github.com/amp-labs/lvt/compare"

// QuickFunc sorts s in place with Hoare-partition quicksort. The pivot is the
// element at the floor midpoint of each range. Not stable.
func QuickFunc[T any](s []T, less compare.LessFunc[T]) {
	if len(s) < 2 {
		return
	}

	quickSort(s, 0, len(s)-1, less)
}

// quickSort recurses into the smaller side and loops over the larger one so
// the stack stays O(log n) even on adversarial input.
func quickSort[T any](s []T, lo, hi int, less compare.LessFunc[T]) {
	for lo < hi {
		p := hoarePartition(s, lo, hi, less)

		if p-lo < hi-p {
			quickSort(s, lo, p, less)
			lo = p + 1
		} else {
			quickSort(s, p+1, hi, less)
			hi = p
		}
	}
}

// hoarePartition splits s[lo..hi] so that nothing in s[lo..p] belongs after
// anything in s[p+1..hi]. Always returns lo <= p < hi.
func hoarePartition[T any](s []T, lo, hi int, less compare.LessFunc[T]) int {
	pivot := s[lo+(hi-lo)/2]
	i, j := lo-1, hi+1

	for {
		for {
			i++
			if !less(s[i], pivot) {
				break
			}
		}

		for {
			j--
			if !less(pivot, s[j]) {
				break
			}
		}

		if i >= j {
			return j
		}

		s[i], s[j] = s[j], s[i]
	}
}

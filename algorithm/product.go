package algorithm

import "golang.org/x/exp/constraints"

// MaxPairwiseProduct returns the largest product of two elements at distinct
// positions, found in one pass that tracks the two largest values. Fewer than
// two elements yield 0.
func MaxPairwiseProduct[T constraints.Unsigned](s []T) uint64 {
	if len(s) < 2 {
		return 0
	}

	var first, second uint64

	for _, v := range s {
		x := uint64(v)

		switch {
		case x > first:
			first, second = x, first
		case x > second:
			second = x
		}
	}

	return first * second
}

// MaxProductOf3Elems returns the largest product of three elements at
// distinct positions. One pass tracks the three largest and the two smallest
// values, since two negatives times the largest positive can beat the top
// three. Fewer than three elements yield 0.
func MaxProductOf3Elems[T constraints.Integer](s []T) int64 {
	if len(s) < 3 {
		return 0
	}

	var top [3]int64 // top[0] >= top[1] >= top[2]

	var bottom [2]int64 // bottom[0] <= bottom[1]

	for i, v := range s {
		x := int64(v)

		if i == 0 {
			top = [3]int64{x, x, x}
			bottom = [2]int64{x, x}

			continue
		}

		insertTop(&top, x, i)
		insertBottom(&bottom, x, i)
	}

	return max(top[0]*top[1]*top[2], top[0]*bottom[0]*bottom[1])
}

// insertTop keeps the three largest of the first seen+1 values. Slots that
// haven't been filled yet still hold copies of the first value and are
// replaced unconditionally.
func insertTop(top *[3]int64, x int64, seen int) {
	filled := min(seen, 3)

	pos := filled
	for pos > 0 && x > top[pos-1] {
		pos--
	}

	if pos >= 3 {
		return
	}

	for j := min(filled, 2); j > pos; j-- {
		top[j] = top[j-1]
	}

	top[pos] = x
}

func insertBottom(bottom *[2]int64, x int64, seen int) {
	filled := min(seen, 2)

	pos := filled
	for pos > 0 && x < bottom[pos-1] {
		pos--
	}

	if pos >= 2 {
		return
	}

	for j := min(filled, 1); j > pos; j-- {
		bottom[j] = bottom[j-1]
	}

	bottom[pos] = x
}

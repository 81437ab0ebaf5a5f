package sorting

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/amp-labs/lvt/compare"
	"github.com/amp-labs/lvt/sortable"
)

// funcFor returns the in-place implementation of a strategy.
func funcFor[T any](strategy Strategy) (func([]T, compare.LessFunc[T]), error) {
	switch strategy {
	case Bubble:
		return BubbleFunc[T], nil
	case Insertion:
		return InsertionFunc[T], nil
	case Selection:
		return SelectionFunc[T], nil
	case Shell:
		return ShellFunc[T], nil
	case Quick:
		return QuickFunc[T], nil
	case Merge:
		return MergeFunc[T], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
}

// SortFunc sorts s in place with the given strategy and ordering.
func SortFunc[T any](s []T, strategy Strategy, less compare.LessFunc[T]) error {
	fn, err := funcFor[T](strategy)
	if err != nil {
		return err
	}

	fn(s, less)

	return nil
}

// Sort sorts s in place with the given strategy and direction.
func Sort[T cmp.Ordered](s []T, strategy Strategy, dir compare.Direction) error {
	return SortFunc(s, strategy, compare.OrderedLess[T](dir))
}

// SortSortable sorts values that carry their own ordering.
func SortSortable[T sortable.Sortable[T]](s []T, strategy Strategy, dir compare.Direction) error {
	less := compare.LessFunc[T](sortable.Less[T])
	if dir == compare.Descending {
		less = compare.Reverse(less)
	}

	return SortFunc(s, strategy, less)
}

// Sort2DFunc sorts every row of m in place. Row order is left untouched and
// rows may have different lengths.
func Sort2DFunc[T any](m [][]T, strategy Strategy, less compare.LessFunc[T]) error {
	fn, err := funcFor[T](strategy)
	if err != nil {
		return err
	}

	for _, row := range m {
		fn(row, less)
	}

	return nil
}

// Sort2D sorts every row of m in place with the given strategy and direction.
func Sort2D[T cmp.Ordered](m [][]T, strategy Strategy, dir compare.Direction) error {
	return Sort2DFunc(m, strategy, compare.OrderedLess[T](dir))
}

// Sorted returns a sorted copy of s and leaves s untouched.
func Sorted[T cmp.Ordered](s []T, strategy Strategy, dir compare.Direction) ([]T, error) {
	out := slices.Clone(s)
	if err := Sort(out, strategy, dir); err != nil {
		return nil, err
	}

	return out, nil
}

// IsSorted reports whether s is monotonic in dir. Runs of equal elements are allowed.
func IsSorted[T cmp.Ordered](s []T, dir compare.Direction) bool {
	for i := 1; i < len(s); i++ {
		if !compare.InOrder(dir, s[i-1], s[i]) {
			return false
		}
	}

	return true
}

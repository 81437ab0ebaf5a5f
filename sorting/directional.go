package sorting

import (
	"cmp"

	"github.com/amp-labs/lvt/compare"
)

// Named forms of each strategy for built-in ordered types. All of them sort in place.

func BubbleAscending[T cmp.Ordered](s []T)  { BubbleFunc(s, compare.Less[T]) }
func BubbleDescending[T cmp.Ordered](s []T) { BubbleFunc(s, compare.Greater[T]) }

func InsertionAscending[T cmp.Ordered](s []T)  { InsertionFunc(s, compare.Less[T]) }
func InsertionDescending[T cmp.Ordered](s []T) { InsertionFunc(s, compare.Greater[T]) }

func SelectionAscending[T cmp.Ordered](s []T)  { SelectionFunc(s, compare.Less[T]) }
func SelectionDescending[T cmp.Ordered](s []T) { SelectionFunc(s, compare.Greater[T]) }

func ShellAscending[T cmp.Ordered](s []T)  { ShellFunc(s, compare.Less[T]) }
func ShellDescending[T cmp.Ordered](s []T) { ShellFunc(s, compare.Greater[T]) }

func QuickAscending[T cmp.Ordered](s []T)  { QuickFunc(s, compare.Less[T]) }
func QuickDescending[T cmp.Ordered](s []T) { QuickFunc(s, compare.Greater[T]) }

func MergeAscending[T cmp.Ordered](s []T)  { MergeFunc(s, compare.Less[T]) }
func MergeDescending[T cmp.Ordered](s []T) { MergeFunc(s, compare.Greater[T]) }

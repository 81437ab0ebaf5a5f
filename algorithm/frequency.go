package algorithm

import (
	"slices"

	"github.com/amp-labs/lvt/tuple"
)

// FrequencyTable counts occurrences of values and remembers the order in
// which each distinct value was first seen.
type FrequencyTable[T comparable] struct {
	counts map[T]int
	order  []T
}

// NewFrequencyTable counts every element of s.
func NewFrequencyTable[T comparable](s []T) *FrequencyTable[T] {
	ft := &FrequencyTable[T]{counts: make(map[T]int)}

	for _, v := range s {
		ft.Add(v)
	}

	return ft
}

// Add records one more occurrence of v.
func (f *FrequencyTable[T]) Add(v T) {
	if _, ok := f.counts[v]; !ok {
		f.order = append(f.order, v)
	}

	f.counts[v]++
}

// Count returns how often v was seen.
func (f *FrequencyTable[T]) Count(v T) int {
	return f.counts[v]
}

// Len returns the number of distinct values.
func (f *FrequencyTable[T]) Len() int {
	return len(f.order)
}

// Entries returns value/count pairs in first-seen order.
func (f *FrequencyTable[T]) Entries() []tuple.Tuple2[T, int] {
	out := make([]tuple.Tuple2[T, int], 0, len(f.order))

	for _, v := range f.order {
		out = append(out, tuple.NewTuple2(v, f.counts[v]))
	}

	return out
}

// ByCount returns the entries ordered by descending count. Values with equal
// counts keep their first-seen order.
func (f *FrequencyTable[T]) ByCount() []tuple.Tuple2[T, int] {
	entries := f.Entries()

	slices.SortStableFunc(entries, func(a, b tuple.Tuple2[T, int]) int {
		return b.Second() - a.Second()
	})

	return entries
}

// MostFreqElem returns the most frequent element of s. Ties go to the element
// seen first. The boolean is false for an empty sequence.
func MostFreqElem[T comparable](s []T) (T, bool) {
	top := KMostFreqElem(s, 1)
	if len(top) == 0 {
		var zero T

		return zero, false
	}

	return top[0], true
}

// KMostFreqElem returns the k most frequent distinct elements of s, most
// frequent first. Elements with equal counts are ordered by first occurrence
// in s, which also decides who makes the cut at position k. k larger than the
// number of distinct elements returns all of them; k <= 0 returns an empty slice.
func KMostFreqElem[T comparable](s []T, k int) []T {
	if k <= 0 || len(s) == 0 {
		return []T{}
	}

	entries := NewFrequencyTable(s).ByCount()
	k = min(k, len(entries))

	out := make([]T, k)
	for i := range out {
		out[i] = entries[i].First()
	}

	return out
}

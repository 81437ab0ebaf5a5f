package algorithm

import (
	"cmp"
	"fmt"
	"slices"
)

// MalformedLength is what IntervalsLength returns alongside ErrMalformedInterval.
const MalformedLength = -1

// Interval is the integer range from Start to End.
type Interval struct {
	Start int
	End   int
}

// Len is End - Start.
func (iv Interval) Len() int {
	return iv.End - iv.Start
}

// IntervalsLength returns the total length covered by the union of
// intervals. Overlapping and touching intervals are merged before summing.
// Any interval with Start > End makes the whole input malformed: the result
// is MalformedLength together with ErrMalformedInterval.
func IntervalsLength(intervals []Interval) (int, error) {
	for i, iv := range intervals {
		if iv.Start > iv.End {
			return MalformedLength, fmt.Errorf("%w: #%d [%d, %d]", ErrMalformedInterval, i, iv.Start, iv.End)
		}
	}

	merged := MergeIntervals(intervals)

	total := 0
	for _, iv := range merged {
		total += iv.Len()
	}

	return total, nil
}

// MergeIntervals returns the union of well-formed intervals as disjoint
// intervals ordered by start. The input is not modified.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return []Interval{}
	}

	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, func(a, b Interval) int {
		return cmp.Compare(a.Start, b.Start)
	})

	out := []Interval{sorted[0]}

	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]

		if iv.Start <= last.End {
			last.End = max(last.End, iv.End)

			continue
		}

		out = append(out, iv)
	}

	return out
}

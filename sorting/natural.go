package sorting

import (
	"slices"

	"facette.io/natsort"

	"github.com/amp-labs/lvt/compare"
)

// NaturalStrings sorts s in place in natural order, comparing embedded digit
// runs numerically ("file2" before "file10").
func NaturalStrings(s []string, dir compare.Direction) {
	natsort.Sort(s)

	if dir == compare.Descending {
		slices.Reverse(s)
	}
}

// NaturalLess reports whether a comes before b in natural order.
func NaturalLess(a, b string) bool {
	return natsort.Compare(a, b)
}

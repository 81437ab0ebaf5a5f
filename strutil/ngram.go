package strutil

import (
	"cmp"
	"slices"

	"github.com/amp-labs/lvt/tuple"
)

// NGramFrequencies cuts every word into overlapping windows of n runes and
// counts them across all words. The result is ordered by descending count,
// ties in lexicographic order. Words shorter than n contribute nothing and
// n <= 0 yields an empty result.
func NGramFrequencies(words []string, n int) []tuple.Tuple2[string, int] {
	if n <= 0 {
		return []tuple.Tuple2[string, int]{}
	}

	counts := make(map[string]int)

	for _, w := range words {
		runes := []rune(w)

		for i := 0; i+n <= len(runes); i++ {
			counts[string(runes[i:i+n])]++
		}
	}

	out := make([]tuple.Tuple2[string, int], 0, len(counts))
	for gram, c := range counts {
		out = append(out, tuple.NewTuple2(gram, c))
	}

	slices.SortFunc(out, func(a, b tuple.Tuple2[string, int]) int {
		if c := cmp.Compare(b.Second(), a.Second()); c != 0 {
			return c
		}

		return cmp.Compare(a.First(), b.First())
	})

	return out
}

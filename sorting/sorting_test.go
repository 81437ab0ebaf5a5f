package sorting

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/lvt/compare"
	"github.com/amp-labs/lvt/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomInts(seed uint64, n int) []int {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]int, n)

	for i := range out {
		out[i] = rng.IntN(41) - 20 // plenty of duplicates
	}

	return out
}

func TestSort_EveryStrategy(t *testing.T) {
	t.Parallel()

	inputs := map[string][]int{
		"empty":      {},
		"single":     {7},
		"pair":       {2, 1},
		"sorted":     {1, 2, 3, 4, 5},
		"reversed":   {5, 4, 3, 2, 1},
		"all equal":  {3, 3, 3, 3},
		"odd length": {9, -1, 4, 4, 0, 12, -7},
		"random":     randomInts(1, 257),
	}

	for _, strategy := range Strategies() {
		for _, dir := range []compare.Direction{compare.Ascending, compare.Descending} {
			for name, input := range inputs {
				t.Run(strategy.String()+"/"+dir.String()+"/"+name, func(t *testing.T) {
					t.Parallel()

					got := slices.Clone(input)
					require.NoError(t, Sort(got, strategy, dir))

					assert.True(t, IsSorted(got, dir), "not monotonic: %v", got)

					// Permutation of the input: same multiset.
					want := slices.Clone(input)
					slices.Sort(want)
					if dir == compare.Descending {
						slices.Reverse(want)
					}

					assert.Equal(t, want, got)
				})
			}
		}
	}
}

func TestSort_AscendingReversedIsDescending(t *testing.T) {
	t.Parallel()

	// Distinct keys only.
	input := []int{42, -3, 17, 0, 8, 99, -50, 23}

	for _, strategy := range Strategies() {
		asc, err := Sorted(input, strategy, compare.Ascending)
		require.NoError(t, err)

		desc, err := Sorted(input, strategy, compare.Descending)
		require.NoError(t, err)

		slices.Reverse(asc)
		assert.Equal(t, desc, asc, strategy.String())
	}

	assert.Equal(t, []int{42, -3, 17, 0, 8, 99, -50, 23}, input, "Sorted must not touch its input")
}

func TestSort_Idempotent(t *testing.T) {
	t.Parallel()

	for _, strategy := range Strategies() {
		s := randomInts(7, 64)
		require.NoError(t, Sort(s, strategy, compare.Ascending))

		again := slices.Clone(s)
		require.NoError(t, Sort(again, strategy, compare.Ascending))

		assert.Equal(t, s, again, strategy.String())
	}
}

type record struct {
	key   int
	order int
}

func TestSortFunc_StableStrategiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	byKey := func(a, b record) bool { return a.key < b.key }

	for _, strategy := range Strategies() {
		if !strategy.Stable() {
			continue
		}

		keys := randomInts(3, 100)
		recs := make([]record, len(keys))

		for i, k := range keys {
			recs[i] = record{key: k, order: i}
		}

		require.NoError(t, SortFunc(recs, strategy, byKey))

		for i := 1; i < len(recs); i++ {
			if recs[i-1].key == recs[i].key {
				assert.Less(t, recs[i-1].order, recs[i].order, strategy.String())
			}
		}
	}
}

func TestSortFunc_Strings(t *testing.T) {
	t.Parallel()

	for _, strategy := range Strategies() {
		words := []string{"pear", "apple", "fig", "banana", "apple"}
		require.NoError(t, SortFunc(words, strategy, compare.Less[string]))
		assert.Equal(t, []string{"apple", "apple", "banana", "fig", "pear"}, words)
	}
}

func TestSort2D(t *testing.T) {
	t.Parallel()

	for _, strategy := range Strategies() {
		m := [][]float64{
			{3.5, -1, 2},
			{},
			{9, 8, 7},
			{0.5},
		}

		require.NoError(t, Sort2D(m, strategy, compare.Descending))

		assert.Equal(t, [][]float64{
			{3.5, 2, -1},
			{},
			{9, 8, 7},
			{0.5},
		}, m, strategy.String())
	}
}

func TestSortSortable(t *testing.T) {
	t.Parallel()

	values := []sortable.String{"delta", "alpha", "charlie", "bravo"}
	require.NoError(t, SortSortable(values, Quick, compare.Ascending))
	assert.Equal(t, []sortable.String{"alpha", "bravo", "charlie", "delta"}, values)

	require.NoError(t, SortSortable(values, Merge, compare.Descending))
	assert.Equal(t, []sortable.String{"delta", "charlie", "bravo", "alpha"}, values)
}

func TestSort_UnknownStrategy(t *testing.T) {
	t.Parallel()

	s := []int{2, 1}

	require.ErrorIs(t, Sort(s, Strategy(42), compare.Ascending), ErrUnknownStrategy)
	require.ErrorIs(t, Sort2D([][]int{s}, Strategy(-1), compare.Ascending), ErrUnknownStrategy)

	_, err := Sorted(s, Strategy(6), compare.Ascending)
	require.ErrorIs(t, err, ErrUnknownStrategy)

	assert.Equal(t, []int{2, 1}, s)
}

func TestDirectionalForms(t *testing.T) {
	t.Parallel()

	asc := []func([]int){
		BubbleAscending[int], InsertionAscending[int], SelectionAscending[int],
		ShellAscending[int], QuickAscending[int], MergeAscending[int],
	}
	desc := []func([]int){
		BubbleDescending[int], InsertionDescending[int], SelectionDescending[int],
		ShellDescending[int], QuickDescending[int], MergeDescending[int],
	}

	for i := range asc {
		s := []int{4, 1, 3, 1, 2}
		asc[i](s)
		assert.Equal(t, []int{1, 1, 2, 3, 4}, s)

		desc[i](s)
		assert.Equal(t, []int{4, 3, 2, 1, 1}, s)
	}
}

func TestNaturalStrings(t *testing.T) {
	t.Parallel()

	files := []string{"file10.txt", "file2.txt", "file1.txt"}

	NaturalStrings(files, compare.Ascending)
	assert.Equal(t, []string{"file1.txt", "file2.txt", "file10.txt"}, files)

	NaturalStrings(files, compare.Descending)
	assert.Equal(t, []string{"file10.txt", "file2.txt", "file1.txt"}, files)

	assert.True(t, NaturalLess("img9", "img12"))
}

package printer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/amp-labs/lvt/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSink = errors.New("sink closed")

type failingSink struct{}

func (failingSink) WriteLine(string) error { return errSink }

func TestWriterSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	require.NoError(t, Slice(sink, []int{3, 1, 2}))
	require.NoError(t, Matrix(sink, [][]string{{"a", "b"}, {"c"}}))

	assert.Equal(t, "3 1 2\na b\nc\n", buf.String())
}

func TestPairsAndMap(t *testing.T) {
	t.Parallel()

	var lines Lines

	require.NoError(t, Pairs(&lines, []tuple.Tuple2[string, int]{
		tuple.NewTuple2("the cat", 2),
		tuple.NewTuple2("cat sat", 1),
	}))
	require.NoError(t, Map(&lines, map[string]int{"b": 2, "a": 1}))

	assert.Equal(t, Lines{"the cat: 2", "cat sat: 1", "a: 1", "b: 2"}, lines)
}

func TestTable(t *testing.T) {
	t.Parallel()

	var lines Lines

	require.NoError(t, Table(&lines,
		[]string{"strategy", "duration"},
		[][]string{{"quick", "1ms"}, {"insertion", "20ms"}},
	))

	assert.Equal(t, Lines{
		"strategy   duration",
		"quick      1ms",
		"insertion  20ms",
	}, lines)
}

func TestSinkErrors(t *testing.T) {
	t.Parallel()

	sink := failingSink{}

	require.ErrorIs(t, Slice(sink, []int{1}), errSink)
	require.ErrorIs(t, Matrix(sink, [][]int{{1}}), errSink)
	require.ErrorIs(t, Map(sink, map[int]int{1: 1}), errSink)
	require.ErrorIs(t, Pairs(sink, []tuple.Tuple2[int, int]{tuple.NewTuple2(1, 2)}), errSink)
	require.ErrorIs(t, Table(sink, nil, [][]string{{"x"}}), errSink)

	assert.NoError(t, Matrix(sink, [][]int{}))
}

func TestJoin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.5, 2", Join([]float64{1.5, 2}, ", "))
	assert.Empty(t, Join([]int{}, ","))
}

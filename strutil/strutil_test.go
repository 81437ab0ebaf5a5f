package strutil

import (
	"testing"

	"github.com/amp-labs/lvt/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthOfLongestSubstring(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected int
	}{
		{input: "abcabcbb", expected: 3},
		{input: "", expected: 0},
		{input: "bbbbb", expected: 1},
		{input: "pwwkew", expected: 3},
		{input: "abba", expected: 2},
		{input: "dvdf", expected: 3},
		{input: "日本日本語", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, LengthOfLongestSubstring(tt.input))
		})
	}
}

func TestIsBracketSequenceValid(t *testing.T) {
	t.Parallel()

	valid := []string{"{[()]}", "", "()[]{}", "f(x[1]) { return }"}
	invalid := []string{"{[(])}", "(", ")", "([)]", "{{}"}

	for _, s := range valid {
		assert.True(t, IsBracketSequenceValid(s), s)
	}

	for _, s := range invalid {
		assert.False(t, IsBracketSequenceValid(s), s)
	}
}

func TestCommonPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fl", CommonPrefix([]string{"flower", "flow", "flight"}))
	assert.Equal(t, "", CommonPrefix([]string{"dog", "racecar", "car"}))
	assert.Equal(t, "same", CommonPrefix([]string{"same"}))
	assert.Equal(t, "", CommonPrefix([]string{}))
	assert.Equal(t, "ab", CommonPrefix([]string{"abc", "ab"}))
	assert.Equal(t, "héll", CommonPrefix([]string{"héllo", "héllé"}))

	type name string
	assert.Equal(t, "ann", CommonPrefix([]name{"anna", "anne"}))
}

func TestCommonLetters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ell", CommonLetters([]string{"bella", "label", "roller"}))
	assert.Equal(t, "co", CommonLetters([]string{"cool", "lock", "cook"}))
	assert.Equal(t, "", CommonLetters([]string{"abc", "xyz"}))
	assert.Equal(t, "", CommonLetters(nil))
	assert.Equal(t, "word", CommonLetters([]string{"word"}))
}

func TestPermutations(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"aab", "aba", "baa"}, Permutations("aab"))
	assert.Equal(t, []string{"abc", "acb", "bac", "bca", "cab", "cba"}, Permutations("cba"))
	assert.Equal(t, []string{"a"}, Permutations("a"))
	assert.Equal(t, []string{""}, Permutations(""))
	assert.Len(t, Permutations("aabb"), 6)
}

func TestNGramFrequencies(t *testing.T) {
	t.Parallel()

	got := NGramFrequencies([]string{"banana", "bandana"}, 2)

	assert.Equal(t, []tuple.Tuple2[string, int]{
		tuple.NewTuple2("an", 4),
		tuple.NewTuple2("na", 3),
		tuple.NewTuple2("ba", 2),
		tuple.NewTuple2("da", 1),
		tuple.NewTuple2("nd", 1),
	}, got)

	assert.Empty(t, NGramFrequencies([]string{"hi"}, 3))
	assert.Empty(t, NGramFrequencies([]string{"hello"}, 0))
	assert.Empty(t, NGramFrequencies(nil, 2))
}

func TestCounting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, CountOfUniqueSymbols("hello"))
	assert.Equal(t, 0, CountOfUniqueSymbols(""))
	assert.Equal(t, 10, SumOfOnlyDigits("a1b2c3d4"))
	assert.Equal(t, 0, SumOfOnlyDigits("none"))

	assert.Equal(t, 3, FirstCountOfConsecutiveOccurrences("aaabbc"))
	assert.Equal(t, 0, FirstCountOfConsecutiveOccurrences(""))
	assert.Equal(t, 2, CountOfConsecutiveOccurrencesAt("aaabbc", 2))
	assert.Equal(t, 1, CountOfConsecutiveOccurrencesAt("aaabbc", 3))
	assert.Equal(t, 0, CountOfConsecutiveOccurrencesAt("aaabbc", 4))
	assert.Equal(t, 0, CountOfConsecutiveOccurrencesAt("aaabbc", 0))
	assert.Equal(t, 4, MaxCountOfConsecutiveOccurrences("abbccccd"))
	assert.Equal(t, 0, MaxCountOfConsecutiveOccurrences(""))
}

func TestModify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", ToLower("HeLLo World"))
	assert.Equal(t, "STRASSE", ToUpper("straße"))
	assert.Equal(t, "hll Wrld", RemoveVowels("hello World"))
	assert.Equal(t, "a b c\t\td", RemoveConsecutiveSpaces("a   b  c\t\td"))
	assert.Equal(t, " x ", RemoveConsecutiveSpaces("   x   "))
	assert.Equal(t, "Hello world", RemovePunct("Hello, world!"))
}

func TestWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "", "c"}, Split("a,b,,c", ","))
	assert.Equal(t, []string{"a", "b"}, Split("  a   b ", ""))
	assert.Equal(t, "a-b-c", Join([]string{"a", "b", "c"}, "-"))
	assert.True(t, Contains([]string{"x", "y"}, "y"))
	assert.False(t, Contains(nil, "y"))

	found, err := RegexFindAll("a1b22c333", `\d+`, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "22", "333"}, found)

	rest, err := RegexFindAll("a1b22c333", `\d+`, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, rest)

	none, err := RegexFindAll("abc", `\d`, false)
	require.NoError(t, err)
	assert.Equal(t, []string{}, none)

	_, err = RegexFindAll("abc", `(`, false)
	require.Error(t, err)
}

func TestCompressPairs(t *testing.T) {
	t.Parallel()

	got, err := CompressPairs([]string{"a3", "b2", "a-1", "c10"})
	require.NoError(t, err)
	assert.Equal(t, []tuple.Tuple2[rune, int]{
		tuple.NewTuple2('a', 2),
		tuple.NewTuple2('b', 2),
		tuple.NewTuple2('c', 10),
	}, got)

	_, err = CompressPairs([]string{"a"})
	require.ErrorIs(t, err, ErrMalformedPair)

	_, err = CompressPairs([]string{""})
	require.ErrorIs(t, err, ErrMalformedPair)
}

func TestWordsInSameContexts(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"like", "love"}, WordsInSameContexts("I like cats, and I love cats."))
	assert.Equal(t, []string{}, WordsInSameContexts("one two three"))
	assert.Equal(t, []string{}, WordsInSameContexts(""))
}

package strutil

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/amp-labs/lvt/tuple"
)

// ErrMalformedPair is returned by CompressPairs for a token that isn't a
// character followed by an integer.
var ErrMalformedPair = errors.New("strutil: malformed pair")

// Split cuts s around every occurrence of delim, keeping empty pieces.
// An empty delim splits on runs of whitespace instead.
func Split(s, delim string) []string {
	if delim == "" {
		return strings.Fields(s)
	}

	return strings.Split(s, delim)
}

// Join concatenates tokens with delim between them.
func Join(tokens []string, delim string) string {
	return strings.Join(tokens, delim)
}

// Contains reports whether s is one of words.
func Contains(words []string, s string) bool {
	return slices.Contains(words, s)
}

// RegexFindAll returns every match of expr in s. With inverse set it returns
// the non-empty pieces between matches instead.
func RegexFindAll(s, expr string, inverse bool) ([]string, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", expr, err)
	}

	if !inverse {
		found := re.FindAllString(s, -1)
		if found == nil {
			return []string{}, nil
		}

		return found, nil
	}

	out := []string{}

	for _, piece := range re.Split(s, -1) {
		if piece != "" {
			out = append(out, piece)
		}
	}

	return out, nil
}

// CompressPairs reads tokens of the form "<char><integer>" such as "a3" or
// "b-1" and sums the integers per character. Characters keep the order in
// which they first appear.
func CompressPairs(tokens []string) ([]tuple.Tuple2[rune, int], error) {
	sums := make(map[rune]int)
	order := []rune{}

	for _, tok := range tokens {
		key, size := utf8.DecodeRuneInString(tok)
		if key == utf8.RuneError {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPair, tok)
		}

		n, err := strconv.Atoi(tok[size:])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPair, tok)
		}

		if _, ok := sums[key]; !ok {
			order = append(order, key)
		}

		sums[key] += n
	}

	out := make([]tuple.Tuple2[rune, int], len(order))
	for i, r := range order {
		out[i] = tuple.NewTuple2(r, sums[r])
	}

	return out, nil
}

// WordsInSameContexts returns the words of text that appear between the same
// pair of neighbours as some other word, e.g. "like" and "love" in
// "I like cats and I love cats". Matching ignores case and punctuation; the
// result is sorted and free of duplicates.
func WordsInSameContexts(text string) []string {
	words := strings.Fields(ToLower(RemovePunct(text)))

	type context struct{ before, after string }

	byContext := make(map[context][]string)

	for i := 1; i+1 < len(words); i++ {
		ctx := context{before: words[i-1], after: words[i+1]}
		if !slices.Contains(byContext[ctx], words[i]) {
			byContext[ctx] = append(byContext[ctx], words[i])
		}
	}

	out := []string{}

	for _, group := range byContext {
		if len(group) > 1 {
			out = append(out, group...)
		}
	}

	slices.Sort(out)

	return slices.Compact(out)
}

package strutil

import (
	"strings"
	"unicode/utf8"
)

// CommonPrefix returns the longest prefix shared by every string. It stops at
// the first rune that differs or at the end of the shortest string. No input
// means no prefix.
func CommonPrefix[S ~string](strs []S) string {
	if len(strs) == 0 {
		return ""
	}

	first := string(strs[0])
	end := 0

	for end < len(first) {
		_, size := utf8.DecodeRuneInString(first[end:])
		next := first[:end+size]

		for _, s := range strs[1:] {
			if !strings.HasPrefix(string(s), next) {
				return first[:end]
			}
		}

		end += size
	}

	return first
}

// CommonLetters returns the characters present in every word, counted with
// multiplicity: a letter that appears twice in each word appears twice in the
// result. Characters are emitted in the order they occur in the first word.
func CommonLetters(words []string) string {
	if len(words) == 0 {
		return ""
	}

	remaining := runeCounts(words[0])

	for _, w := range words[1:] {
		counts := runeCounts(w)

		for r, n := range remaining {
			remaining[r] = min(n, counts[r])
		}
	}

	var sb strings.Builder

	for _, r := range words[0] {
		if remaining[r] > 0 {
			remaining[r]--

			sb.WriteRune(r)
		}
	}

	return sb.String()
}

func runeCounts(s string) map[rune]int {
	counts := make(map[rune]int, len(s))
	for _, r := range s {
		counts[r]++
	}

	return counts
}

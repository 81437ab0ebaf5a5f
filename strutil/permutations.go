package strutil

import "slices"

// Permutations returns every distinct ordering of the characters of s in
// lexicographic order. Repeated characters don't produce repeated results:
// "aab" gives exactly "aab", "aba" and "baa". The empty string has a single
// permutation, itself.
func Permutations(s string) []string {
	runes := []rune(s)
	slices.Sort(runes)

	out := []string{string(runes)}
	for nextPermutation(runes) {
		out = append(out, string(runes))
	}

	return out
}

// nextPermutation rearranges r into the lexicographically next ordering and
// reports false once r is the last one.
func nextPermutation(r []rune) bool {
	i := len(r) - 2
	for i >= 0 && r[i] >= r[i+1] {
		i--
	}

	if i < 0 {
		return false
	}

	j := len(r) - 1
	for r[j] <= r[i] {
		j--
	}

	r[i], r[j] = r[j], r[i]
	slices.Reverse(r[i+1:])

	return true
}

package strutil

import "unicode"

// CountOfUniqueSymbols returns the number of distinct runes in s.
func CountOfUniqueSymbols(s string) int {
	return len(runeCounts(s))
}

// SumOfOnlyDigits adds up the ASCII digits of s and ignores everything else.
func SumOfOnlyDigits(s string) int {
	sum := 0

	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			sum += int(r - '0')
		}
	}

	return sum
}

// runLengths returns the lengths of the runs of equal consecutive runes in s.
func runLengths(s string) []int {
	var (
		runs []int
		prev rune
	)

	for i, r := range []rune(s) {
		if i > 0 && r == prev {
			runs[len(runs)-1]++
		} else {
			runs = append(runs, 1)
		}

		prev = r
	}

	return runs
}

// FirstCountOfConsecutiveOccurrences returns the length of the run the string
// starts with ("aaab" gives 3). The empty string gives 0.
func FirstCountOfConsecutiveOccurrences(s string) int {
	return CountOfConsecutiveOccurrencesAt(s, 1)
}

// CountOfConsecutiveOccurrencesAt returns the length of the n-th run of equal
// characters, counting from 1. Out of range n gives 0.
func CountOfConsecutiveOccurrencesAt(s string, n int) int {
	runs := runLengths(s)
	if n < 1 || n > len(runs) {
		return 0
	}

	return runs[n-1]
}

// MaxCountOfConsecutiveOccurrences returns the longest run of equal
// consecutive characters in s.
func MaxCountOfConsecutiveOccurrences(s string) int {
	best := 0
	for _, n := range runLengths(s) {
		best = max(best, n)
	}

	return best
}

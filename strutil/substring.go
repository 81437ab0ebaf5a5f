package strutil

// LengthOfLongestSubstring returns the length, in runes, of the longest
// substring of s without a repeated character. The window start jumps past
// the previous occurrence of any character repeated inside the window.
func LengthOfLongestSubstring(s string) int {
	lastSeen := make(map[rune]int)
	best, start := 0, 0

	for i, r := range []rune(s) {
		if prev, ok := lastSeen[r]; ok && prev >= start {
			start = prev + 1
		}

		lastSeen[r] = i
		best = max(best, i-start+1)
	}

	return best
}

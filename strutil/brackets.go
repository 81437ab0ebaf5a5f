package strutil

var closers = map[rune]rune{ //nolint:gochecknoglobals
	')': '(',
	']': '[',
	'}': '{',
}

// IsBracketSequenceValid reports whether every (, [ and { in seq is closed
// by the matching bracket in the right order. Other characters are ignored,
// so the empty string is valid.
func IsBracketSequenceValid(seq string) bool {
	var stack []rune

	for _, r := range seq {
		switch r {
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != closers[r] {
				return false
			}

			stack = stack[:len(stack)-1]
		}
	}

	return len(stack) == 0
}

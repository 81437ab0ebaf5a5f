package algorithm

import "golang.org/x/exp/constraints"

// SplitNumberOnDigits returns the decimal digits of n, most significant
// first. Zero yields [0].
func SplitNumberOnDigits[T constraints.Unsigned](n T) []int {
	if n == 0 {
		return []int{0}
	}

	var digits []int
	for ; n > 0; n /= 10 {
		digits = append(digits, int(n%10))
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return digits
}

// ComposeNumber is the inverse of SplitNumberOnDigits: it reads digits most
// significant first. Overflow wraps like ordinary integer arithmetic.
func ComposeNumber[T constraints.Integer](digits []int) T {
	var n T
	for _, d := range digits {
		n = n*10 + T(d)
	}

	return n
}

// Package bignum does schoolbook arithmetic on arbitrarily long non-negative
// decimal numbers stored as digit slices, most significant digit first.
package bignum

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNegative is returned by Factorial for n < 0.
	ErrNegative = errors.New("bignum: negative argument")
	// ErrInvalidDigit is returned by Parse for anything but 0-9.
	ErrInvalidDigit = errors.New("bignum: invalid digit")
)

// Parse turns a decimal string into digits. Leading zeros are dropped.
func Parse(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty number", ErrInvalidDigit)
	}

	digits := make([]int, len(s))

	for i := range len(s) {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDigit, c)
		}

		digits[i] = int(c - '0')
	}

	return trim(digits), nil
}

// Format renders digits as a decimal string.
func Format(digits []int) string {
	if len(digits) == 0 {
		return "0"
	}

	var sb strings.Builder

	sb.Grow(len(digits))

	for _, d := range digits {
		sb.WriteByte(byte('0' + d))
	}

	return sb.String()
}

// Sum returns a + b. Empty operands count as zero.
func Sum(a, b []int) []int {
	out := make([]int, max(len(a), len(b))+1)
	carry := 0

	for i := range out {
		d := carry
		if i < len(a) {
			d += a[len(a)-1-i]
		}

		if i < len(b) {
			d += b[len(b)-1-i]
		}

		out[len(out)-1-i] = d % 10
		carry = d / 10
	}

	return trim(out)
}

// Product returns a * b. Empty operands count as zero.
func Product(a, b []int) []int {
	if len(a) == 0 || len(b) == 0 {
		return []int{0}
	}

	// acc is least significant first while accumulating.
	acc := make([]int, len(a)+len(b))

	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			acc[(len(a)-1-i)+(len(b)-1-j)] += a[i] * b[j]
		}
	}

	for i := 0; i < len(acc)-1; i++ {
		acc[i+1] += acc[i] / 10
		acc[i] %= 10
	}

	out := make([]int, len(acc))
	for i, d := range acc {
		out[len(acc)-1-i] = d
	}

	return trim(out)
}

// Factorial returns n! in decimal.
func Factorial(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegative, n)
	}

	result := []int{1}
	for i := 2; i <= n; i++ {
		result = Product(result, digitsOf(i))
	}

	return Format(result), nil
}

func digitsOf(n int) []int {
	if n == 0 {
		return []int{0}
	}

	var rev []int
	for ; n > 0; n /= 10 {
		rev = append(rev, n%10)
	}

	out := make([]int, len(rev))
	for i, d := range rev {
		out[len(rev)-1-i] = d
	}

	return out
}

// trim drops leading zeros but keeps a lone zero.
func trim(digits []int) []int {
	if len(digits) == 0 {
		return []int{0}
	}

	i := 0
	for i < len(digits)-1 && digits[i] == 0 {
		i++
	}

	return digits[i:]
}

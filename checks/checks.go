// Package checks holds small value predicates: vowels, arithmetic kinds and
// the shape of numeric strings typed by a user.
package checks

import (
	"reflect"
	"strings"
	"unicode"
)

// IsVowel reports whether r is one of a, e, i, o, u in either case.
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	default:
		return false
	}
}

// IsArithmetic reports whether v has an integer, unsigned integer or
// floating point kind. Named types are judged by their underlying kind.
func IsArithmetic[T any](v T) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsUintNumber reports whether s is a non-empty run of decimal digits.
func IsUintNumber(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}

	return true
}

// IsIntNumber reports whether s is a decimal integer with an optional leading minus.
func IsIntNumber(s string) bool {
	return IsUintNumber(strings.TrimPrefix(s, "-"))
}

// IsFloatingNumber reports whether s is a decimal number with an optional
// leading minus and at most one point. The point may not lead the string and
// at least one digit is required.
func IsFloatingNumber(s string) bool {
	body := strings.TrimPrefix(s, "-")
	if body == "" || body[0] == '.' {
		return false
	}

	points := 0

	for _, r := range body {
		switch {
		case r == '.':
			points++
			if points > 1 {
				return false
			}
		case !isDigit(r):
			return false
		}
	}

	return true
}

func isDigit(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsDigit(r)
}

package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/amp-labs/lvt/checks"
)

// ToLower lowercases s using Unicode case mapping ("ΣΑΣ" becomes "σας").
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ToUpper uppercases s using Unicode case mapping ("straße" becomes "STRASSE").
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// RemoveVowels drops every ASCII vowel from s.
func RemoveVowels(s string) string {
	return strings.Map(func(r rune) rune {
		if checks.IsVowel(r) {
			return -1
		}

		return r
	}, s)
}

// RemoveConsecutiveSpaces collapses runs of spaces into a single space.
// Other whitespace is kept as is.
func RemoveConsecutiveSpaces(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	prevSpace := false

	for _, r := range s {
		if r == ' ' && prevSpace {
			continue
		}

		prevSpace = r == ' '

		sb.WriteRune(r)
	}

	return sb.String()
}

// RemovePunct drops all Unicode punctuation from s.
func RemovePunct(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}

		return r
	}, s)
}

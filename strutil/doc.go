// Package strutil contains string analytics: sliding-window substrings,
// bracket matching, prefixes and shared letters, permutations, n-grams and
// the small counting/cleanup helpers built around them.
//
// All functions work on runes, so multi-byte UTF-8 input is handled one
// character at a time. None of them keep references to their inputs.
package strutil

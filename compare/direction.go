package compare

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned by ParseDirection for names it doesn't recognize.
var ErrUnknownDirection = errors.New("unknown sort direction")

// LessFunc reports whether a must be placed before b. It must be a strict
// ordering: LessFunc(x, x) is always false.
type LessFunc[T any] func(a, b T) bool

// Direction selects ascending or descending order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "asc", "ascending", "desc" and "descending" (case-insensitive).
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
	}
}

// OrderedLess returns the strict ordering for dir over an ordered type.
// Equal elements are never placed before each other, in either direction.
func OrderedLess[T cmp.Ordered](dir Direction) LessFunc[T] {
	if dir == Descending {
		return Greater[T]
	}

	return Less[T]
}

// Reverse flips a strict ordering.
func Reverse[T any](less LessFunc[T]) LessFunc[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// InOrder reports whether a and b already respect dir, i.e. b does not have to
// be moved before a. Equal values are always in order.
func InOrder[T cmp.Ordered](dir Direction, a, b T) bool {
	return !OrderedLess[T](dir)(b, a)
}

// UnmarshalText lets a Direction be read straight from configuration text.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

package sorting

import (
	"fmt"
	"strings"
)

// Strategy selects one of the sorting algorithms.
type Strategy int

const (
	Bubble Strategy = iota
	Insertion
	Selection
	Shell
	Quick
	Merge
)

var strategyNames = [...]string{ //nolint:gochecknoglobals
	Bubble:    "bubble",
	Insertion: "insertion",
	Selection: "selection",
	Shell:     "shell",
	Quick:     "quick",
	Merge:     "merge",
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Bubble, Insertion, Selection, Shell, Quick, Merge}
}

func (s Strategy) String() string {
	if !s.valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Stable reports whether the strategy keeps equal elements in input order.
func (s Strategy) Stable() bool {
	switch s { //nolint:exhaustive
	case Bubble, Insertion, Merge:
		return true
	default:
		return false
	}
}

func (s Strategy) valid() bool {
	return s >= Bubble && s <= Merge
}

// ParseStrategy maps a case-insensitive name such as "quick" or "Merge" to a Strategy.
// The suffix "sort" is accepted too ("quicksort", "shell-sort").
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(key, "sort"), "-"))

	for i, n := range strategyNames {
		if n == key {
			return Strategy(i), nil
		}
	}

	return Bubble, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// ParseStrategies parses a comma separated list. Blank entries are skipped.
func ParseStrategies(list string) ([]Strategy, error) {
	var out []Strategy

	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		s, err := ParseStrategy(part)
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	return out, nil
}

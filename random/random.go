// Package random produces test inputs for the algorithms: numbers, strings,
// integer slices and matrices, and word lists.
//
// Everything except Words draws from an explicit Source so a run can be
// replayed from its seed.
package random

import (
	"math/rand/v2"
	"strings"

	"github.com/Pallinder/go-randomdata"
)

// Alphabet is the character set String draws from.
type Alphabet int

const (
	// AllSymbols is printable ASCII from '!' to '~'.
	AllSymbols Alphabet = iota
	// DigitsOnly is '0'..'9'; a generated string never starts with '0'
	// unless it has length 1.
	DigitsOnly
)

const (
	firstPrintable = '!'
	lastPrintable  = '~'
)

// Source is the randomness capability handed to callers that need inputs.
type Source interface {
	// Float64 returns a value in [lo, hi).
	Float64(lo, hi float64) float64
	// IntN returns a value in [lo, hi].
	IntN(lo, hi int) int
	// String returns n characters from the source's alphabet.
	String(n int) string
}

// Generator is a seeded Source.
// It is not safe for concurrent use.
type Generator struct {
	rng      *rand.Rand
	alphabet Alphabet
}

var _ Source = (*Generator)(nil)

// Option configures a Generator.
type Option func(*Generator)

// WithAlphabet selects the alphabet used by String.
func WithAlphabet(a Alphabet) Option {
	return func(g *Generator) {
		g.alphabet = a
	}
}

// New returns a Generator seeded with seed. Equal seeds give equal streams.
func New(seed uint64, opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec,mnd
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Float64 returns a value in [lo, hi). If hi <= lo it returns lo.
func (g *Generator) Float64(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}

	return lo + g.rng.Float64()*(hi-lo)
}

// IntN returns a value in [lo, hi]. The bounds may be given in either order.
func (g *Generator) IntN(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}

	return lo + g.rng.IntN(hi-lo+1)
}

// String returns n characters from the generator's alphabet.
func (g *Generator) String(n int) string {
	if n <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(n)

	for i := range n {
		sb.WriteByte(g.char(i == 0 && n > 1))
	}

	return sb.String()
}

func (g *Generator) char(leading bool) byte {
	switch g.alphabet {
	case DigitsOnly:
		if leading {
			return byte('1' + g.rng.IntN(9)) //nolint:mnd
		}

		return byte('0' + g.rng.IntN(10)) //nolint:mnd
	default:
		return byte(firstPrintable + g.rng.IntN(lastPrintable-firstPrintable+1))
	}
}

// Ints returns n integers in [lo, hi].
func Ints(src Source, n, lo, hi int) []int {
	out := make([]int, max(n, 0))
	Fill(src, out, lo, hi)

	return out
}

// Fill overwrites every element of s with an integer in [lo, hi].
func Fill(src Source, s []int, lo, hi int) {
	for i := range s {
		s[i] = src.IntN(lo, hi)
	}
}

// Floats returns n floats in [lo, hi).
func Floats(src Source, n int, lo, hi float64) []float64 {
	out := make([]float64, max(n, 0))

	for i := range out {
		out[i] = src.Float64(lo, hi)
	}

	return out
}

// IntMatrix returns a rows x cols matrix of integers in [lo, hi].
func IntMatrix(src Source, rows, cols, lo, hi int) [][]int {
	out := make([][]int, max(rows, 0))

	for i := range out {
		out[i] = Ints(src, cols, lo, hi)
	}

	return out
}

// Strings returns n strings of length size.
func Strings(src Source, n, size int) []string {
	out := make([]string, max(n, 0))

	for i := range out {
		out[i] = src.String(size)
	}

	return out
}

// Words returns n lower-case English-like words. Words come from
// go-randomdata's own generator and are not reproducible from a seed.
func Words(n int) []string {
	out := make([]string, max(n, 0))

	for i := range out {
		switch i % 3 { //nolint:mnd
		case 0:
			out[i] = strings.ToLower(randomdata.Adjective())
		case 1:
			out[i] = strings.ToLower(randomdata.Noun())
		default:
			out[i] = strings.ToLower(randomdata.SillyName())
		}
	}

	return out
}

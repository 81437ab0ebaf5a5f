// Package tuple holds small fixed-size value groups returned by the analytics
// packages (element/count pairs, zipped slices).
//
//nolint:ireturn
package tuple

func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is a type that represents a pair of values.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}

// Values unpacks the pair.
func (t Tuple2[A, B]) Values() (A, B) { //nolint:ireturn
	return t.first, t.second
}

// Swap returns the pair with its members exchanged.
func (t Tuple2[A, B]) Swap() Tuple2[B, A] {
	return NewTuple2(t.second, t.first)
}

func NewTuple3[A, B, C any](first A, second B, third C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{
		first:  first,
		second: second,
		third:  third,
	}
}

// Tuple3 is a type that represents a triple of values.
type Tuple3[A any, B any, C any] struct {
	first  A
	second B
	third  C
}

func (t Tuple3[A, B, C]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple3[A, B, C]) Second() B { //nolint:ireturn
	return t.second
}

func (t Tuple3[A, B, C]) Third() C { //nolint:ireturn
	return t.third
}

// Values unpacks the triple.
func (t Tuple3[A, B, C]) Values() (A, B, C) { //nolint:ireturn
	return t.first, t.second, t.third
}

package algorithm

import "errors"

var (
	// ErrMalformedInterval indicates an interval with Start > End.
	ErrMalformedInterval = errors.New("algorithm: interval start is after its end")
	// ErrShapeMismatch indicates the element count doesn't match the requested shape.
	ErrShapeMismatch = errors.New("algorithm: element count does not match shape")
	// ErrIndexOutOfRange indicates slice bounds outside the sequence.
	ErrIndexOutOfRange = errors.New("algorithm: index out of range")
)

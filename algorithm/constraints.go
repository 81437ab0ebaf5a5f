package algorithm

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

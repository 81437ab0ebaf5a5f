package algorithm

import "fmt"

// SumOfPolynomials adds two coefficient slices term by term, index i holding
// the coefficient of x^i. The shorter polynomial is treated as zero-padded.
func SumOfPolynomials[T Number](a, b []T) []T {
	if len(a) < len(b) {
		a, b = b, a
	}

	out := make([]T, len(a))
	copy(out, a)

	for i, v := range b {
		out[i] += v
	}

	return out
}

// SumOfMatrices adds b to a element-wise. Both must have the same shape; a
// mismatch is a caller error and isn't checked.
func SumOfMatrices[T Number](a, b [][]T) [][]T {
	out := make([][]T, len(a))

	for i, row := range a {
		out[i] = make([]T, len(row))

		for j, v := range row {
			out[i][j] = v + b[i][j]
		}
	}

	return out
}

// TransposeMatrix returns the transpose of a rectangular matrix. The column
// count is taken from the first row.
func TransposeMatrix[T any](m [][]T) [][]T {
	if len(m) == 0 {
		return [][]T{}
	}

	out := make([][]T, len(m[0]))

	for j := range out {
		out[j] = make([]T, len(m))

		for i := range m {
			out[j][i] = m[i][j]
		}
	}

	return out
}

// MatrixToSlice flattens m row by row.
func MatrixToSlice[T any](m [][]T) []T {
	n := 0
	for _, row := range m {
		n += len(row)
	}

	out := make([]T, 0, n)
	for _, row := range m {
		out = append(out, row...)
	}

	return out
}

// SliceToMatrix reshapes s into rows x cols, filling row by row.
func SliceToMatrix[T any](s []T, rows, cols int) ([][]T, error) {
	if rows < 0 || cols < 0 || rows*cols != len(s) {
		return nil, fmt.Errorf("%w: %d elements into %dx%d", ErrShapeMismatch, len(s), rows, cols)
	}

	out := make([][]T, rows)
	for i := range out {
		out[i] = append([]T(nil), s[i*cols:(i+1)*cols]...)
	}

	return out, nil
}

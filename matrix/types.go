// SPDX-License-Identifier: MIT

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: Rows/Cols are O(1); At/Set are O(1) for Dense and
// O(log nnz(col)) for Sparse; Clone is O(storage).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the matrix.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Visitor is implemented by matrices that can enumerate their stored entries
// in a fixed order without going through At. Dense visits every cell in
// row-major order; Sparse visits only non-zeros in column-major order.
// Kernels use it to skip zeros on sparse inputs.
type Visitor interface {
	Do(f func(i, j int, v float64) bool)
}

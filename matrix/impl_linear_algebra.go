// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix product, transpose, matrix-vector product and zero tests. All
// functions validate inputs fail-fast and return sentinel errors on shape
// mismatches.
//
// Determinism:
//   - Fixed loop orders; sparse inputs are walked through Visitor in their
//     documented order, never through map iteration.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opIsZero    = "IsZero"
	opRank      = "Rank"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product a × b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows, b.Cols)
//     (zero dimensions allowed, so 1×0 · 0×3 yields a 1×3 zero matrix).
//   - Stage 2: Dense×Dense uses the flat i→k→j loop; otherwise the non-zeros
//     of a are visited and each contributes v·b[k,:] to res[i,:].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Dense: O(r*n*c). Sparse a: O(nnz(a)*c) reads of b.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var i, j, k, rowA, rowB, rowR int
			var av float64
			for i = 0; i < aRows; i++ {
				rowA, rowR = i*aCols, i*bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Generic path: walk a's entries, read b row k.
	var walkErr error
	visit(a, func(i, k int, av float64) bool {
		if av == 0 {
			return true
		}
		for j := 0; j < bCols; j++ {
			bv, e := b.At(k, j)
			if e != nil {
				walkErr = fmt.Errorf("At(%d,%d): %w", k, j, e)
				return false
			}
			res.data[i*bCols+j] += av * bv
		}
		return true
	})
	if walkErr != nil {
		return nil, matrixErrorf(opMul, walkErr)
	}

	return res, nil
}

// Transpose returns mᵀ. A *Sparse input yields a *Sparse; everything else
// yields a *Dense. The input is never mutated.
// Complexity: O(r*c) dense, O(nnz·log) sparse.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()

	if sm, ok := m.(*Sparse); ok {
		out, err := NewSparse(cols, rows)
		if err != nil {
			return nil, matrixErrorf(opTranspose, err)
		}
		// Column-major walk of sm emits each output column in ascending row order.
		sm.Do(func(i, j int, v float64) bool {
			out.cols[i] = append(out.cols[i], sparseEntry{row: j, val: v})
			out.nnz++
			return true
		})
		return out, nil
	}

	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var walkErr error
	visit(m, func(i, j int, v float64) bool {
		if e := res.Set(j, i, v); e != nil {
			walkErr = e
			return false
		}
		return true
	})
	if walkErr != nil {
		return nil, matrixErrorf(opTranspose, walkErr)
	}

	return res, nil
}

// MatVec computes y = m·x.
// Contract: m non-nil; len(x) == m.Cols().
// Complexity: O(r*c) dense, O(nnz) sparse.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows())
	visit(m, func(i, j int, v float64) bool {
		if v != 0 && x[j] != 0 {
			y[i] += v * x[j]
		}
		return true
	})

	return y, nil
}

// IsZero reports whether every entry satisfies |v| ≤ tol.
// Errors: ErrNilMatrix, ErrInvalidTolerance (tol negative or non-finite).
func IsZero(m Matrix, tol float64) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsZero, err)
	}
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return false, matrixErrorf(opIsZero, ErrInvalidTolerance)
	}
	zero := true
	visit(m, func(_, _ int, v float64) bool {
		if math.Abs(v) > tol {
			zero = false
		}
		return zero
	})

	return zero, nil
}

// visit walks m through Visitor when available, otherwise through At in
// row-major order. Errors from At cannot occur for in-range indices and are
// treated as zero.
func visit(m Matrix, f func(i, j int, v float64) bool) {
	if vm, ok := m.(Visitor); ok {
		vm.Do(f)
		return
	}
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			if !f(i, j, v) {
				return
			}
		}
	}
}

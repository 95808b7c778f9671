// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm returns these sentinels (optionally wrapped with a call-site
// tag via matrixErrorf) and tests match them with errors.Is. No kernel panics
// on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates requested dimensions are out of range
	// (non-positive for NewDense, negative for NewSparse).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols != b.Rows, or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrInvalidTolerance is returned for negative or non-finite tolerances and
	// sketch parameters supplied through RankOption.
	ErrInvalidTolerance = errors.New("matrix: invalid tolerance")

	// ErrFactorization reports that a singular-value factorization did not
	// converge. Rank absorbs it into MethodColumnFallback.
	ErrFactorization = errors.New("matrix: factorization failed")
)

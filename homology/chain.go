// SPDX-License-Identifier: MIT

// Package homology - chains and cochains.
//
// An i-chain is a coefficient vector over Complex.NFaces(i) in canonical
// order; an i-cochain lives on the same basis. ChainBoundary applies ∂_i to a
// chain, Coboundary returns the dual operator δ^i = ∂_{i+1}ᵀ.

package homology

import (
	"cmp"
	"fmt"
	"math"

	"github.com/katalvlaran/lvtopo/matrix"
	"github.com/katalvlaran/lvtopo/simplicial"
)

const (
	opChainBoundary = "ChainBoundary"
	opCoboundary    = "Coboundary"
	opIsCycle       = "IsCycle"
)

// ChainBoundary returns ∂_i(chain), a coefficient vector over NFaces(i-1)
// (a single augmentation entry when i = 0).
//
// Errors:
//   - ErrInvalidDimension (i < 0), matrix.ErrDimensionMismatch when
//     len(chain) != f_i, matrix.ErrNilMatrix for a nil chain.
//
// Complexity:
//   - O(f_i · (i+1)) once ∂_i is built.
func ChainBoundary[L cmp.Ordered](c *simplicial.Complex[L], i int, chain []float64) ([]float64, error) {
	d, err := Boundary(c, i)
	if err != nil {
		return nil, homologyErrorf(opChainBoundary, err)
	}
	out, err := matrix.MatVec(d, chain)
	if err != nil {
		return nil, homologyErrorf(opChainBoundary, fmt.Errorf("i=%d: %w", i, err))
	}

	return out, nil
}

// IsCycle reports whether chain is an i-cycle, i.e. ∂_i(chain) = 0 within tol.
// For i = 0 the augmentation is used, so a 0-chain is a cycle iff its
// coefficients sum to zero (a reduced cycle).
// Errors: matrix.ErrInvalidTolerance (tol negative or non-finite), plus any
// ChainBoundary error.
func IsCycle[L cmp.Ordered](c *simplicial.Complex[L], i int, chain []float64, tol float64) (bool, error) {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return false, homologyErrorf(opIsCycle, fmt.Errorf("tol=%g: %w", tol, matrix.ErrInvalidTolerance))
	}
	img, err := ChainBoundary(c, i, chain)
	if err != nil {
		return false, homologyErrorf(opIsCycle, err)
	}
	for _, x := range img {
		if math.Abs(x) > tol {
			return false, nil
		}
	}

	return true, nil
}

// Coboundary returns δ^i = ∂_{i+1}ᵀ: rows are the (i+1)-faces, columns the
// i-faces. Past the top dimension it has no rows.
//
// Errors:
//   - ErrInvalidDimension (i < 0), plus any Boundary error.
func Coboundary[L cmp.Ordered](c *simplicial.Complex[L], i int) (*matrix.Sparse, error) {
	if i < 0 {
		return nil, homologyErrorf(opCoboundary, fmt.Errorf("i=%d: %w", i, ErrInvalidDimension))
	}
	d, err := Boundary(c, i+1)
	if err != nil {
		return nil, homologyErrorf(opCoboundary, err)
	}
	t, err := matrix.Transpose(d)
	if err != nil {
		return nil, homologyErrorf(opCoboundary, err)
	}

	return t.(*matrix.Sparse), nil
}

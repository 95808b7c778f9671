// SPDX-License-Identifier: MIT

// Package homology - boundary operators.
//
// Determinism:
//   - Rows and columns follow Complex.NFaces order; facets are located by
//     binary search in that order, never through a map.
//
// Complexity quicksheet (f_i faces of dimension i):
//   - Boundary(i): O(f_i · i² · log f_{i-1}) time, O(f_i · (i+1)) non-zeros.

package homology

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtopo/matrix"
	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/simplicial"
)

const (
	opBoundary      = "Boundary"
	opBoundaryDense = "BoundaryDense"
	opCheck         = "CheckChainComplex"
)

// Boundary returns the signed boundary operator ∂_i of c as a sparse matrix.
//
// Implementation:
//   - Stage 1: source = NFaces(i) (columns), target = NFaces(i-1) (rows).
//   - Stage 2: empty target → 1×|source| row of +1 (augmentation map).
//   - Stage 3: for each source face and each removal position a, locate the
//     facet in target and store (-1)^a.
//
// Errors:
//   - ErrInvalidDimension (i < 0), ErrMissingFace (wrapped with the face pair).
func Boundary[L cmp.Ordered](c *simplicial.Complex[L], i int) (*matrix.Sparse, error) {
	if i < 0 {
		return nil, homologyErrorf(opBoundary, fmt.Errorf("i=%d: %w", i, ErrInvalidDimension))
	}
	m, err := boundaryOf(c.NFaces(i), c.NFaces(i-1))
	if err != nil {
		return nil, homologyErrorf(opBoundary, err)
	}

	return m, nil
}

// BoundaryDense is Boundary materialized as a Dense matrix. The 1×0 shape of
// an empty dimension is preserved. Rank results are identical to Boundary.
func BoundaryDense[L cmp.Ordered](c *simplicial.Complex[L], i int) (*matrix.Dense, error) {
	s, err := Boundary(c, i)
	if err != nil {
		return nil, homologyErrorf(opBoundaryDense, err)
	}

	return s.ToDense(), nil
}

// boundaryOf builds the operator from explicit face lists, both sorted in
// canonical order.
func boundaryOf[L cmp.Ordered](source, target []simplex.Simplex[L]) (*matrix.Sparse, error) {
	if len(target) == 0 {
		m, err := matrix.NewSparse(1, len(source))
		if err != nil {
			return nil, err
		}
		for j := range source {
			if err = m.Set(0, j, 1); err != nil {
				return nil, err
			}
		}
		return m, nil
	}

	m, err := matrix.NewSparse(len(target), len(source))
	if err != nil {
		return nil, err
	}
	for j, f := range source {
		for a, g := range simplex.Facets(f) {
			row, ok := slices.BinarySearchFunc(target, g, simplex.Compare[L])
			if !ok {
				return nil, fmt.Errorf("facet %v of %v: %w", g, f, ErrMissingFace)
			}
			sign := 1.0
			if a%2 == 1 {
				sign = -1
			}
			if err = m.Set(row, j, sign); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// CheckChainComplex verifies ∂_{i-1}·∂_i = 0 for i ≥ 1. For i = 1 this is the
// augmentation identity: every edge column sums to zero.
//
// Errors:
//   - ErrInvalidDimension (i < 1), ErrNotChainComplex, or any Boundary error.
func CheckChainComplex[L cmp.Ordered](c *simplicial.Complex[L], i int) error {
	if i < 1 {
		return homologyErrorf(opCheck, fmt.Errorf("i=%d: %w", i, ErrInvalidDimension))
	}
	hi, err := Boundary(c, i)
	if err != nil {
		return homologyErrorf(opCheck, err)
	}
	lo, err := Boundary(c, i-1)
	if err != nil {
		return homologyErrorf(opCheck, err)
	}
	if lo.Cols() != hi.Rows() {
		// Both dimensions lie above the top one: ∂_i is 1×0, nothing to compose.
		return nil
	}
	p, err := matrix.Mul(lo, hi)
	if err != nil {
		return homologyErrorf(opCheck, err)
	}
	zero, err := matrix.IsZero(p, 0)
	if err != nil {
		return homologyErrorf(opCheck, err)
	}
	if !zero {
		return homologyErrorf(opCheck, fmt.Errorf("i=%d: %w", i, ErrNotChainComplex))
	}

	return nil
}

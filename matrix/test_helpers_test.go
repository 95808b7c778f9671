// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels and rank tests.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/matrix"
)

// hide wraps any Matrix to mask its concrete type, forcing the generic
// (At-based, non-Visitor) paths in code under test.
type hide struct{ matrix.Matrix }

// dense builds a Dense from literal rows or fails the test.
func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return d
}

// sparse builds a Sparse from literal rows or fails the test.
func sparse(t testing.TB, rows [][]float64) *matrix.Sparse {
	t.Helper()
	c := 0
	if len(rows) > 0 {
		c = len(rows[0])
	}
	s, err := matrix.NewSparse(len(rows), c)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, s.Set(i, j, v))
		}
	}

	return s
}

// compare asserts m equals want element-wise.
func compare(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], got, 1e-12, "(%d,%d)", i, j)
		}
	}
}

// triangleBoundary1 is ∂₁ of a filled triangle: rows (0),(1),(2); cols (0,1),(0,2),(1,2).
var triangleBoundary1 = [][]float64{
	{-1, -1, 0},
	{1, 0, -1},
	{0, 1, 1},
}

// triangleBoundary2 is ∂₂ of a filled triangle: rows (0,1),(0,2),(1,2); col (0,1,2).
var triangleBoundary2 = [][]float64{
	{1},
	{-1},
	{1},
}

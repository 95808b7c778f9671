// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/matrix"
)

// TestMul_BoundaryComposition checks ∂₁·∂₂ = 0 across every operand flavour.
func TestMul_BoundaryComposition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b matrix.Matrix
	}{
		{"dense×dense", dense(t, triangleBoundary1), dense(t, triangleBoundary2)},
		{"sparse×sparse", sparse(t, triangleBoundary1), sparse(t, triangleBoundary2)},
		{"sparse×dense", sparse(t, triangleBoundary1), dense(t, triangleBoundary2)},
		{"hidden×hidden", hide{dense(t, triangleBoundary1)}, hide{sparse(t, triangleBoundary2)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := matrix.Mul(tc.a, tc.b)
			require.NoError(t, err)
			compare(t, [][]float64{{0}, {0}, {0}}, p)
			zero, err := matrix.IsZero(p, 0)
			require.NoError(t, err)
			require.True(t, zero)
		})
	}
}

func TestMul_Values(t *testing.T) {
	t.Parallel()

	a := dense(t, [][]float64{{1, 2}, {3, 4}})
	b := dense(t, [][]float64{{5, 6}, {7, 8}})
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	compare(t, [][]float64{{19, 22}, {43, 50}}, p)

	p, err = matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	compare(t, [][]float64{{19, 22}, {43, 50}}, p)
}

func TestMul_ZeroInnerDimension(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewSparse(1, 0)
	require.NoError(t, err)
	b, err := matrix.NewSparse(0, 3)
	require.NoError(t, err)
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	compare(t, [][]float64{{0, 0, 0}}, p)
}

func TestMul_Errors(t *testing.T) {
	t.Parallel()

	a := dense(t, [][]float64{{1, 2}})
	_, err := matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var nilSparse *matrix.Sparse
	_, err = matrix.Mul(a, nilSparse)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	want := [][]float64{{-1, 1, 0}, {-1, 0, 1}, {0, -1, 1}}

	ts, err := matrix.Transpose(sparse(t, triangleBoundary1))
	require.NoError(t, err)
	require.IsType(t, &matrix.Sparse{}, ts)
	compare(t, want, ts)

	td, err := matrix.Transpose(dense(t, triangleBoundary1))
	require.NoError(t, err)
	require.IsType(t, &matrix.Dense{}, td)
	compare(t, want, td)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	for _, m := range []matrix.Matrix{dense(t, triangleBoundary1), sparse(t, triangleBoundary1), hide{sparse(t, triangleBoundary1)}} {
		y, err := matrix.MatVec(m, []float64{1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, []float64{-3, -2, 5}, y)
	}

	_, err := matrix.MatVec(dense(t, triangleBoundary1), []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(dense(t, triangleBoundary1), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	m := dense(t, [][]float64{{0, 1e-12}})
	zero, err := matrix.IsZero(m, 1e-9)
	require.NoError(t, err)
	require.True(t, zero)

	zero, err = matrix.IsZero(m, 0)
	require.NoError(t, err)
	require.False(t, zero)

	_, err = matrix.IsZero(m, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidTolerance)
	_, err = matrix.IsZero(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

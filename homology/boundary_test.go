// SPDX-License-Identifier: MIT
package homology_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/matrix"
	"github.com/katalvlaran/lvtopo/simplicial"
)

func denseRows(t *testing.T, m *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		row, err := m.RawRow(i)
		require.NoError(t, err)
		out[i] = row
	}

	return out
}

func TestBoundary_SignRule(t *testing.T) {
	c := complexOf(t, []int{0, 1, 2})

	d1, err := homology.BoundaryDense(c, 1)
	require.NoError(t, err)
	// rows (0),(1),(2); cols (0,1),(0,2),(1,2)
	assert.Equal(t, [][]float64{{-1, -1, 0}, {1, 0, -1}, {0, 1, 1}}, denseRows(t, d1))

	d2, err := homology.BoundaryDense(c, 2)
	require.NoError(t, err)
	// rows (0,1),(0,2),(1,2); col (0,1,2)
	assert.Equal(t, [][]float64{{1}, {-1}, {1}}, denseRows(t, d2))
}

func TestBoundary_Augmentation(t *testing.T) {
	// single isolated point: ∂_0 is the 1×1 matrix [+1]
	c := complexOf(t, []int{0})
	d0, err := homology.BoundaryDense(c, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1}}, denseRows(t, d0))

	c = complexOf(t, []int{0, 1}, []int{5})
	d0, err = homology.BoundaryDense(c, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1, 1}}, denseRows(t, d0))
}

func TestBoundary_Shapes(t *testing.T) {
	c := complexOf(t, []int{0, 1, 2})
	for _, tc := range []struct {
		i          int
		rows, cols int
		nnz        int
	}{
		{0, 1, 3, 3},
		{1, 3, 3, 6},
		{2, 3, 1, 3},
		{3, 1, 0, 0}, // source empty, target = one triangle
		{4, 1, 0, 0}, // both empty
	} {
		m, err := homology.Boundary(c, tc.i)
		require.NoError(t, err)
		assert.Equal(t, tc.rows, m.Rows(), "i=%d rows", tc.i)
		assert.Equal(t, tc.cols, m.Cols(), "i=%d cols", tc.i)
		assert.Equal(t, tc.nnz, m.NonZeros(), "i=%d nnz", tc.i)
	}

	empty := complexOf(t)
	m, err := homology.Boundary(empty, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rows())
	assert.Equal(t, 0, m.Cols())

	_, err = homology.Boundary(c, -1)
	require.ErrorIs(t, err, homology.ErrInvalidDimension)
	_, err = homology.BoundaryDense(c, -1)
	require.ErrorIs(t, err, homology.ErrInvalidDimension)
}

func TestBoundary_StringLabels(t *testing.T) {
	c, err := simplicial.New([]string{"b", "a"})
	require.NoError(t, err)
	d1, err := homology.BoundaryDense(c, 1)
	require.NoError(t, err)
	// rows (a),(b); col (a,b): removing "a" (position 0) gives (b) with +1
	assert.Equal(t, [][]float64{{-1}, {1}}, denseRows(t, d1))
}

// TestCheckChainComplex_Fixed covers named complexes over every dimension,
// including the empty dimensions past the top.
func TestCheckChainComplex_Fixed(t *testing.T) {
	for name, s := range map[string][][]int{
		"torus":       torus(),
		"rp2":         projectivePlane(),
		"tetrahedron": {{0, 1, 2, 3}},
		"point":       {{0}},
	} {
		c := complexOf(t, s...)
		for i := 1; i <= 5; i++ {
			require.NoError(t, homology.CheckChainComplex(c, i), "%s i=%d", name, i)
		}
	}
	require.NoError(t, homology.CheckChainComplex(complexOf(t), 1))
	require.ErrorIs(t, homology.CheckChainComplex(complexOf(t, []int{0}), 0), homology.ErrInvalidDimension)
}

// TestCheckChainComplex_Random checks ∂∂ = 0 on random complexes.
func TestCheckChainComplex_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 40; trial++ {
		var simplices [][]int
		for k := 0; k < 1+rng.Intn(6); k++ {
			perm := rng.Perm(8)
			simplices = append(simplices, perm[:1+rng.Intn(5)])
		}
		c := complexOf(t, simplices...)
		for i := 1; i <= 5; i++ {
			require.NoError(t, homology.CheckChainComplex(c, i), "trial %d i=%d %v", trial, i, simplices)
		}
	}
}

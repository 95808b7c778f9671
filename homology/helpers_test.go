// SPDX-License-Identifier: MIT
package homology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/simplicial"
)

// complexOf builds a complex or fails the test.
func complexOf(t testing.TB, simplices ...[]int) *simplicial.Complex[int] {
	t.Helper()
	c, err := simplicial.New(simplices...)
	require.NoError(t, err)

	return c
}

// torus is the 7-vertex triangulation of the torus: {i, i+1, i+3} and
// {i, i+2, i+3} mod 7.
func torus() [][]int {
	out := make([][]int, 0, 14)
	for i := 0; i < 7; i++ {
		out = append(out, []int{i, (i + 1) % 7, (i + 3) % 7}, []int{i, (i + 2) % 7, (i + 3) % 7})
	}

	return out
}

// projectivePlane is the 6-vertex triangulation of RP².
func projectivePlane() [][]int {
	return [][]int{
		{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 1},
		{1, 2, 4}, {2, 3, 5}, {3, 4, 1}, {4, 5, 2}, {5, 1, 3},
	}
}

// hollowTetrahedron is the boundary of the 3-simplex, a 2-sphere.
func hollowTetrahedron() [][]int {
	return [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
}

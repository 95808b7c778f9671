// Package lvtopo computes homology of finite simplicial complexes: boundary
// operators, their ranks, Betti numbers and Euler characteristics, plus Čech
// and Vietoris–Rips complexes built from point clouds.
//
// What is inside?
//
//	simplex/     - canonical simplices, face closure and the ordered FaceSet
//	simplicial/  - Complex: import maximal simplices, query faces and f-vectors
//	matrix/      - Dense and Sparse matrices, Mul/Transpose/MatVec, numerical Rank
//	homology/    - signed boundary operators ∂_i, coboundaries, chains, Betti numbers, Euler characteristic
//	geometric/   - distance functions, circumradius, the ε-complex Builder
//	skeleton/    - the 1-skeleton as an undirected graph, BFS and components
//	cmd/lvtopo/  - command-line front end (betti, boundary, cech, rank)
//
// Quick example, a hollow triangle (a circle):
//
//	    0
//	   / \
//	  1───2
//
//	c, _ := simplicial.New([]int{0, 1}, []int{1, 2}, []int{0, 2})
//	b, _ := homology.BettiNumbers(c) // [1 1]
//
// Ranks are computed numerically (SVD through gonum). When a factorization
// fails the rank falls back to the column count and the fallback is reported
// in homology.Report, never hidden.
//
//	go install github.com/katalvlaran/lvtopo/cmd/lvtopo@latest
package lvtopo

// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the rank and product kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtopo/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkR matrix.RankResult
)

// boundaryLike fills an n×n sparse matrix with three ±1 entries per column.
func boundaryLike(b *testing.B, n int, seed int64) *matrix.Sparse {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	s, err := matrix.NewSparse(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for j := 0; j < n; j++ {
		for k := 0; k < 3; k++ {
			v := 1.0
			if rng.Intn(2) == 0 {
				v = -1
			}
			if err = s.Set(rng.Intn(n), j, v); err != nil {
				b.Fatal(err)
			}
		}
	}

	return s
}

func BenchmarkRank(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		m := boundaryLike(b, n, 1337)
		b.Run(fmt.Sprintf("exact/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r, err := matrix.Rank(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = r
			}
		})
		b.Run(fmt.Sprintf("approx/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r, err := matrix.Rank(m, matrix.WithApproximate(1e-9))
				if err != nil {
					b.Fatal(err)
				}
				sinkR = r
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		a := boundaryLike(b, n, 1)
		c := boundaryLike(b, n, 2)
		b.Run(fmt.Sprintf("sparse/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p, err := matrix.Mul(a, c)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = p
			}
		})
		da, dc := a.ToDense(), c.ToDense()
		b.Run(fmt.Sprintf("dense/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p, err := matrix.Mul(da, dc)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = p
			}
		})
	}
}

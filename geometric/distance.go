// SPDX-License-Identifier: MIT

package geometric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DistanceFunc returns the distance between two points of equal dimension.
// Implementations must be symmetric and non-negative.
type DistanceFunc func(a, b []float64) float64

// Euclidean is the L2 distance. It is the default DistanceFunc.
func Euclidean(a, b []float64) float64 { return floats.Distance(a, b, 2) }

// Manhattan is the L1 distance.
func Manhattan(a, b []float64) float64 { return floats.Distance(a, b, 1) }

// Chebyshev is the L∞ distance.
func Chebyshev(a, b []float64) float64 { return floats.Distance(a, b, math.Inf(1)) }

// maxPairwise returns the largest dist over all pairs of points.
func maxPairwise(points [][]float64, dist DistanceFunc) float64 {
	best := 0.0
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if d := dist(points[i], points[j]); d > best {
				best = d
			}
		}
	}

	return best
}

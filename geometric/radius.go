// SPDX-License-Identifier: MIT

// Package geometric - subset radii (membership criteria).
//
// Purpose:
//   - Turn a subset of points into one number compared against ε.
//
// Contract:
//   - Criterion functions never fail. Singular geometry is reported through
//     Radius.Degenerate and recovered locally.

package geometric

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Radius is the outcome of a Criterion.
type Radius struct {
	// Value is compared against ε: the subset is admitted iff Value ≤ ε.
	Value float64
	// Center is the circumcenter when one was solved for (nil otherwise).
	Center []float64
	// Degenerate marks the fallback to half the largest pairwise distance.
	Degenerate bool
}

// Criterion computes the membership radius of a point subset.
// Circumradius and Diameter are the built-in criteria; any function with
// this signature plugs into Builder through WithCriterion.
type Criterion func(points [][]float64, dist DistanceFunc) Radius

var (
	_ Criterion = Circumradius
	_ Criterion = Diameter
)

// machineEpsilon is the float64 unit round-off.
var machineEpsilon = math.Nextafter(1, 2) - 1

// Circumradius returns the radius of the sphere through all points.
//
// Implementation:
//   - s = 1: radius 0, center = the point.
//   - s = 2: half the distance, center = the midpoint.
//   - s ≥ 3: with A_i = P_{i+1} - P_0 and b_i = ½‖A_i‖², the circumcenter
//     offset x satisfies A·x = b. It is solved in the least-squares,
//     minimum-norm sense through the SVD pseudo-inverse; radius = dist(P_0 + x, P_0).
//
// Degeneracy:
//   - The system is singular iff rank(A) < min(s-1, d), with the rank cutoff
//     σ_max·max(s-1, d)·ε_machine. Then Value = ½·max pairwise distance and
//     Degenerate is set.
//
// The linear solve is Euclidean; dist is used for the radius itself and for
// the s = 2 and fallback cases.
//
// Complexity:
//   - Time O(s·d·min(s, d) + s²) for s points in d dimensions.
func Circumradius(points [][]float64, dist DistanceFunc) Radius {
	switch len(points) {
	case 0:
		return Radius{}
	case 1:
		return Radius{Center: append([]float64(nil), points[0]...)}
	case 2:
		mid := make([]float64, len(points[0]))
		floats.AddTo(mid, points[0], points[1])
		floats.Scale(0.5, mid)
		return Radius{Value: dist(points[0], points[1]) / 2, Center: mid}
	}

	p0 := points[0]
	rows, d := len(points)-1, len(p0)
	a := mat.NewDense(rows, d, nil)
	b := mat.NewVecDense(rows, nil)
	diff := make([]float64, d)
	for i := 0; i < rows; i++ {
		floats.SubTo(diff, points[i+1], p0)
		a.SetRow(i, diff)
		b.SetVec(i, 0.5*floats.Dot(diff, diff))
	}

	x, ok := pseudoSolve(a, b, min(rows, d))
	if !ok {
		return Radius{Value: maxPairwise(points, dist) / 2, Degenerate: true}
	}
	center := make([]float64, d)
	floats.AddTo(center, p0, x)

	return Radius{Value: dist(center, p0), Center: center}
}

// pseudoSolve returns the minimum-norm least-squares solution of a·x = b,
// or ok=false when the SVD fails or rank(a) < want.
func pseudoSolve(a *mat.Dense, b *mat.VecDense, want int) ([]float64, bool) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, false
	}
	sv := svd.Values(nil)
	r, c := a.Dims()
	tol := 0.0
	if len(sv) > 0 {
		tol = sv[0] * float64(max(r, c)) * machineEpsilon
	}
	rank := 0
	for _, s := range sv {
		if s > tol {
			rank++
		}
	}
	if rank < want {
		return nil, false
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// x = V · Σ⁺ · Uᵀ · b over the retained singular triplets.
	x := make([]float64, c)
	for k := 0; k < rank; k++ {
		coef := 0.0
		for i := 0; i < r; i++ {
			coef += u.At(i, k) * b.AtVec(i)
		}
		coef /= sv[k]
		for j := 0; j < c; j++ {
			x[j] += coef * v.At(j, k)
		}
	}

	return x, true
}

// Diameter returns the largest pairwise distance (Vietoris–Rips criterion).
// Fewer than two points have diameter 0.
func Diameter(points [][]float64, dist DistanceFunc) Radius {
	return Radius{Value: maxPairwise(points, dist)}
}

// SPDX-License-Identifier: MIT

// Package matrix - numerical rank (exact SVD, randomized estimate, column fallback).
//
// Purpose:
//   - Count independent columns of boundary operators for Betti numbers.
//   - Model the numerical fallback as data (RankResult.Method/Reason), not as
//     a swallowed panic or error, so callers can log and tests can assert it.
//
// Determinism:
//   - Exact path: deterministic given the factorizer.
//   - Approximate path: Gaussian sketch drawn from a PCG source seeded by
//     WithSeed (DefaultSeed otherwise).

package matrix

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// machineEpsilon is the float64 unit round-off used by the default exact cutoff.
var machineEpsilon = math.Nextafter(1, 2) - 1

// RankMethod tells which code path produced a RankResult.
type RankMethod int

const (
	// MethodExact counts singular values of the full matrix.
	MethodExact RankMethod = iota
	// MethodApproximate counts singular values of a randomized sketch.
	MethodApproximate
	// MethodColumnFallback means the exact method failed and the column
	// count was returned instead. It may overstate the rank.
	MethodColumnFallback
)

// String returns a short lowercase name.
func (m RankMethod) String() string {
	switch m {
	case MethodExact:
		return "exact"
	case MethodApproximate:
		return "approximate"
	case MethodColumnFallback:
		return "column-fallback"
	default:
		return "unknown"
	}
}

// RankResult is the outcome of Rank.
type RankResult struct {
	Rank   int
	Method RankMethod
	// Reason holds the factorization error when Method == MethodColumnFallback.
	Reason error
}

// Fallback reports whether the result came from the column-count fallback.
func (r RankResult) Fallback() bool { return r.Method == MethodColumnFallback }

// Factorizer provides singular values in descending order.
type Factorizer interface {
	SingularValues(m Matrix) ([]float64, error)
}

// FactorizerFunc adapts a function to Factorizer.
type FactorizerFunc func(m Matrix) ([]float64, error)

// SingularValues calls f(m).
func (f FactorizerFunc) SingularValues(m Matrix) ([]float64, error) { return f(m) }

// SVDFactorizer computes singular values with gonum's mat.SVD.
type SVDFactorizer struct{}

// SingularValues implements Factorizer. Empty shapes yield no values.
// Returns ErrFactorization when the SVD does not converge.
func (SVDFactorizer) SingularValues(m Matrix) ([]float64, error) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, nil
	}
	var svd mat.SVD
	if ok := svd.Factorize(toGonum(m), mat.SVDNone); !ok {
		return nil, ErrFactorization
	}

	return svd.Values(nil), nil
}

// Rank returns the numerical rank of m.
//
// Implementation:
//   - Stage 1: validate m and options; zero-area shapes return rank 0 (exact).
//   - Stage 2 (exact): singular values from the factorizer; count σ > tol with
//     tol = σ_max·max(r,c)·ε unless WithTolerance was given. A factorizer error
//     yields {Rank: Cols, Method: MethodColumnFallback, Reason: err}.
//   - Stage 2 (approximate): randomized range finder, see estimateRank.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidTolerance (bad options). Numerical failures are
//     never returned as errors.
//
// Complexity:
//   - Exact: O(r·c·min(r,c)). Approximate: O(nnz·k + (r+c)·k²) per sketch width k.
func Rank(m Matrix, opts ...RankOption) (RankResult, error) {
	if err := ValidateNotNil(m); err != nil {
		return RankResult{}, matrixErrorf(opRank, err)
	}
	o, err := gatherRankOptions(opts)
	if err != nil {
		return RankResult{}, matrixErrorf(opRank, err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		method := MethodExact
		if o.approximate {
			method = MethodApproximate
		}
		return RankResult{Rank: 0, Method: method}, nil
	}
	if o.approximate {
		return RankResult{Rank: estimateRank(m, o), Method: MethodApproximate}, nil
	}

	sv, err := o.factorizer.SingularValues(m)
	if err != nil {
		return RankResult{Rank: m.Cols(), Method: MethodColumnFallback, Reason: err}, nil
	}
	tol := o.tol
	if tol < 0 {
		tol = maxOf(sv) * float64(max(m.Rows(), m.Cols())) * machineEpsilon
	}

	return RankResult{Rank: countAbove(sv, tol), Method: MethodExact}, nil
}

// estimateRank is a randomized range finder:
//
//	Y = A·Ω (Ω Gaussian, c×w), Q = orth(Y), B = Qᵀ·A, rank ≈ #{σ(B) > eps·σ_max(B)}.
//
// The sketch width w starts at sketch+oversample and doubles until the estimate
// leaves at least `oversample` spare columns, or w reaches min(r, c) (where
// the sketch captures the whole range and the estimate is exact up to eps).
func estimateRank(a Matrix, o rankOptions) int {
	r, c := a.Rows(), a.Cols()
	limit := min(r, c)
	rng := rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15))

	for target := o.sketch; ; target *= 2 {
		w := min(target+o.oversample, limit)

		omega := mat.NewDense(c, w, nil)
		for i := 0; i < c; i++ {
			for j := 0; j < w; j++ {
				omega.Set(i, j, rng.NormFloat64())
			}
		}

		// Y = A·Ω, walking only the stored entries of A.
		y := mat.NewDense(r, w, nil)
		visit(a, func(i, k int, v float64) bool {
			if v != 0 {
				for j := 0; j < w; j++ {
					y.Set(i, j, y.At(i, j)+v*omega.At(k, j))
				}
			}
			return true
		})

		var qr mat.QR
		qr.Factorize(y)
		var qFull mat.Dense
		qr.QTo(&qFull)
		q := qFull.Slice(0, r, 0, w)

		// B = Qᵀ·A, again from A's stored entries.
		b := mat.NewDense(w, c, nil)
		visit(a, func(i, k int, v float64) bool {
			if v != 0 {
				for t := 0; t < w; t++ {
					b.Set(t, k, b.At(t, k)+v*q.At(i, t))
				}
			}
			return true
		})

		var svd mat.SVD
		est := w // conservative if the small SVD fails
		if svd.Factorize(b, mat.SVDNone) {
			sv := svd.Values(nil)
			est = countAbove(sv, o.eps*maxOf(sv))
		}
		if est+o.oversample <= w || w >= limit {
			return est
		}
	}
}

// toGonum copies m into a gonum dense matrix. m must have non-zero dimensions.
func toGonum(m Matrix) *mat.Dense {
	out := mat.NewDense(m.Rows(), m.Cols(), nil)
	visit(m, func(i, j int, v float64) bool {
		out.Set(i, j, v)
		return true
	})

	return out
}

func maxOf(v []float64) float64 {
	best := 0.0
	for _, x := range v {
		if x > best {
			best = x
		}
	}

	return best
}

// countAbove counts values strictly greater than tol. An all-zero spectrum
// (σ_max = 0, tol = 0) therefore has rank 0.
func countAbove(v []float64, tol float64) int {
	n := 0
	for _, x := range v {
		if x > tol {
			n++
		}
	}

	return n
}

// SPDX-License-Identifier: MIT

// Package homology - ranks, Betti numbers, Euler characteristic.
//
// Determinism:
//   - Exact ranks are deterministic; approximate ranks are deterministic for
//     a fixed matrix.WithSeed (the default seed is fixed).

package homology

import (
	"cmp"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvtopo/matrix"
	"github.com/katalvlaran/lvtopo/simplicial"
)

const (
	opBetti        = "Betti"
	opBettiNumbers = "BettiNumbers"
	opEuler        = "EulerCharacteristic"
	opAnalyze      = "Analyze"
)

// RankFallback records one rank computation that fell back to the column count.
type RankFallback struct {
	Dim    int    `json:"dim" yaml:"dim"`
	Cols   int    `json:"cols" yaml:"cols"`
	Reason string `json:"reason" yaml:"reason"`
}

// Report bundles the invariants of one complex.
type Report struct {
	FVector        []int          `json:"f_vector" yaml:"f_vector"`
	Betti          []int          `json:"betti" yaml:"betti"`
	Euler          int            `json:"euler" yaml:"euler"`
	EulerFromFaces int            `json:"euler_from_faces" yaml:"euler_from_faces"`
	Approximate    bool           `json:"approximate" yaml:"approximate"`
	Fallbacks      []RankFallback `json:"fallbacks,omitempty" yaml:"fallbacks,omitempty"`
}

// ranker computes rank ∂_i on demand and remembers results, so a sweep over
// all dimensions builds every operator once.
type ranker[L cmp.Ordered] struct {
	c         *simplicial.Complex[L]
	o         options
	ranks     map[int]matrix.RankResult
	cols      map[int]int
	fallbacks []RankFallback
}

func newRanker[L cmp.Ordered](c *simplicial.Complex[L], o options) *ranker[L] {
	return &ranker[L]{c: c, o: o, ranks: make(map[int]matrix.RankResult), cols: make(map[int]int)}
}

// rank returns rank ∂_i and ncols(∂_i).
func (r *ranker[L]) rank(i int) (int, int, error) {
	if res, ok := r.ranks[i]; ok {
		return res.Rank, r.cols[i], nil
	}
	m, err := Boundary(r.c, i)
	if err != nil {
		return 0, 0, err
	}
	res, err := matrix.Rank(m, r.o.rank...)
	if err != nil {
		return 0, 0, err
	}
	if res.Fallback() {
		r.o.logger.Warn("rank computation fell back to column count",
			slog.Int("dim", i),
			slog.Int("rows", m.Rows()),
			slog.Int("cols", m.Cols()),
			slog.Any("reason", res.Reason))
		r.fallbacks = append(r.fallbacks, RankFallback{Dim: i, Cols: m.Cols(), Reason: res.Reason.Error()})
	} else {
		r.o.logger.Debug("boundary rank",
			slog.Int("dim", i),
			slog.Int("rows", m.Rows()),
			slog.Int("cols", m.Cols()),
			slog.Int("rank", res.Rank),
			slog.String("method", res.Method.String()))
	}
	r.ranks[i], r.cols[i] = res, m.Cols()

	return res.Rank, m.Cols(), nil
}

// betti evaluates β_i from rank ∂_i and rank ∂_{i+1}. ∂_0 is the
// augmentation map and never enters β_0: its nullity is the vertex count,
// so it is neither built nor factorized.
func (r *ranker[L]) betti(i int) (int, error) {
	var ri, cols int
	if i == 0 {
		cols = r.c.CountFaces(0)
	} else {
		var err error
		if ri, cols, err = r.rank(i); err != nil {
			return 0, err
		}
	}
	next, _, err := r.rank(i + 1)
	if err != nil {
		return 0, err
	}

	return (cols - ri) - next, nil
}

// Betti returns the i-th Betti number of c.
//
// Implementation:
//   - r_i = rank ∂_i (0 when i = 0, where ncols(∂_0) = f_0), r_{i+1} = rank ∂_{i+1}.
//   - β_i = (ncols(∂_i) − r_i) − r_{i+1}, returned without clamping.
//
// Errors:
//   - ErrInvalidDimension (i < 0), ErrMissingFace, matrix.ErrInvalidTolerance
//     (bad rank options). Rank fallbacks are not errors; they are logged.
//
// Complexity:
//   - Two boundary constructions and two rank computations.
func Betti[L cmp.Ordered](c *simplicial.Complex[L], i int, opts ...Option) (int, error) {
	if i < 0 {
		return 0, homologyErrorf(opBetti, fmt.Errorf("i=%d: %w", i, ErrInvalidDimension))
	}
	b, err := newRanker(c, gatherOptions(opts)).betti(i)
	if err != nil {
		return 0, homologyErrorf(opBetti, err)
	}

	return b, nil
}

// BettiNumbers returns β_0..β_dim. An empty complex yields an empty slice.
func BettiNumbers[L cmp.Ordered](c *simplicial.Complex[L], opts ...Option) ([]int, error) {
	out, _, err := bettiSweep(c, gatherOptions(opts))
	if err != nil {
		return nil, homologyErrorf(opBettiNumbers, err)
	}

	return out, nil
}

func bettiSweep[L cmp.Ordered](c *simplicial.Complex[L], o options) ([]int, *ranker[L], error) {
	r := newRanker(c, o)
	top := len(c.FVector()) - 1
	out := make([]int, top+1)
	for k := 0; k <= top; k++ {
		b, err := r.betti(k)
		if err != nil {
			return nil, nil, err
		}
		out[k] = b
	}

	return out, r, nil
}

// EulerCharacteristic returns Σ_{k=0}^{dim} (-1)^k β_k.
//
// Errors:
//   - simplicial.ErrEmptyComplex, plus any Betti error.
func EulerCharacteristic[L cmp.Ordered](c *simplicial.Complex[L], opts ...Option) (int, error) {
	if _, err := c.Dim(); err != nil {
		return 0, homologyErrorf(opEuler, err)
	}
	betti, err := BettiNumbers(c, opts...)
	if err != nil {
		return 0, homologyErrorf(opEuler, err)
	}

	return alternatingSum(betti), nil
}

// EulerFromFaces returns Σ (-1)^k f_k. It needs no linear algebra and equals
// EulerCharacteristic for every well-formed complex (Euler–Poincaré).
// Errors: simplicial.ErrEmptyComplex.
func EulerFromFaces[L cmp.Ordered](c *simplicial.Complex[L]) (int, error) {
	if _, err := c.Dim(); err != nil {
		return 0, homologyErrorf("EulerFromFaces", err)
	}

	return alternatingSum(c.FVector()), nil
}

func alternatingSum(v []int) int {
	sum := 0
	for k, x := range v {
		if k%2 == 0 {
			sum += x
		} else {
			sum -= x
		}
	}

	return sum
}

// Analyze computes the f-vector, Betti numbers and both Euler
// characteristics in one sweep, building each boundary operator once.
// Errors: simplicial.ErrEmptyComplex, plus any Betti error.
func Analyze[L cmp.Ordered](c *simplicial.Complex[L], opts ...Option) (*Report, error) {
	if _, err := c.Dim(); err != nil {
		return nil, homologyErrorf(opAnalyze, err)
	}
	o := gatherOptions(opts)
	betti, r, err := bettiSweep(c, o)
	if err != nil {
		return nil, homologyErrorf(opAnalyze, err)
	}
	fv := c.FVector()

	return &Report{
		FVector:        fv,
		Betti:          betti,
		Euler:          alternatingSum(betti),
		EulerFromFaces: alternatingSum(fv),
		Approximate:    o.approx,
		Fallbacks:      r.fallbacks,
	}, nil
}

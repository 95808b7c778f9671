// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Rank.
// This file defines:
//   - RankOption / rankOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that record invalid values instead of panicking,
//   - gatherRankOptions, which surfaces the first recorded violation.
//
// Design goals:
//   - Deterministic behavior: the randomized estimator is seeded; no global state.
//   - No dead switches: each option changes behavior and is covered by tests.

package matrix

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeed seeds the Gaussian sketch of the approximate estimator.
	DefaultSeed uint64 = 0x5eed

	// DefaultSketchSize is the initial target rank of the randomized sketch.
	// The sketch doubles until it is wider than the estimate plus oversampling.
	DefaultSketchSize = 8

	// DefaultOversample is the number of extra sketch columns beyond the target rank.
	DefaultOversample = 5
)

// RankOption configures Rank.
// Invalid values are recorded and reported by Rank as ErrInvalidTolerance.
type RankOption func(*rankOptions)

type rankOptions struct {
	approximate bool
	eps         float64 // approximate: relative singular-value cutoff
	tol         float64 // exact: absolute cutoff; < 0 means "use the default formula"
	seed        uint64
	sketch      int
	oversample  int
	factorizer  Factorizer
	err         error
}

func defaultRankOptions() rankOptions {
	return rankOptions{
		tol:        -1,
		seed:       DefaultSeed,
		sketch:     DefaultSketchSize,
		oversample: DefaultOversample,
		factorizer: SVDFactorizer{},
	}
}

func gatherRankOptions(opts []RankOption) (rankOptions, error) {
	o := defaultRankOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

func (o *rankOptions) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf(format+": %w", append(args, ErrInvalidTolerance)...)
	}
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WithApproximate switches Rank to the randomized estimator; singular values
// of the sketch at or below eps·σ_max are treated as zero. eps must be finite
// and strictly positive: the sketch carries round-off, so a zero cutoff would
// count every direction.
func WithApproximate(eps float64) RankOption {
	return func(o *rankOptions) {
		if !finiteNonNegative(eps) || eps == 0 {
			o.fail("WithApproximate(%g)", eps)
			return
		}
		o.approximate = true
		o.eps = eps
	}
}

// WithTolerance overrides the exact-rank cutoff: singular values ≤ tol count
// as zero. Without it the cutoff is σ_max · max(rows, cols) · ε_machine.
func WithTolerance(tol float64) RankOption {
	return func(o *rankOptions) {
		if !finiteNonNegative(tol) {
			o.fail("WithTolerance(%g)", tol)
			return
		}
		o.tol = tol
	}
}

// WithSeed fixes the random source of the approximate estimator.
func WithSeed(seed uint64) RankOption {
	return func(o *rankOptions) { o.seed = seed }
}

// WithSketch sets the initial sketch size and oversampling of the
// approximate estimator. size must be ≥ 1 and oversample ≥ 0.
func WithSketch(size, oversample int) RankOption {
	return func(o *rankOptions) {
		if size < 1 || oversample < 0 {
			o.fail("WithSketch(%d,%d)", size, oversample)
			return
		}
		o.sketch, o.oversample = size, oversample
	}
}

// WithFactorizer replaces the singular-value provider used by the exact path.
// Tests use it to force MethodColumnFallback deterministically.
func WithFactorizer(f Factorizer) RankOption {
	return func(o *rankOptions) {
		if f == nil {
			o.fail("WithFactorizer(nil)")
			return
		}
		o.factorizer = f
	}
}

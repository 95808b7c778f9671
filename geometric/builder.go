// SPDX-License-Identifier: MIT

// Package geometric - Builder: validation and subset enumeration.
//
// Determinism:
//   - Subsets are visited by size, then in lexicographic index order
//     (combin.CombinationGenerator), so Simplices() output is reproducible.

package geometric

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/simplicial"
)

const (
	ctxNewBuilder = "NewBuilder"
	ctxSimplices  = "Simplices"
)

// Builder enumerates the admitted simplices of a point cloud.
// Points, labels and ε are copied at construction and never change; build a
// new Builder for new inputs.
type Builder[L cmp.Ordered] struct {
	points [][]float64
	labels []L
	eps    float64
	o      options
}

// Stats describes one enumeration.
type Stats struct {
	// Points is the number of 0-simplices (always all points).
	Points int
	// Inspected counts subsets of size ≥ 2 whose radius was computed.
	Inspected int64
	// Admitted counts inspected subsets with radius ≤ ε.
	Admitted int64
	// Degenerate counts inspected subsets that took the singular fallback.
	Degenerate int64
}

// NewBuilder returns a Builder labelling each point by its index.
// Errors: see NewLabeledBuilder.
func NewBuilder(points [][]float64, eps float64, opts ...Option) (*Builder[int], error) {
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = i
	}

	return NewLabeledBuilder(points, labels, eps, opts...)
}

// NewLabeledBuilder returns a Builder with one label per point.
//
// Implementation:
//   - Stage 1: gather options; the first invalid one is returned.
//   - Stage 2: validate ε, labels and points.
//   - Stage 3: copy points and labels.
//
// Errors:
//   - ErrOptionViolation, ErrInvalidEpsilon, ErrLabelCount, ErrDuplicateLabel,
//     ErrDimensionMismatch, ErrInvalidPoint (all wrapped with "NewBuilder").
func NewLabeledBuilder[L cmp.Ordered](points [][]float64, labels []L, eps float64, opts ...Option) (*Builder[L], error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, geometricErrorf(ctxNewBuilder, o.err)
	}
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return nil, geometricErrorf(ctxNewBuilder, fmt.Errorf("%g: %w", eps, ErrInvalidEpsilon))
	}
	if len(labels) != len(points) {
		return nil, geometricErrorf(ctxNewBuilder, fmt.Errorf("%d labels for %d points: %w", len(labels), len(points), ErrLabelCount))
	}
	sorted := slices.Clone(labels)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, geometricErrorf(ctxNewBuilder, fmt.Errorf("label %v: %w", sorted[i], ErrDuplicateLabel))
		}
	}
	if err := validatePoints(points); err != nil {
		return nil, geometricErrorf(ctxNewBuilder, err)
	}

	cp := make([][]float64, len(points))
	for i, p := range points {
		cp[i] = slices.Clone(p)
	}

	return &Builder[L]{points: cp, labels: slices.Clone(labels), eps: eps, o: o}, nil
}

func validatePoints(points [][]float64) error {
	if len(points) == 0 {
		return nil
	}
	d := len(points[0])
	for i, p := range points {
		if len(p) == 0 || len(p) != d {
			return fmt.Errorf("point %d has dimension %d, want %d > 0: %w", i, len(p), d, ErrDimensionMismatch)
		}
		for _, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("point %d: %w", i, ErrInvalidPoint)
			}
		}
	}

	return nil
}

// Epsilon returns the admission threshold.
func (b *Builder[L]) Epsilon() float64 { return b.eps }

// Len returns the number of points.
func (b *Builder[L]) Len() int { return len(b.points) }

// Labels returns a copy of the point labels.
func (b *Builder[L]) Labels() []L { return slices.Clone(b.labels) }

// Total returns the number of subsets of size ≥ 2 that Simplices inspects.
func (b *Builder[L]) Total() int64 {
	var total int64
	for s := 2; s <= b.maxSize(); s++ {
		total += int64(combin.Binomial(len(b.points), s))
	}

	return total
}

func (b *Builder[L]) maxSize() int {
	if b.o.maxSize == 0 || b.o.maxSize > len(b.points) {
		return len(b.points)
	}

	return b.o.maxSize
}

// Simplices enumerates the generating simplices.
//
// Implementation:
//   - Stage 1: every point as a 0-simplex, in point order.
//   - Stage 2: for s = 2..maxSize and each s-combination of indices, compute
//     the criterion radius; admit the sorted labels when radius ≤ ε.
//
// Errors:
//   - ctx.Err() when the WithContext context is done (partial results dropped).
//
// Complexity:
//   - Time O(Σ_s C(n,s)·s·d²), the scaling limit of the brute-force approach.
func (b *Builder[L]) Simplices() ([]simplex.Simplex[L], *Stats, error) {
	n := len(b.points)
	stats := &Stats{Points: n}
	out := make([]simplex.Simplex[L], 0, n)
	for _, l := range b.labels {
		out = append(out, simplex.Simplex[L]{l})
	}

	total := b.Total()
	subset := make([][]float64, 0, n)
	for s := 2; s <= b.maxSize(); s++ {
		idx := make([]int, s)
		gen := combin.NewCombinationGenerator(n, s)
		for gen.Next() {
			if err := b.o.ctx.Err(); err != nil {
				return nil, nil, geometricErrorf(ctxSimplices, err)
			}
			gen.Combination(idx)
			subset = subset[:0]
			for _, i := range idx {
				subset = append(subset, b.points[i])
			}

			r := b.o.criterion(subset, b.o.dist)
			stats.Inspected++
			if r.Degenerate {
				stats.Degenerate++
				b.o.logger.Debug("degenerate subset, using half its diameter",
					slog.Any("indices", idx), slog.Float64("radius", r.Value))
			}
			if r.Value <= b.eps {
				stats.Admitted++
				labels := make(simplex.Simplex[L], len(idx))
				for j, i := range idx {
					labels[j] = b.labels[i]
				}
				slices.Sort(labels)
				out = append(out, labels)
			}
			b.o.progress(stats.Inspected, total)
		}
	}
	b.o.logger.Debug("geometric enumeration done",
		slog.Int("points", n),
		slog.Float64("epsilon", b.eps),
		slog.Int64("inspected", stats.Inspected),
		slog.Int64("admitted", stats.Admitted),
		slog.Int64("degenerate", stats.Degenerate))

	return out, stats, nil
}

// Complex enumerates the simplices and imports them into a new complex.
func (b *Builder[L]) Complex() (*simplicial.Complex[L], *Stats, error) {
	simplices, stats, err := b.Simplices()
	if err != nil {
		return nil, nil, err
	}
	raw := make([][]L, len(simplices))
	for i, s := range simplices {
		raw[i] = s
	}
	c, err := simplicial.New(raw...)
	if err != nil {
		return nil, nil, err
	}

	return c, stats, nil
}

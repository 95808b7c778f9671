// SPDX-License-Identifier: MIT
package geometric_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/geometric"
	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/simplex"
)

var (
	unitSquare = [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	kite       = [][]float64{{0, 0}, {1, 0}, {0.5, 0.2}, {0.5, 0.4}}
)

func TestNewBuilder_Validation(t *testing.T) {
	for name, tc := range map[string]struct {
		points [][]float64
		eps    float64
		opts   []geometric.Option
		want   error
	}{
		"negative eps":    {unitSquare, -1, nil, geometric.ErrInvalidEpsilon},
		"nan eps":         {unitSquare, math.NaN(), nil, geometric.ErrInvalidEpsilon},
		"inf eps":         {unitSquare, math.Inf(1), nil, geometric.ErrInvalidEpsilon},
		"ragged":          {[][]float64{{0, 0}, {1}}, 1, nil, geometric.ErrDimensionMismatch},
		"zero dimension":  {[][]float64{{}}, 1, nil, geometric.ErrDimensionMismatch},
		"nan coordinate":  {[][]float64{{0, math.NaN()}}, 1, nil, geometric.ErrInvalidPoint},
		"nil distance":    {unitSquare, 1, []geometric.Option{geometric.WithDistance(nil)}, geometric.ErrOptionViolation},
		"nil criterion":   {unitSquare, 1, []geometric.Option{geometric.WithCriterion(nil)}, geometric.ErrOptionViolation},
		"negative size":   {unitSquare, 1, []geometric.Option{geometric.WithMaxSimplexSize(-2)}, geometric.ErrOptionViolation},
	} {
		_, err := geometric.NewBuilder(tc.points, tc.eps, tc.opts...)
		require.ErrorIs(t, err, tc.want, name)
	}

	_, err := geometric.NewLabeledBuilder(unitSquare, []string{"a", "b"}, 1)
	require.ErrorIs(t, err, geometric.ErrLabelCount)
	_, err = geometric.NewLabeledBuilder(unitSquare, []string{"a", "b", "c", "a"}, 1)
	require.ErrorIs(t, err, geometric.ErrDuplicateLabel)
}

func TestBuilder_InputsAreCopied(t *testing.T) {
	pts := [][]float64{{0, 0}, {1, 0}}
	b, err := geometric.NewBuilder(pts, 0.4)
	require.NoError(t, err)
	pts[1][0] = 0.1

	s, _, err := b.Simplices()
	require.NoError(t, err)
	assert.Len(t, s, 2, "the mutated input must not make the edge admissible")
}

func TestBuilder_EmptyAndSingle(t *testing.T) {
	b, err := geometric.NewBuilder(nil, 1)
	require.NoError(t, err)
	s, st, err := b.Simplices()
	require.NoError(t, err)
	assert.Empty(t, s)
	assert.Equal(t, &geometric.Stats{}, st)

	b, err = geometric.NewBuilder([][]float64{{0}}, 0)
	require.NoError(t, err)
	c, _, err := b.Complex()
	require.NoError(t, err)
	betti, err := homology.BettiNumbers(c)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, betti)
}

func TestBuilder_SquareSidesOnly(t *testing.T) {
	b, err := geometric.NewBuilder(unitSquare, 0.5)
	require.NoError(t, err)
	s, st, err := b.Simplices()
	require.NoError(t, err)
	want := []simplex.Simplex[int]{{0}, {1}, {2}, {3}, {0, 1}, {0, 3}, {1, 2}, {2, 3}}
	assert.Equal(t, want, s)
	assert.Equal(t, int64(11), st.Inspected)
	assert.Equal(t, int64(4), st.Admitted)
	assert.Equal(t, int64(11), b.Total())

	c, _, err := b.Complex()
	require.NoError(t, err)
	betti, err := homology.BettiNumbers(c)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, betti)
}

func TestBuilder_SquareCocircularAdmitsEverything(t *testing.T) {
	b, err := geometric.NewBuilder(unitSquare, math.Sqrt2/2+1e-9)
	require.NoError(t, err)
	c, st, err := b.Complex()
	require.NoError(t, err)
	assert.Equal(t, int64(11), st.Admitted)
	assert.True(t, c.HasFace(0, 1, 2, 3), "corners are cocircular: the 4-point subset shares the edge threshold")
	betti, err := homology.BettiNumbers(c)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0, 0}, betti)
}

// TestBuilder_AllEdgesWithoutFullSimplex is the non-cocircular form of the
// square scenario: every pairwise edge is admitted, the 4-point subset is not.
func TestBuilder_AllEdgesWithoutFullSimplex(t *testing.T) {
	b, err := geometric.NewBuilder(kite, 0.505)
	require.NoError(t, err)
	s, _, err := b.Simplices()
	require.NoError(t, err)

	edges := 0
	for _, x := range s {
		switch len(x) {
		case 2:
			edges++
		case 4:
			t.Fatalf("4-point simplex admitted: %v", x)
		}
	}
	assert.Equal(t, 6, edges)
	assert.Contains(t, s, simplex.Simplex[int]{0, 2, 3})
	assert.Contains(t, s, simplex.Simplex[int]{1, 2, 3})
	assert.NotContains(t, s, simplex.Simplex[int]{0, 1, 2})
	assert.NotContains(t, s, simplex.Simplex[int]{0, 1, 3})

	c, _, err := b.Complex()
	require.NoError(t, err)
	rep, err := homology.Analyze(c)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 0}, rep.Betti)
	assert.Zero(t, rep.Euler)
}

func TestBuilder_RipsCriterion(t *testing.T) {
	b, err := geometric.NewBuilder(unitSquare, 1, geometric.WithCriterion(geometric.Diameter))
	require.NoError(t, err)
	c, _, err := b.Complex()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4}, c.FVector())

	b, err = geometric.NewBuilder(unitSquare, 1.5, geometric.WithCriterion(geometric.Diameter))
	require.NoError(t, err)
	c, _, err = b.Complex()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6, 4, 1}, c.FVector())
}

func TestBuilder_MaxSimplexSize(t *testing.T) {
	b, err := geometric.NewBuilder(unitSquare, 10, geometric.WithMaxSimplexSize(2))
	require.NoError(t, err)
	assert.Equal(t, int64(6), b.Total())
	c, _, err := b.Complex()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6}, c.FVector())

	b, err = geometric.NewBuilder(unitSquare, 10, geometric.WithMaxSimplexSize(1))
	require.NoError(t, err)
	s, st, err := b.Simplices()
	require.NoError(t, err)
	assert.Len(t, s, 4)
	assert.Zero(t, st.Inspected)
}

func TestBuilder_LabelsAreSorted(t *testing.T) {
	b, err := geometric.NewLabeledBuilder([][]float64{{0}, {1}, {5}}, []string{"z", "m", "a"}, 0.5)
	require.NoError(t, err)
	s, _, err := b.Simplices()
	require.NoError(t, err)
	assert.Equal(t, []simplex.Simplex[string]{{"z"}, {"m"}, {"a"}, {"m", "z"}}, s)
	assert.Equal(t, []string{"z", "m", "a"}, b.Labels())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 0.5, b.Epsilon())
}

func TestBuilder_DegenerateLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b, err := geometric.NewBuilder([][]float64{{0, 0}, {1, 0}, {2, 0}}, 1, geometric.WithLogger(logger))
	require.NoError(t, err)
	s, st, err := b.Simplices()
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.Degenerate)
	assert.Contains(t, s, simplex.Simplex[int]{0, 1, 2}, "fallback radius 1 ≤ ε")
	assert.Contains(t, buf.String(), "degenerate subset")
}

func TestBuilder_ProgressAndCancel(t *testing.T) {
	var calls, last, total int64
	b, err := geometric.NewBuilder(unitSquare, 1, geometric.WithProgress(func(done, tot int64) {
		calls++
		last, total = done, tot
	}))
	require.NoError(t, err)
	_, _, err = b.Simplices()
	require.NoError(t, err)
	assert.Equal(t, int64(11), calls)
	assert.Equal(t, int64(11), last)
	assert.Equal(t, int64(11), total)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b, err = geometric.NewBuilder(unitSquare, 1, geometric.WithContext(ctx))
	require.NoError(t, err)
	_, _, err = b.Simplices()
	require.ErrorIs(t, err, context.Canceled)
	_, _, err = b.Complex()
	require.ErrorIs(t, err, context.Canceled)
}

// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvtopo/matrix"
)

// RankSuite groups exact, approximate and fallback rank tests.
type RankSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *RankSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(42))
}

// lowRank returns an r×c matrix of rank k built as a sum of k outer products.
func (s *RankSuite) lowRank(r, c, k int) *matrix.Dense {
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
	}
	for t := 0; t < k; t++ {
		u := make([]float64, r)
		v := make([]float64, c)
		for i := range u {
			u[i] = s.rng.NormFloat64()
		}
		for j := range v {
			v[j] = s.rng.NormFloat64()
		}
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				rows[i][j] += u[i] * v[j]
			}
		}
	}

	return dense(s.T(), rows)
}

func (s *RankSuite) TestExact_Boundaries() {
	res, err := matrix.Rank(sparse(s.T(), triangleBoundary1))
	s.Require().NoError(err)
	s.Equal(2, res.Rank)
	s.Equal(matrix.MethodExact, res.Method)
	s.False(res.Fallback())
	s.NoError(res.Reason)

	res, err = matrix.Rank(dense(s.T(), triangleBoundary2))
	s.Require().NoError(err)
	s.Equal(1, res.Rank)
}

func (s *RankSuite) TestExact_ZeroMatrixAndZeroShapes() {
	z, err := matrix.NewSparse(3, 3)
	s.Require().NoError(err)
	res, err := matrix.Rank(z)
	s.Require().NoError(err)
	s.Zero(res.Rank)

	for _, shape := range [][2]int{{1, 0}, {3, 0}, {0, 0}} {
		e, err := matrix.NewSparse(shape[0], shape[1])
		s.Require().NoError(err)
		res, err = matrix.Rank(e)
		s.Require().NoError(err)
		s.Zero(res.Rank)
		s.Equal(matrix.MethodExact, res.Method)

		res, err = matrix.Rank(e, matrix.WithApproximate(1e-8))
		s.Require().NoError(err)
		s.Zero(res.Rank)
		s.Equal(matrix.MethodApproximate, res.Method)
	}
}

func (s *RankSuite) TestExact_LowRankAndTolerance() {
	m := s.lowRank(12, 9, 4)
	res, err := matrix.Rank(m)
	s.Require().NoError(err)
	s.Equal(4, res.Rank)

	res, err = matrix.Rank(m, matrix.WithTolerance(1e6))
	s.Require().NoError(err)
	s.Zero(res.Rank, "a huge absolute cutoff discards every singular value")
}

func (s *RankSuite) TestFallback_ForcedFactorizerFailure() {
	boom := errors.New("no convergence")
	failing := matrix.FactorizerFunc(func(matrix.Matrix) ([]float64, error) { return nil, boom })

	res, err := matrix.Rank(sparse(s.T(), triangleBoundary1), matrix.WithFactorizer(failing))
	s.Require().NoError(err, "numerical failure must not surface as an error")
	s.True(res.Fallback())
	s.Equal(matrix.MethodColumnFallback, res.Method)
	s.Equal(3, res.Rank, "fallback reports the column count and may overstate the true rank 2")
	s.ErrorIs(res.Reason, boom)
}

func (s *RankSuite) TestApproximate_MatchesExact() {
	for _, k := range []int{0, 1, 3, 7, 15} {
		m := s.lowRank(40, 30, k)
		exact, err := matrix.Rank(m)
		s.Require().NoError(err)
		approx, err := matrix.Rank(m, matrix.WithApproximate(1e-9), matrix.WithSeed(uint64(k)+1))
		s.Require().NoError(err)
		s.Equal(matrix.MethodApproximate, approx.Method)
		s.Equal(exact.Rank, approx.Rank, "k=%d", k)
	}
}

func (s *RankSuite) TestApproximate_SmallSketchGrows() {
	m := s.lowRank(30, 30, 20)
	res, err := matrix.Rank(sparseFromDense(s.T(), m), matrix.WithApproximate(1e-9), matrix.WithSketch(1, 1))
	s.Require().NoError(err)
	s.Equal(20, res.Rank)
}

func (s *RankSuite) TestApproximate_DeterministicForSeed() {
	m := s.lowRank(25, 25, 6)
	a, err := matrix.Rank(m, matrix.WithApproximate(1e-3), matrix.WithSeed(9))
	s.Require().NoError(err)
	b, err := matrix.Rank(m, matrix.WithApproximate(1e-3), matrix.WithSeed(9))
	s.Require().NoError(err)
	s.Equal(a, b)
}

func (s *RankSuite) TestInvalidOptions() {
	m := dense(s.T(), triangleBoundary1)
	for name, opt := range map[string]matrix.RankOption{
		"negative eps":  matrix.WithApproximate(-1),
		"zero eps":      matrix.WithApproximate(0),
		"nan eps":       matrix.WithApproximate(math.NaN()),
		"inf tolerance": matrix.WithTolerance(math.Inf(1)),
		"sketch zero":   matrix.WithSketch(0, 2),
		"nil factor":    matrix.WithFactorizer(nil),
	} {
		_, err := matrix.Rank(m, opt)
		s.ErrorIs(err, matrix.ErrInvalidTolerance, name)
	}

	_, err := matrix.Rank(nil)
	s.ErrorIs(err, matrix.ErrNilMatrix)
}

func TestRankSuite(t *testing.T) {
	suite.Run(t, new(RankSuite))
}

func TestRankMethod_String(t *testing.T) {
	assert.Equal(t, "exact", matrix.MethodExact.String())
	assert.Equal(t, "approximate", matrix.MethodApproximate.String())
	assert.Equal(t, "column-fallback", matrix.MethodColumnFallback.String())
	assert.Equal(t, "unknown", matrix.RankMethod(99).String())
}

// sparseFromDense copies d into a Sparse.
func sparseFromDense(t testing.TB, d *matrix.Dense) *matrix.Sparse {
	t.Helper()
	s, err := matrix.NewSparse(d.Rows(), d.Cols())
	require.NoError(t, err)
	d.Do(func(i, j int, v float64) bool {
		require.NoError(t, s.Set(i, j, v))
		return true
	})

	return s
}

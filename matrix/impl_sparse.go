// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (column-oriented) for incidence-like operators.
//
// Purpose:
//   - Hold boundary operators, which carry at most k+1 non-zeros per column,
//     without paying O(rows*cols) memory.
//   - Keep iteration deterministic: columns ascending, rows ascending inside a column.
//   - Allow the legal degenerate shapes 0×n, n×0 and 1×0 that boundary
//     operators of empty dimensions produce.
//
// Complexity quicksheet:
//   - NewSparse: O(cols); At: O(log nnz(col)); Set: O(nnz(col)); Do: O(nnz).

package matrix

import (
	"fmt"
	"math"
	"slices"
)

// sparseEntry is a single stored value inside one column.
type sparseEntry struct {
	row int
	val float64
}

// Sparse is a column-oriented sparse matrix. Only non-zero values are stored;
// Set(i, j, 0) removes an entry.
type Sparse struct {
	r, c int
	cols [][]sparseEntry // cols[j] sorted by row ascending
	nnz  int
}

var (
	_ Matrix  = (*Sparse)(nil)
	_ Visitor = (*Sparse)(nil)
)

func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// NewSparse creates an empty rows×cols sparse matrix. Zero dimensions are
// allowed; negative ones return ErrInvalidDimensions.
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Sparse{r: rows, c: cols, cols: make([][]sparseEntry, cols)}, nil
}

// Rows returns the number of rows.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the number of columns.
func (s *Sparse) Cols() int { return s.c }

// NonZeros returns the number of stored (non-zero) entries.
func (s *Sparse) NonZeros() int { return s.nnz }

func (s *Sparse) check(method string, row, col int) error {
	if row < 0 || row >= s.r || col < 0 || col >= s.c {
		return sparseErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}

func (s *Sparse) find(row, col int) (int, bool) {
	return slices.BinarySearchFunc(s.cols[col], row, func(e sparseEntry, r int) int {
		return e.row - r
	})
}

// At retrieves the element at (row, col); absent entries read as 0.
func (s *Sparse) At(row, col int) (float64, error) {
	if err := s.check(ctxAt, row, col); err != nil {
		return 0, err
	}
	if k, ok := s.find(row, col); ok {
		return s.cols[col][k].val, nil
	}

	return 0, nil
}

// Set assigns v at (row, col). v == 0 deletes the entry. NaN/±Inf are rejected.
func (s *Sparse) Set(row, col int, v float64) error {
	if err := s.check(ctxSet, row, col); err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return sparseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	k, ok := s.find(row, col)
	switch {
	case ok && v == 0:
		s.cols[col] = slices.Delete(s.cols[col], k, k+1)
		s.nnz--
	case ok:
		s.cols[col][k].val = v
	case v != 0:
		s.cols[col] = slices.Insert(s.cols[col], k, sparseEntry{row: row, val: v})
		s.nnz++
	}

	return nil
}

// Clone returns a deep copy.
func (s *Sparse) Clone() Matrix {
	cp := &Sparse{r: s.r, c: s.c, cols: make([][]sparseEntry, s.c), nnz: s.nnz}
	for j, col := range s.cols {
		cp.cols[j] = slices.Clone(col)
	}

	return cp
}

// Do visits stored non-zeros in column-major order (columns ascending, rows
// ascending within a column). Stops early when f returns false.
func (s *Sparse) Do(f func(i, j int, v float64) bool) {
	for j, col := range s.cols {
		for _, e := range col {
			if !f(e.row, j, e.val) {
				return
			}
		}
	}
}

// Column returns copies of the row indices and values stored in column j.
func (s *Sparse) Column(j int) (rows []int, vals []float64, err error) {
	if j < 0 || j >= s.c {
		return nil, nil, sparseErrorf("Column", 0, j, ErrOutOfRange)
	}
	rows = make([]int, len(s.cols[j]))
	vals = make([]float64, len(s.cols[j]))
	for k, e := range s.cols[j] {
		rows[k], vals[k] = e.row, e.val
	}

	return rows, vals, nil
}

// ToDense materializes s as a Dense with the same shape (zero dimensions
// included). Values are identical, so rank results do not change.
func (s *Sparse) ToDense() *Dense {
	d, _ := newDenseZeroOK(s.r, s.c) // shape already validated by NewSparse
	s.Do(func(i, j int, v float64) bool {
		d.data[i*d.c+j] = v
		return true
	})

	return d
}

// String renders the dense form; see Dense.String.
func (s *Sparse) String() string { return s.ToDense().String() }

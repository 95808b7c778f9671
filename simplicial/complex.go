// SPDX-License-Identifier: MIT

// File: complex.go
// Role: Complex type, import and face queries.
//
// Determinism:
//   - NFaces/Simplices/FVector are pure functions of the last import.
//
// Concurrency:
//   - mu guards simplices and faces; readers never see a half-finished Import.

package simplicial

import (
	"cmp"
	"fmt"
	"sync"

	"github.com/katalvlaran/lvtopo/simplex"
)

const (
	ctxImport = "Import"
	ctxDim    = "Dim"
)

// Complex is a finite abstract simplicial complex over labels of type L.
//
// simplices keeps the canonicalized generators in insertion order (duplicates
// kept as given); faces is their closure.
type Complex[L cmp.Ordered] struct {
	mu        sync.RWMutex
	simplices []simplex.Simplex[L]
	faces     *simplex.FaceSet[L]
}

// New builds a complex from the given simplices. Each argument is one simplex
// as a list of labels, in any order:
//
//	c, err := simplicial.New([]int{1, 2, 3}, []int{3, 4})
//
// Errors: see Import.
func New[L cmp.Ordered](simplices ...[]L) (*Complex[L], error) {
	c := &Complex[L]{faces: simplex.NewFaceSet[L]()}
	if err := c.Import(simplices); err != nil {
		return nil, err
	}

	return c, nil
}

// Import replaces the complex contents with simplices.
//
// Implementation:
//   - Stage 1: canonicalize every simplex (sorted copy, duplicate labels rejected).
//   - Stage 2: compute the closure outside the lock.
//   - Stage 3: swap the generator list and face set under the write lock.
//
// Behavior highlights:
//   - An empty (or nil) argument yields an empty complex.
//   - On error the previous contents are kept.
//   - Input slices are never retained or mutated.
//
// Errors:
//   - simplex.ErrInvalidSimplex, wrapped with the offending index.
//
// Complexity:
//   - Time O(Σ 2^k · k log F), Space O(F·k). Exponential in the largest
//     simplex size; the complex has no size limit of its own.
func (c *Complex[L]) Import(simplices [][]L) error {
	canon := make([]simplex.Simplex[L], 0, len(simplices))
	for i, s := range simplices {
		cs, err := simplex.Canonical(s)
		if err != nil {
			return complexErrorf(ctxImport, fmt.Errorf("simplex %d: %w", i, err))
		}
		canon = append(canon, cs)
	}
	faces := simplex.Closure(canon)

	c.mu.Lock()
	c.simplices, c.faces = canon, faces
	c.mu.Unlock()

	return nil
}

// NFaces returns every face of dimension n (n+1 labels) in canonical order.
// n < 0 or n beyond the top dimension yields an empty, non-nil slice.
// The slice is rebuilt on every call; callers may modify it freely.
func (c *Complex[L]) NFaces(n int) []simplex.Simplex[L] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.faces.OfDim(n)
}

// CountFaces returns len(NFaces(n)) without copying.
func (c *Complex[L]) CountFaces(n int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.faces.CountDim(n)
}

// Simplices returns copies of the generating simplices, canonicalized, in
// the order they were imported.
func (c *Complex[L]) Simplices() []simplex.Simplex[L] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]simplex.Simplex[L], len(c.simplices))
	for i, s := range c.simplices {
		out[i] = s.Clone()
	}

	return out
}

// FaceSet returns an independent copy of the face set.
func (c *Complex[L]) FaceSet() *simplex.FaceSet[L] {
	// Copy marks the shared tree copy-on-write, which writes to it.
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.faces.Copy()
}

// HasFace reports whether labels (in any order) form a face of the complex.
func (c *Complex[L]) HasFace(labels ...L) bool {
	s, err := simplex.Canonical(labels)
	if err != nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.faces.Has(s)
}

// Len returns the total number of faces over all dimensions.
func (c *Complex[L]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.faces.Len()
}

// IsEmpty reports whether the complex has no faces.
func (c *Complex[L]) IsEmpty() bool { return c.Len() == 0 }

// Dim returns the largest face dimension. ErrEmptyComplex if there are no faces.
func (c *Complex[L]) Dim() (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d := c.faces.MaxDim()
	if d < 0 {
		return 0, complexErrorf(ctxDim, ErrEmptyComplex)
	}

	return d, nil
}

// FVector returns f_0..f_dim, the number of faces per dimension.
// An empty complex yields an empty slice.
func (c *Complex[L]) FVector() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	top := c.faces.MaxDim()
	out := make([]int, top+1)
	c.faces.Ascend(func(f simplex.Simplex[L]) bool {
		out[f.Dim()]++
		return true
	})

	return out
}

// String summarizes the complex, e.g. "Complex{dim=2 f=[3 3 1]}".
func (c *Complex[L]) String() string {
	fv := c.FVector()

	return fmt.Sprintf("Complex{dim=%d f=%v}", len(fv)-1, fv)
}

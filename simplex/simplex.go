// SPDX-License-Identifier: MIT

package simplex

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxCanonical = "Canonical"
	ctxNew       = "New"
)

// Simplex is an ordered tuple of vertex labels.
// Values produced by New/Canonical are sorted ascending and duplicate-free;
// every function in this package that returns a Simplex returns a fresh slice.
type Simplex[L cmp.Ordered] []L

// New builds a canonical simplex from the given labels.
// Thin alias of Canonical with a variadic signature for literals:
//
//	s, err := simplex.New(2, 0, 1) // (0, 1, 2)
func New[L cmp.Ordered](labels ...L) (Simplex[L], error) {
	s, err := canonical(labels)
	if err != nil {
		return nil, simplexErrorf(ctxNew, err)
	}

	return s, nil
}

// Canonical returns a sorted copy of labels.
//
// Implementation:
//   - Stage 1: reject empty input.
//   - Stage 2: copy and sort ascending (the input slice is never mutated).
//   - Stage 3: scan adjacent pairs; any equality is a repeated label.
//
// Errors:
//   - ErrInvalidSimplex (empty input or repeated label).
//
// Complexity:
//   - Time O(k log k), Space O(k) for k labels.
func Canonical[L cmp.Ordered](labels []L) (Simplex[L], error) {
	s, err := canonical(labels)
	if err != nil {
		return nil, simplexErrorf(ctxCanonical, err)
	}

	return s, nil
}

func canonical[L cmp.Ordered](labels []L) (Simplex[L], error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("empty simplex: %w", ErrInvalidSimplex)
	}
	out := make(Simplex[L], len(labels))
	copy(out, labels)
	slices.Sort(out)
	for i := 1; i < len(out); i++ {
		if out[i] == out[i-1] {
			return nil, fmt.Errorf("label %v repeated in %v: %w", out[i], labels, ErrInvalidSimplex)
		}
	}

	return out, nil
}

// Dim returns the dimension of s (len-1). A single vertex has dimension 0;
// an empty simplex reports -1.
func (s Simplex[L]) Dim() int { return len(s) - 1 }

// Clone returns an independent copy of s.
func (s Simplex[L]) Clone() Simplex[L] {
	if s == nil {
		return nil
	}
	out := make(Simplex[L], len(s))
	copy(out, s)

	return out
}

// IsCanonical reports whether s is non-empty, strictly ascending and
// therefore duplicate-free.
func (s Simplex[L]) IsCanonical() bool {
	if len(s) == 0 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}

	return true
}

// Equal reports whether s and t hold the same labels in the same order.
func (s Simplex[L]) Equal(t Simplex[L]) bool { return slices.Equal(s, t) }

// String renders s as a tuple, e.g. "(0, 1, 2)".
func (s Simplex[L]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(')')

	return b.String()
}

// Compare is the canonical face order: shorter simplices first, then
// lexicographic by labels. It returns -1, 0 or +1.
// FaceSet, boundary-matrix indexing and every sorted listing in this module
// use this single order.
func Compare[L cmp.Ordered](a, b Simplex[L]) int {
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}

	return slices.Compare(a, b)
}

// Facets returns the codimension-1 faces of s, in removal order: the a-th
// result is s with the vertex at position a deleted, for a = 0..Dim().
// The alternating boundary sign of the a-th facet is (-1)^a.
// A 0-simplex has no non-empty facets and yields nil.
//
// Complexity:
//   - Time O(k²), Space O(k²) for k = len(s).
func Facets[L cmp.Ordered](s Simplex[L]) []Simplex[L] {
	if len(s) < 2 {
		return nil
	}
	out := make([]Simplex[L], 0, len(s))
	for a := range s {
		f := make(Simplex[L], 0, len(s)-1)
		f = append(f, s[:a]...)
		f = append(f, s[a+1:]...)
		out = append(out, f)
	}

	return out
}

// Labels returns the sorted, de-duplicated set of labels appearing in any of
// the given simplices.
func Labels[L cmp.Ordered](simplices []Simplex[L]) []L {
	var all []L
	for _, s := range simplices {
		all = append(all, s...)
	}
	slices.Sort(all)

	return slices.Compact(all)
}

// SPDX-License-Identifier: MIT

// Package simplex - face closure & the ordered FaceSet.
//
// Purpose:
//   - Compute the downward closure of a simplex collection (every non-empty subset).
//   - Store it in one deterministic order so that per-dimension listings are stable
//     across calls and processes.
//
// Determinism:
//   - Faces live in a B-tree keyed by (length, labels). No map iteration anywhere.
//
// Complexity quicksheet:
//   - Closure: O(Σ 2^k · k log F) for simplices of size k and F distinct faces.
//   - Has: O(k log F); OfDim(n): O(log F + f_n); Items: O(F).

package simplex

import (
	"cmp"
	"slices"

	"github.com/tidwall/btree"
	"gonum.org/v1/gonum/stat/combin"
)

// faceEntry is the B-tree item. order is len(face); keeping it explicit lets a
// pivot {order: n+1, face: nil} sort before every face of that length without
// needing a minimum label value for L.
type faceEntry[L cmp.Ordered] struct {
	order int
	face  Simplex[L]
}

func faceLess[L cmp.Ordered](a, b faceEntry[L]) bool {
	if a.order != b.order {
		return a.order < b.order
	}

	return slices.Compare(a.face, b.face) < 0
}

// FaceSet is an ordered set of canonical faces.
// The zero value is not usable; build one with NewFaceSet or Closure.
// A FaceSet is not safe for concurrent mutation; owners that share it
// (simplicial.Complex) hand out copies.
type FaceSet[L cmp.Ordered] struct {
	tree *btree.BTreeG[faceEntry[L]]
}

// NewFaceSet returns an empty FaceSet.
func NewFaceSet[L cmp.Ordered]() *FaceSet[L] {
	return &FaceSet[L]{
		tree: btree.NewBTreeGOptions(faceLess[L], btree.Options{NoLocks: true}),
	}
}

// insert adds a canonical face; reports whether it was new.
func (fs *FaceSet[L]) insert(face Simplex[L]) bool {
	_, replaced := fs.tree.Set(faceEntry[L]{order: len(face), face: face})

	return !replaced
}

// Closure computes the face set of simplices: for each simplex of size k it
// emits every subset of size k, k-1, ..., 1, canonicalized, into one set.
//
// Implementation:
//   - Stage 1: sort a copy of each simplex so every subset comes out sorted.
//   - Stage 2: for r = k..1 walk combin.CombinationGenerator(k, r); indices
//     are ascending, so picking them from the sorted copy yields canonical faces.
//   - Stage 3: insert into the B-tree; duplicates collapse.
//
// Behavior highlights:
//   - Empty input yields an empty set; there are no error conditions.
//   - Idempotent: Closure(Closure(S).Items()) equals Closure(S).
//   - Input slices are never mutated.
//
// Complexity:
//   - Time O(Σ 2^k · k log F), Space O(F·k).
func Closure[L cmp.Ordered](simplices []Simplex[L]) *FaceSet[L] {
	fs := NewFaceSet[L]()
	for _, s := range simplices {
		k := len(s)
		if k == 0 {
			continue
		}
		sorted := s.Clone()
		slices.Sort(sorted)
		for r := k; r >= 1; r-- {
			idx := make([]int, r)
			gen := combin.NewCombinationGenerator(k, r)
			for gen.Next() {
				gen.Combination(idx)
				face := make(Simplex[L], r)
				for j, p := range idx {
					face[j] = sorted[p]
				}
				fs.insert(face)
			}
		}
	}

	return fs
}

// Len returns the number of faces.
func (fs *FaceSet[L]) Len() int { return fs.tree.Len() }

// Has reports whether face is a member. face must be canonical; a non-sorted
// tuple is never a member.
func (fs *FaceSet[L]) Has(face Simplex[L]) bool {
	_, ok := fs.tree.Get(faceEntry[L]{order: len(face), face: face})

	return ok
}

// Items returns every face in canonical order (see Compare).
// The returned simplices are copies.
func (fs *FaceSet[L]) Items() []Simplex[L] {
	out := make([]Simplex[L], 0, fs.tree.Len())
	fs.tree.Scan(func(e faceEntry[L]) bool {
		out = append(out, e.face.Clone())
		return true
	})

	return out
}

// Ascend calls fn for every face in canonical order until fn returns false.
// fn must not retain or modify the simplex it receives.
func (fs *FaceSet[L]) Ascend(fn func(face Simplex[L]) bool) {
	fs.tree.Scan(func(e faceEntry[L]) bool { return fn(e.face) })
}

// OfDim returns the faces of dimension n (length n+1) in canonical order.
// Negative n yields an empty (non-nil) slice. Each call builds a fresh slice.
//
// Complexity:
//   - Time O(log F + f_n·k), Space O(f_n·k).
func (fs *FaceSet[L]) OfDim(n int) []Simplex[L] {
	out := make([]Simplex[L], 0)
	if n < 0 {
		return out
	}
	pivot := faceEntry[L]{order: n + 1}
	fs.tree.Ascend(pivot, func(e faceEntry[L]) bool {
		if e.order != n+1 {
			return false
		}
		out = append(out, e.face.Clone())
		return true
	})

	return out
}

// CountDim returns the number of n-dimensional faces without copying them.
func (fs *FaceSet[L]) CountDim(n int) int {
	if n < 0 {
		return 0
	}
	count := 0
	fs.tree.Ascend(faceEntry[L]{order: n + 1}, func(e faceEntry[L]) bool {
		if e.order != n+1 {
			return false
		}
		count++
		return true
	})

	return count
}

// MaxDim returns the largest face dimension, or -1 for an empty set.
func (fs *FaceSet[L]) MaxDim() int {
	e, ok := fs.tree.Max()
	if !ok {
		return -1
	}

	return e.order - 1
}

// Equal reports whether fs and other hold exactly the same faces.
func (fs *FaceSet[L]) Equal(other *FaceSet[L]) bool {
	if other == nil || fs.Len() != other.Len() {
		return false
	}

	return slices.EqualFunc(fs.tree.Items(), other.tree.Items(), func(a, b faceEntry[L]) bool {
		return a.order == b.order && slices.Equal(a.face, b.face)
	})
}

// Copy returns an independent FaceSet with the same faces. Nodes are shared
// copy-on-write, so Copy mutates fs internally and must not run concurrently
// with other calls on fs.
func (fs *FaceSet[L]) Copy() *FaceSet[L] {
	return &FaceSet[L]{tree: fs.tree.Copy()}
}

// IsClosed reports whether every facet of every face is also a member, i.e.
// whether the set satisfies the downward-closure invariant of a simplicial
// complex. Sets built by Closure are always closed.
func (fs *FaceSet[L]) IsClosed() bool {
	closed := true
	fs.tree.Scan(func(e faceEntry[L]) bool {
		for _, f := range Facets(e.face) {
			if !fs.Has(f) {
				closed = false
				return false
			}
		}
		return true
	})

	return closed
}

// SPDX-License-Identifier: MIT

// Package simplex defines the Simplex value type and the face-closure engine
// that turns an arbitrary collection of simplices into the complete, ordered
// set of their faces.
//
// A Simplex is a slice of vertex labels. Labels may be any cmp.Ordered type
// (ints, strings, floats). The canonical form of a simplex is its labels
// sorted ascending with no duplicates; its dimension is len-1.
//
// The face set of a collection is the union of every non-empty subset of every
// simplex, each in canonical form:
//
//	Closure({(1,2,3)}) = {(1) (2) (3) (1,2) (1,3) (2,3) (1,2,3)}
//
// FaceSet keeps faces in a single deterministic order (shorter faces first,
// then lexicographic by labels). That order is what downstream packages use
// as row/column indices of boundary matrices, so it must never depend on map
// iteration or insertion order.
//
// Errors:
//
//	ErrInvalidSimplex - empty simplex, or a simplex that repeats a label.
package simplex

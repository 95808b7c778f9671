// SPDX-License-Identifier: MIT

// Package simplicial holds the abstract simplicial complex: the list of
// generating simplices a caller imported plus the full, closed face set
// derived from them.
//
// A Complex is built in one step (New or Import). Import canonicalizes every
// simplex, replaces the generating list and recomputes the face set through
// simplex.Closure, so the downward-closure invariant holds after every
// successful import and a failed import leaves the previous state untouched.
//
// Per-dimension listings (NFaces) come out in the canonical face order of
// package simplex: shorter faces first, then lexicographic by labels. The
// homology package relies on that order for boundary-matrix indexing.
//
// The 1-skeleton (Vertices, Edges, Skeleton) is the input expected by graph
// renderers; this package only extracts it.
//
// Concurrency:
//
//	All methods are safe for concurrent use. Import and FaceSet take the
//	write lock (the copy-on-write clone touches the tree); everything else
//	takes the read lock and returns copies.
//
// Errors:
//
//	ErrEmptyComplex   - Dim on a complex with no faces.
//	simplex.ErrInvalidSimplex (wrapped) - Import/New with an invalid simplex.
package simplicial

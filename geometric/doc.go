// SPDX-License-Identifier: MIT

// Package geometric builds simplicial complexes from point clouds.
//
// A Builder owns an immutable point set, one label per point, a distance
// function, a threshold ε and a membership Criterion. It inspects every
// subset of the points and keeps those whose criterion radius is ≤ ε:
//
//   - Circumradius (default, Čech style): radius of the smallest sphere
//     through the subset's points, from a least-squares circumcenter solve.
//   - Diameter (Vietoris–Rips style): the largest pairwise distance.
//
// Every point is always a 0-simplex. The admitted simplices (labels sorted)
// feed simplicial.New, which closes them under taking faces.
//
// Scaling
//
//	Enumeration is brute force over all 2^n - 1 non-empty subsets, each with
//	an O(s·d²) solve. This is a deliberate correctness-first construction
//	for small inputs. WithMaxSimplexSize bounds the subset size and
//	WithContext makes long runs cancellable.
//
// Degenerate geometry
//
//	When the circumcenter system is singular (points affinely dependent, e.g.
//	collinear), the radius falls back to half the largest pairwise distance
//	and Radius.Degenerate is set. The builder counts such subsets in
//	Stats.Degenerate and logs them at DEBUG; they are never errors.
//
// Errors:
//
//	ErrInvalidEpsilon    - ε negative, NaN or infinite.
//	ErrDimensionMismatch - points of different (or zero) dimension.
//	ErrInvalidPoint      - a coordinate is NaN or infinite.
//	ErrLabelCount        - len(labels) != len(points).
//	ErrDuplicateLabel    - two points share a label.
//	ErrOptionViolation   - an invalid Option value.
package geometric

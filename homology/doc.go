// SPDX-License-Identifier: MIT

// Package homology computes simplicial homology invariants over the reals:
// signed boundary operators, Betti numbers and the Euler characteristic.
//
// Boundary operators
//
//	∂_i has one row per (i-1)-face and one column per i-face, both in the
//	canonical face order of package simplex. The entry for the facet obtained
//	by deleting the vertex at position a of the column face is (-1)^a.
//	When there are no (i-1)-faces the operator is the augmentation map: a
//	single row of +1 entries (1×f_0 for i = 0, 1×0 above the top dimension).
//
// Betti numbers
//
//	β_i = (ncols(∂_i) - rank ∂_i) - rank ∂_{i+1}, except that the rank of the
//	augmentation map ∂_0 is taken as 0, so β_0 = f_0 - rank ∂_1. Results are
//	not clamped: a negative value reports an inconsistent complex instead of
//	hiding it.
//
// Rank
//
//	Ranks come from matrix.Rank. WithApproxRank switches to the randomized
//	estimator. When the exact method fails, the column count is used and a
//	WARN record goes to the configured *slog.Logger; Analyze also returns
//	those fallbacks in its Report.
//
// Errors:
//
//	ErrMissingFace       - a facet of an i-face is not among the (i-1)-faces.
//	ErrNotChainComplex   - ∂_{i-1}·∂_i has a non-zero entry.
//	ErrInvalidDimension  - negative dimension argument.
//	simplicial.ErrEmptyComplex - Euler characteristic of an empty complex.
package homology

// SPDX-License-Identifier: MIT

// Package matrix provides the small linear-algebra surface used by the
// homology engine: a Matrix interface, a row-major Dense implementation,
// a column-oriented Sparse implementation for boundary operators, a few
// deterministic kernels (Mul, Transpose, MatVec, IsZero) and numerical rank.
//
// Rank comes in two flavours:
//
//   - Exact (default): singular values via gonum's SVD, counted against the
//     usual tolerance σ_max · max(rows, cols) · ε_machine.
//   - Approximate (WithApproximate): a randomized range-finder sketch whose
//     singular values are counted against eps · σ_max. It trades accuracy for
//     speed on large sparse inputs and is documented as approximate.
//
// When the exact method fails numerically, Rank does not error: it returns
// the column count with Method == MethodColumnFallback and the failure in
// RankResult.Reason. This is deliberately permissive (it may overstate the
// rank); callers that care inspect the result instead of catching an error.
//
// Shapes with zero rows or zero columns are legal for Sparse (a boundary
// operator from an empty dimension is 1×0) and always have rank 0.
package matrix

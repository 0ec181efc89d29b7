// SPDX-License-Identifier: MIT

// Package cholesky computes Cholesky factorizations of symmetric / Hermitian
// positive (semi-)definite matrices and the operations derived from them.
//
// Two engines are provided:
//
//   - Factorize / FactorizeInPlace — the full-rank factorization A = RᴴR
//     (Upper) or A = L·Lᴴ (Lower). On a non-positive pivot the returned
//     object reports the 1-based failing index via Info and the call returns
//     ErrNotPositiveDefinite.
//   - FactorizePivoted / FactorizePivotedInPlace — the rank-revealing variant
//     with diagonal-maximum pivoting. Early termination below the tolerance
//     is not an error: the object carries the numerical Rank and the
//     permutation, and RequireFullRank upgrades deficiency to an error.
//
// Factorization objects expose lazy triangular views (UpperFactor /
// LowerFactor — whichever triangle was not stored is served as a
// conjugate-transpose view without copying), derived operations (Solve,
// SolveVec, Inverse, Det, LogDet) and in-place rank-1 maintenance
// (Update / Downdate) in O(n²) per call.
//
// Element types: every entry point is generic over matrix.Scalar (float64 or
// complex128). float64 factorizations and solves delegate to gonum's LAPACK
// implementation; complex128 always runs the portable scalar kernels. Both
// strategies implement the identical mathematical contract.
//
// All algorithms are synchronous, in-place sequential passes; the destructive
// entry points take exclusive ownership of the input buffer for the call's
// duration. Concurrent factorizations need distinct buffers.
package cholesky

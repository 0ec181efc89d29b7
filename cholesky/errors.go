// SPDX-License-Identifier: MIT
// Package cholesky: sentinel error set (unified, consistent).
// All engines and derived operations return these sentinels, wrapped with
// operation context at the facade via fmt.Errorf("Op: %w", ErrX); tests and
// callers match them with errors.Is. Dimension and nil-argument violations
// reuse the matrix package sentinels (matrix.ErrDimensionMismatch,
// matrix.ErrNonSquare, matrix.ErrNilMatrix).

package cholesky

import "errors"

var (
	// ErrNotPositiveDefinite is returned when an elimination step meets a
	// non-positive pivot. The factorization object's Info() carries the
	// 1-based index of the failing pivot; its contents past that pivot are
	// unspecified and must not be used.
	ErrNotPositiveDefinite = errors.New("cholesky: matrix is not positive definite")

	// ErrRankDeficient is returned by operations that require a full-rank
	// pivoted factorization (RequireFullRank, Solve, LogDet) when Rank() < n.
	// Rank deficiency by itself is NOT an error: FactorizePivoted reports it
	// through Rank and Info only.
	ErrRankDeficient = errors.New("cholesky: factorization is rank deficient")

	// ErrInvalidDowndate signals that a hyperbolic downdate step would need
	// |s| ≥ 1, proving A − vvᴴ is not positive definite. The factorization is
	// invalidated (Info reports the failing step) since continuing would
	// produce a meaningless factor.
	ErrInvalidDowndate = errors.New("cholesky: downdate would make the matrix indefinite")

	// ErrSingularPivot is returned by triangular solves that meet an exactly
	// zero diagonal entry, instead of silently producing Inf/NaN.
	ErrSingularPivot = errors.New("cholesky: zero diagonal entry in triangular solve")
)

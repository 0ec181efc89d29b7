// SPDX-License-Identifier: MIT

// Package cholesky: unpivoted engine facades.
//
// Two entry points with explicit ownership semantics (separate names, not a
// boolean flag):
//   - Factorize        — copies the input, then runs the destructive core.
//   - FactorizeInPlace — aliases the caller's buffer; the caller relinquishes
//     exclusive access to it for the lifetime of the factorization.
//
// Strategy selection: Factorize on float64 delegates to the accelerated
// LAPACK primitive; when that path reports failure, the exact failing pivot
// is recovered by re-running the scalar kernel on a fresh copy (the wrapper
// hides LAPACK's info code). FactorizeInPlace always runs the scalar kernel:
// it cannot retain a pristine copy, and the scalar kernel guarantees both the
// exact failure index and the documented partial-state invariant.
package cholesky

import (
	"fmt"

	"github.com/katalvlaran/lvlchol/matrix"
)

// Factorize computes the Cholesky factorization of the uplo triangle of the
// square matrix a, on a private copy; a is left untouched.
//
// Returns the factorization and nil on success. When a is found not positive
// definite, the partial factorization (Info() = failing 1-based pivot) is
// returned together with an error matching ErrNotPositiveDefinite.
// Validation failures (nil, non-square) return a nil object.
// Complexity: O(n³) time, O(n²) memory for the copy.
func Factorize[T matrix.Scalar](a *matrix.Dense[T], uplo Triangle, opts ...Option) (*Factorization[T], error) {
	// Stage 1: Validate.
	mustValidTriangle(uplo)
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("Factorize: %w", err)
	}
	opt := gatherOptions(opts...)

	// Stage 2: Execute on a private copy, accelerated when possible.
	work := a.Clone()
	if !opt.forceGeneric {
		if ok, handled := lapackPotrf(work, uplo); handled {
			if ok {
				return &Factorization[T]{factors: work, uplo: uplo}, nil
			}
			// The accelerated path wrecked work without telling us where it
			// failed; locate the pivot with the scalar kernel on a new copy.
			work = a.Clone()
		}
	}

	// Stage 3: Portable kernel (fallback, forced, or failure localization).
	f := &Factorization[T]{factors: work, uplo: uplo}
	f.info = scalarKernel(work, uplo)
	if f.info != 0 {
		return f, fmt.Errorf("Factorize: pivot %d: %w", f.info, ErrNotPositiveDefinite)
	}

	return f, nil
}

// FactorizeInPlace computes the Cholesky factorization destructively inside
// a's own buffer, which the returned object aliases. No concurrent readers
// or writers of a may overlap with the call or with later use of the result.
//
// Error contract is identical to Factorize. This entry always runs the
// portable scalar kernel; see the package file comment for why.
// Complexity: O(n³) time, O(1) extra memory.
func FactorizeInPlace[T matrix.Scalar](a *matrix.Dense[T], uplo Triangle, opts ...Option) (*Factorization[T], error) {
	mustValidTriangle(uplo)
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("FactorizeInPlace: %w", err)
	}
	_ = gatherOptions(opts...) // accepted for signature symmetry; no accelerated path here

	f := &Factorization[T]{factors: a, uplo: uplo}
	f.info = scalarKernel(a, uplo)
	if f.info != 0 {
		return f, fmt.Errorf("FactorizeInPlace: pivot %d: %w", f.info, ErrNotPositiveDefinite)
	}

	return f, nil
}

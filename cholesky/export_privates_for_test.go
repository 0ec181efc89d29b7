// SPDX-License-Identifier: MIT

package cholesky

import "github.com/katalvlaran/lvlchol/matrix"

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose UNEXPORTED kernels (symmetric swap, Givens, pivot step) to
//     cholesky_test ONLY, enabling white-box property tests — notably
//     "swap twice is the identity" — without widening the prod API.
//
// Provided Surface:
//   - Exported* instantiated function values: thin pass-throughs.
//   - NewFactorizationForTest: builds a Factorization around arbitrary
//     factors, used to stage states (zero diagonals) the engines never emit.
//   - Panic message exports to avoid "magic strings" in tests.

var (
	// ExportedSymmetricSwapF exposes symmetricSwap[float64] for white-box tests.
	ExportedSymmetricSwapF = symmetricSwap[float64]
	// ExportedSymmetricSwapC exposes symmetricSwap[complex128] for white-box tests.
	ExportedSymmetricSwapC = symmetricSwap[complex128]

	ExportedGivensF = givens[float64]
	ExportedGivensC = givens[complex128]

	ExportedPivotRootF = pivotRoot[float64]
	ExportedPivotRootC = pivotRoot[complex128]
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicBadTriangle_TestOnly = panicBadTriangle
	PanicTolNaN_TestOnly      = panicTolNaN
)

// NewFactorizationForTest wraps factors as a Factorization without running
// any engine. Test staging only; no validation is performed.
func NewFactorizationForTest[T matrix.Scalar](factors *matrix.Dense[T], uplo Triangle, info int) *Factorization[T] {
	return &Factorization[T]{factors: factors, uplo: uplo, info: info}
}

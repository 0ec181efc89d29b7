// SPDX-License-Identifier: MIT

package cholesky

import (
	"math"

	"github.com/katalvlaran/lvlchol/matrix"
)

// pivotRoot performs the elementary per-pivot step shared by every engine:
// given a pivot value x already reduced by its accumulated cross terms,
// return its square root and whether the pivot is acceptable.
//
// Rules (the scalar base case of the whole factorization):
//   - real(x) == 0          → (0, false): a zero pivot is never acceptable.
//   - real(x) != |x|        → (sqrt(|real(x)|), false): for reals this means
//     x < 0; for complex values it additionally detects a non-real diagonal,
//     i.e. a violated Hermitian assumption at this entry.
//   - otherwise             → (sqrt(real(x)), true).
//
// pivotRoot never panics; it signals failure through the returned flag and
// leaves reporting policy to the caller.
// Complexity: O(1).
func pivotRoot[T matrix.Scalar](x T) (T, bool) {
	re := matrix.Re(x)
	if re == 0 {
		var zero T
		return zero, false
	}
	root := math.Sqrt(math.Abs(re))

	return matrix.FromReal[T](root), re == matrix.Abs(x)
}

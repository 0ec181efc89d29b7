// SPDX-License-Identifier: MIT

package cholesky

import (
	"math"

	"github.com/katalvlaran/lvlchol/matrix"
)

// givens builds the 2×2 unitary rotation [[c, s], [-conj(s), c]] (c real)
// that maps the pair (a, b) onto (r, 0), with r chosen so that
// |a|² + |b|² = |r|². When a is real and non-negative — always the case for
// the diagonal of a valid Cholesky factor — r is real and non-negative too.
//
// Zero handling: (0, 0) → identity with r = 0; (0, b) → a pure swap with
// r = |b|. Complexity: O(1).
func givens[T matrix.Scalar](a, b T) (c float64, s, r T) {
	var zero T
	if b == zero {
		return 1, zero, a
	}
	if a == zero {
		bAbs := matrix.Abs(b)
		return 0, matrix.Conj(b) / matrix.FromReal[T](bAbs), matrix.FromReal[T](bAbs)
	}

	aAbs := matrix.Abs(a)
	h := math.Hypot(aAbs, matrix.Abs(b))
	alpha := a / matrix.FromReal[T](aAbs) // phase of a; 1 for positive reals
	c = aAbs / h
	s = alpha * matrix.Conj(b) / matrix.FromReal[T](h)
	r = alpha * matrix.FromReal[T](h)

	return c, s, r
}

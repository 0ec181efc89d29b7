// SPDX-License-Identifier: MIT

// Package cholesky: symmetric swap on a half-stored matrix.
//
// The pivoted engine permutes rows/columns k ↔ q of a matrix of which only
// one triangle is stored. The swap is NOT a plain element exchange: the
// segment of the stored triangle that straddles the two indices changes
// sides of the diagonal, so its entries trade places with their conjugates,
// and the (k,q) entry itself maps to its own conjugate. Four segments with
// distinct rules result (before k / between / the corner / past q), for each
// storage side. This holds for both the already-finalized and the untouched
// region of a partially factored matrix, which is exactly why the pivoted
// engine can call it at any step.
//
// The swap is an involution: applying it twice restores the triangle.
package cholesky

import "github.com/katalvlaran/lvlchol/matrix"

// symmetricSwap exchanges rows/columns k and q of the Hermitian matrix whose
// uplo triangle is stored in the flat row-major slice d (stride n), touching
// only stored entries. k == q is a no-op; the order of k and q is free.
// Complexity: O(n).
func symmetricSwap[T matrix.Scalar](d []T, n int, uplo Triangle, k, q int) {
	if k == q {
		return
	}
	if k > q {
		k, q = q, k
	}

	// Diagonal entries exchange directly (they stay on the diagonal).
	d[k*n+k], d[q*n+q] = d[q*n+q], d[k*n+k]

	var idx int
	var tmp T
	if uplo == Upper {
		// Segment 1: rows above k — columns k and q both stored, plain swap.
		for idx = 0; idx < k; idx++ {
			d[idx*n+k], d[idx*n+q] = d[idx*n+q], d[idx*n+k]
		}
		// Segment 2: strictly between k and q — (k,j) trades with (j,q),
		// crossing the diagonal, hence conjugated both ways.
		for idx = k + 1; idx < q; idx++ {
			tmp = d[k*n+idx]
			d[k*n+idx] = matrix.Conj(d[idx*n+q])
			d[idx*n+q] = matrix.Conj(tmp)
		}
		// Segment 3: the corner (k,q) maps onto (q,k) — its own conjugate.
		d[k*n+q] = matrix.Conj(d[k*n+q])
		// Segment 4: columns past q — rows k and q both stored, plain swap.
		for idx = q + 1; idx < n; idx++ {
			d[k*n+idx], d[q*n+idx] = d[q*n+idx], d[k*n+idx]
		}

		return
	}

	// Lower storage: the transpose-mirrored segments.
	for idx = 0; idx < k; idx++ {
		d[k*n+idx], d[q*n+idx] = d[q*n+idx], d[k*n+idx]
	}
	for idx = k + 1; idx < q; idx++ {
		tmp = d[idx*n+k]
		d[idx*n+k] = matrix.Conj(d[q*n+idx])
		d[q*n+idx] = matrix.Conj(tmp)
	}
	d[q*n+k] = matrix.Conj(d[q*n+k])
	for idx = q + 1; idx < n; idx++ {
		d[idx*n+k], d[idx*n+q] = d[idx*n+q], d[idx*n+k]
	}
}

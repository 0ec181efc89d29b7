// SPDX-License-Identifier: MIT

// Package cholesky: portable scalar elimination kernels.
//
// Purpose:
//   - Implement the generic (any Scalar element type) strategy of the
//     unpivoted engine: a left-looking, column-by-column elimination whose
//     base case is pivotRoot.
//   - Stay bit-for-bit faithful to the LAPACK/LINPACK contract: on failure
//     at pivot k the leading (k-1)×(k-1) factor is complete and valid, the
//     rest of the triangle is partially updated and meaningless.
//
// Determinism:
//   - Fixed loop orders (k outer, i/j inner); no data-dependent reordering.
//
// Complexity:
//   - O(n³) time, O(1) extra memory; strictly in-place on the flat slice.
package cholesky

import "github.com/katalvlaran/lvlchol/matrix"

// scalarKernel factors the uplo triangle of the n×n matrix held in m,
// in place, returning 0 on success or the 1-based index of the first
// non-positive pivot.
func scalarKernel[T matrix.Scalar](m *matrix.Dense[T], uplo Triangle) int {
	n := m.Rows()
	d := m.Data() // row-major, stride n
	if uplo == Upper {
		return upperScalarKernel(d, n)
	}

	return lowerScalarKernel(d, n)
}

// upperScalarKernel produces R with A = RᴴR in the upper triangle of d.
//
// Step k (0-based):
//
//	pivot  = d[k,k] − Σ_{i<k} |d[i,k]|²               (Schur-complement diagonal)
//	d[k,k] = sqrt(pivot)                              (fails if pivot ≤ 0 or non-real)
//	d[k,j] = (d[k,j] − Σ_{i<k} conj(d[i,k])·d[i,j]) / d[k,k]   for j > k
func upperScalarKernel[T matrix.Scalar](d []T, n int) int {
	var k, i, j int
	var acc float64
	var sum, root T
	var ok bool
	for k = 0; k < n; k++ {
		// Reduce the diagonal by the Hermitian inner product of column k
		// restricted to the already-finalized rows.
		acc = 0
		for i = 0; i < k; i++ {
			acc += matrix.AbsSq(d[i*n+k])
		}
		root, ok = pivotRoot(d[k*n+k] - matrix.FromReal[T](acc))
		if !ok {
			return k + 1 // 1-based failing pivot; triangle left partially updated
		}
		d[k*n+k] = root

		// Finalize row k to the right of the diagonal.
		for j = k + 1; j < n; j++ {
			sum = d[k*n+j]
			for i = 0; i < k; i++ {
				sum -= matrix.Conj(d[i*n+k]) * d[i*n+j]
			}
			d[k*n+j] = sum / root // root is real, conj(root) == root
		}
	}

	return 0
}

// lowerScalarKernel is the transpose-mirrored analogue producing L with
// A = L·Lᴴ in the lower triangle of d.
func lowerScalarKernel[T matrix.Scalar](d []T, n int) int {
	var k, i, j int
	var acc float64
	var sum, root T
	var ok bool
	for k = 0; k < n; k++ {
		acc = 0
		for j = 0; j < k; j++ {
			acc += matrix.AbsSq(d[k*n+j])
		}
		root, ok = pivotRoot(d[k*n+k] - matrix.FromReal[T](acc))
		if !ok {
			return k + 1
		}
		d[k*n+k] = root

		// Finalize column k below the diagonal.
		for i = k + 1; i < n; i++ {
			sum = d[i*n+k]
			for j = 0; j < k; j++ {
				sum -= d[i*n+j] * matrix.Conj(d[k*n+j])
			}
			d[i*n+k] = sum / root
		}
	}

	return 0
}

// SPDX-License-Identifier: MIT

// Package cholesky: the factorization data model.
//
// A Factorization owns one square matrix holding the triangular factor in
// its uplo triangle (the opposite triangle is unspecified), plus the info
// code. Both logical triangles are always obtainable: the unrequested one is
// served as a lazy conjugate-transpose view, never as a copy, preserving the
// single-buffer ownership invariant.
package cholesky

import (
	"fmt"

	"github.com/katalvlaran/lvlchol/matrix"
)

// Factorization is the result of the unpivoted engine: factors holds R
// (uplo == Upper, A ≈ RᴴR) or L (uplo == Lower, A ≈ L·Lᴴ); info is 0 on
// success, else the 1-based index of the first pivot at which the matrix
// failed to be positive definite.
//
// A Factorization is immutable in its logical content after creation, except
// under Update/Downdate, which replace it in place with the factorization of
// A ± vvᴴ.
type Factorization[T matrix.Scalar] struct {
	factors *matrix.Dense[T] // owned (or aliased, for the InPlace variants)
	uplo    Triangle
	info    int
}

// Size returns the order n of the factored matrix.
func (f *Factorization[T]) Size() int { return f.factors.Rows() }

// Uplo returns which triangle of the backing matrix holds the factor.
func (f *Factorization[T]) Uplo() Triangle { return f.uplo }

// Info returns 0 for a successful factorization, else the 1-based index of
// the first non-positive pivot. On failure the leading (Info-1)×(Info-1)
// principal block is positive definite and fully factored; everything at and
// past the failing pivot is unspecified.
func (f *Factorization[T]) Info() int { return f.info }

// OK reports whether the factorization completed successfully.
func (f *Factorization[T]) OK() bool { return f.info == 0 }

// Clone returns an independent deep copy, so that destructive operations
// (Update, Downdate) can be applied without losing the original.
func (f *Factorization[T]) Clone() *Factorization[T] {
	return &Factorization[T]{factors: f.factors.Clone(), uplo: f.uplo, info: f.info}
}

// UpperFactor returns the read-only view of R with A ≈ RᴴR.
// When the stored triangle is Lower, entries are served as conj(L[j,i])
// on the fly — no data is copied.
func (f *Factorization[T]) UpperFactor() Triangular[T] {
	return Triangular[T]{src: f.factors, stored: f.uplo, uplo: Upper}
}

// LowerFactor returns the read-only view of L with A ≈ L·Lᴴ; the mirror of
// UpperFactor.
func (f *Factorization[T]) LowerFactor() Triangular[T] {
	return Triangular[T]{src: f.factors, stored: f.uplo, uplo: Lower}
}

// diag returns the k-th diagonal entry of the factor as a real value.
// Diagonals of a valid factor are real and non-negative by construction.
func (f *Factorization[T]) diag(k int) float64 {
	n := f.factors.Cols()

	return matrix.Re(f.factors.Data()[k*n+k])
}

// Reconstruct multiplies the factor back into the full Hermitian matrix it
// represents (RᴴR or L·Lᴴ), materializing both triangles.
// Primarily a verification aid; costs O(n³) time and a fresh n×n allocation.
// Returns ErrNotPositiveDefinite when the factorization did not succeed.
func (f *Factorization[T]) Reconstruct() (*matrix.Dense[T], error) {
	if !f.OK() {
		return nil, fmt.Errorf("Reconstruct: pivot %d: %w", f.info, ErrNotPositiveDefinite)
	}

	return reconstruct(f.factors, f.uplo, f.Size()), nil
}

// reconstruct forms the product over the leading rank rows/cols of the stored
// factor. rank == n reproduces the full-rank case.
func reconstruct[T matrix.Scalar](factors *matrix.Dense[T], uplo Triangle, rank int) *matrix.Dense[T] {
	n := factors.Rows()
	d := factors.Data()
	out, _ := matrix.NewDense[T](n, n) // n ≥ 1 by construction
	o := out.Data()

	var i, j, k, lim int
	var sum T
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = matrix.FromReal[T](0)
			// Only the leading min(i,j)+1 factor rows/cols contribute,
			// capped at rank for the pivoted, early-stopped case.
			lim = i + 1
			if lim > rank {
				lim = rank
			}
			if uplo == Upper {
				// (RᴴR)[i,j] = Σ_k conj(R[k,i])·R[k,j], k ≤ min(i,j)
				for k = 0; k < lim; k++ {
					sum += matrix.Conj(d[k*n+i]) * d[k*n+j]
				}
			} else {
				// (L·Lᴴ)[i,j] = Σ_k L[i,k]·conj(L[j,k]), k ≤ min(i,j)
				for k = 0; k < lim; k++ {
					sum += d[i*n+k] * matrix.Conj(d[j*n+k])
				}
			}
			o[i*n+j] = sum
			o[j*n+i] = matrix.Conj(sum)
		}
	}

	return out
}

// Triangular is a read-only triangular view over a factorization's backing
// matrix. When the requested triangle differs from the stored one, At serves
// the conjugate-transposed entry, so UpperFactor and LowerFactor are always
// exact Hermitian adjoints of each other regardless of the storage side.
type Triangular[T matrix.Scalar] struct {
	src    *matrix.Dense[T]
	stored Triangle // triangle actually held in src
	uplo   Triangle // triangle this view presents
}

// Rows returns the view's row count.
func (t Triangular[T]) Rows() int { return t.src.Rows() }

// Cols returns the view's column count.
func (t Triangular[T]) Cols() int { return t.src.Cols() }

// At returns the (i,j) entry of the presented triangle; entries on the other
// side of the diagonal are structurally zero. Returns matrix.ErrOutOfRange
// for invalid indices.
func (t Triangular[T]) At(i, j int) (T, error) {
	n := t.src.Rows()
	if i < 0 || i >= n || j < 0 || j >= n {
		var zero T
		return zero, fmt.Errorf("Triangular.At(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	// Structural zero outside the presented triangle.
	if (t.uplo == Upper && i > j) || (t.uplo == Lower && i < j) {
		var zero T
		return zero, nil
	}
	if t.uplo == t.stored {
		return t.src.Data()[i*n+j], nil
	}

	// Mirror into the stored triangle and conjugate.
	return matrix.Conj(t.src.Data()[j*n+i]), nil
}

// Dense materializes the view into a fresh Dense matrix, zero-filled outside
// the triangle. Complexity: O(n²).
func (t Triangular[T]) Dense() *matrix.Dense[T] {
	n := t.src.Rows()
	out, _ := matrix.NewDense[T](n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ := t.At(i, j) // indices in range by construction
			_ = out.Set(i, j, v)
		}
	}

	return out
}

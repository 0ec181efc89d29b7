// SPDX-License-Identifier: MIT

// Package cholesky: accelerated float64 strategy.
//
// The element-type dispatch is resolved here: when the backing slice is
// []float64 the heavy loops are delegated to gonum's LAPACK implementation
// (Potrf for the factorization, Potrs for the two triangular solves), which
// carries the identical mathematical contract as the scalar kernels. Any
// other element type reports "not handled" and the caller falls back to the
// portable kernel.
package cholesky

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/lvlchol/matrix"
)

// blasUplo maps the package Triangle tag onto the BLAS constant.
func blasUplo(uplo Triangle) blas.Uplo {
	if uplo == Lower {
		return blas.Lower
	}

	return blas.Upper
}

// lapackPotrf attempts the accelerated factorization of the uplo triangle of
// m, in place. handled is false when the element type has no LAPACK path and
// nothing was touched; otherwise ok reports positive definiteness exactly as
// the scalar kernel does (on !ok the buffer contents are unspecified).
func lapackPotrf[T matrix.Scalar](m *matrix.Dense[T], uplo Triangle) (ok, handled bool) {
	data, isF64 := any(m.Data()).([]float64)
	if !isF64 {
		return false, false
	}
	n := m.Rows()
	sym := blas64.Symmetric{
		Uplo:   blasUplo(uplo),
		N:      n,
		Data:   data,
		Stride: n,
	}

	_, ok = lapack64.Potrf(sym)

	return ok, true
}

// lapackPotrs attempts the accelerated solve of A·X = B given the factored
// triangle in f, overwriting the right-hand sides in x. handled is false when
// the element type has no LAPACK path. The caller is responsible for the
// zero-diagonal guard; LAPACK would divide through silently.
func lapackPotrs[T matrix.Scalar](f *Factorization[T], x *matrix.Dense[T]) (handled bool) {
	fd, isF64 := any(f.factors.Data()).([]float64)
	if !isF64 {
		return false
	}
	xd := any(x.Data()).([]float64)
	n := f.Size()
	tri := blas64.Triangular{
		Uplo:   blasUplo(f.uplo),
		Diag:   blas.NonUnit,
		N:      n,
		Data:   fd,
		Stride: n,
	}
	rhs := blas64.General{
		Rows:   n,
		Cols:   x.Cols(),
		Data:   xd,
		Stride: x.Cols(),
	}
	lapack64.Potrs(tri, rhs)

	return true
}

// SPDX-License-Identifier: MIT
// Package cholesky_test: shared fixtures and comparison helpers.
package cholesky_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlchol/cholesky"
	"github.com/katalvlaran/lvlchol/matrix"
)

// mustDense builds a Dense from row-major data, failing the test on error.
func mustDense[T matrix.Scalar](t *testing.T, n int, data []T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseFrom(n, n, data)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", n, n, err)
	}

	return m
}

// randPD returns a random well-conditioned symmetric positive definite
// float64 matrix: GᵀG plus n on the diagonal.
func randPD(rng *rand.Rand, n int) *matrix.Dense[float64] {
	g := make([]float64, n*n)
	for i := range g {
		g[i] = rng.NormFloat64()
	}
	a, _ := matrix.NewDense[float64](n, n)
	d := a.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s := 0.0
			for k := 0; k < n; k++ {
				s += g[k*n+i] * g[k*n+j]
			}
			d[i*n+j] = s
		}
		d[i*n+i] += float64(n)
	}

	return a
}

// randHermitianPD is the complex128 analogue of randPD: GᴴG + n·I.
func randHermitianPD(rng *rand.Rand, n int) *matrix.Dense[complex128] {
	g := make([]complex128, n*n)
	for i := range g {
		g[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	a, _ := matrix.NewDense[complex128](n, n)
	d := a.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s := complex(0, 0)
			for k := 0; k < n; k++ {
				s += matrix.Conj(g[k*n+i]) * g[k*n+j]
			}
			d[i*n+j] = s
		}
		d[i*n+i] += complex(float64(n), 0)
	}

	return a
}

// randVec returns a length-n random normal vector scaled by scale.
func randVec[T matrix.Scalar](rng *rand.Rand, n int, scale float64) []T {
	v := make([]T, n)
	for i := range v {
		re := scale * rng.NormFloat64()
		if _, complexT := any(v[i]).(complex128); complexT {
			v[i] = any(complex(re, scale*rng.NormFloat64())).(T)
		} else {
			v[i] = matrix.FromReal[T](re)
		}
	}

	return v
}

// maxAbsDiff returns max |a[i,j]-b[i,j]| over two same-shaped matrices.
func maxAbsDiff[T matrix.Scalar](t *testing.T, a, b *matrix.Dense[T]) float64 {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("maxAbsDiff: shape mismatch %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	ad, bd := a.Data(), b.Data()
	diff := 0.0
	for i := range ad {
		if d := matrix.Abs(ad[i] - bd[i]); d > diff {
			diff = d
		}
	}

	return diff
}

// addRankOne returns a + sign·v·vᴴ as a fresh matrix.
func addRankOne[T matrix.Scalar](a *matrix.Dense[T], v []T, sign float64) *matrix.Dense[T] {
	n := a.Rows()
	out := a.Clone()
	d := out.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d[i*n+j] += matrix.FromReal[T](sign) * v[i] * matrix.Conj(v[j])
		}
	}

	return out
}

// permuted returns the matrix A[piv,piv].
func permuted[T matrix.Scalar](a *matrix.Dense[T], piv []int) *matrix.Dense[T] {
	n := a.Rows()
	out, _ := matrix.NewDense[T](n, n)
	ad, od := a.Data(), out.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			od[i*n+j] = ad[piv[i]*n+piv[j]]
		}
	}

	return out
}

// factorDense materializes the factor view matching the stored triangle.
func factorDense[T matrix.Scalar](f *cholesky.Factorization[T]) *matrix.Dense[T] {
	if f.Uplo() == cholesky.Upper {
		return f.UpperFactor().Dense()
	}

	return f.LowerFactor().Dense()
}

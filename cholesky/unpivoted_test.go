// SPDX-License-Identifier: MIT
// Package cholesky_test: unit tests for the unpivoted engine.
package cholesky_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlchol/cholesky"
	"github.com/katalvlaran/lvlchol/matrix"
)

// The classic worked example: A = RᵀR with R = [[2,6,-8],[0,1,5],[0,0,3]].
var concretePD = []float64{
	4, 12, -16,
	12, 37, -43,
	-16, -43, 98,
}

func TestFactorize_ConcreteUpper(t *testing.T) {
	for _, kernel := range []struct {
		name string
		opts []cholesky.Option
	}{
		{name: "accelerated", opts: nil},
		{name: "generic", opts: []cholesky.Option{cholesky.WithGenericKernel()}},
	} {
		t.Run(kernel.name, func(t *testing.T) {
			a := mustDense(t, 3, append([]float64(nil), concretePD...))
			f, err := cholesky.Factorize(a, cholesky.Upper, kernel.opts...)
			require.NoError(t, err)
			require.Equal(t, 0, f.Info())
			require.True(t, f.OK())

			want := mustDense(t, 3, []float64{
				2, 6, -8,
				0, 1, 5,
				0, 0, 3,
			})
			require.Less(t, maxAbsDiff(t, f.UpperFactor().Dense(), want), 1e-14)

			// The input must be untouched by the copying entry point.
			orig := mustDense(t, 3, concretePD)
			require.Zero(t, maxAbsDiff(t, a, orig))
		})
	}
}

func TestFactorize_ConcreteLower(t *testing.T) {
	a := mustDense(t, 3, append([]float64(nil), concretePD...))
	f, err := cholesky.Factorize(a, cholesky.Lower)
	require.NoError(t, err)

	want := mustDense(t, 3, []float64{
		2, 0, 0,
		6, 1, 0,
		-8, 5, 3,
	})
	require.Less(t, maxAbsDiff(t, f.LowerFactor().Dense(), want), 1e-14)
}

// Hand-checkable Hermitian case: A = [[2, 1+i],[1-i, 3]].
func TestFactorize_ConcreteComplex(t *testing.T) {
	a := mustDense(t, 2, []complex128{
		2, complex(1, 1),
		complex(1, -1), 3,
	})
	f, err := cholesky.Factorize(a, cholesky.Upper)
	require.NoError(t, err)

	s2 := math.Sqrt2
	want := mustDense(t, 2, []complex128{
		complex(s2, 0), complex(1/s2, 1/s2),
		0, complex(s2, 0),
	})
	require.Less(t, maxAbsDiff(t, f.UpperFactor().Dense(), want), 1e-14)
}

func TestFactorize_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 3, 5, 10, 20} {
		for _, uplo := range []cholesky.Triangle{cholesky.Upper, cholesky.Lower} {
			a := randPD(rng, n)
			f, err := cholesky.Factorize(a, uplo)
			require.NoError(t, err, "n=%d uplo=%v", n, uplo)

			got, err := f.Reconstruct()
			require.NoError(t, err)
			// Tolerance scales with n·eps·‖A‖ (entries are O(n) here).
			require.Less(t, maxAbsDiff(t, got, a), float64(n*n)*1e-14, "n=%d uplo=%v", n, uplo)
		}
	}
}

func TestFactorize_RoundTripComplex(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, n := range []int{1, 3, 8, 15} {
		for _, uplo := range []cholesky.Triangle{cholesky.Upper, cholesky.Lower} {
			a := randHermitianPD(rng, n)
			f, err := cholesky.Factorize(a, uplo)
			require.NoError(t, err, "n=%d uplo=%v", n, uplo)

			got, err := f.Reconstruct()
			require.NoError(t, err)
			require.Less(t, maxAbsDiff(t, got, a), float64(n*n)*1e-13, "n=%d uplo=%v", n, uplo)
		}
	}
}

func TestFactorize_GenericMatchesAccelerated(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := randPD(rng, 12)

	fast, err := cholesky.Factorize(a, cholesky.Upper)
	require.NoError(t, err)
	slow, err := cholesky.Factorize(a, cholesky.Upper, cholesky.WithGenericKernel())
	require.NoError(t, err)

	require.Less(t, maxAbsDiff(t, fast.UpperFactor().Dense(), slow.UpperFactor().Dense()), 1e-12)
}

func TestFactorize_NotPositiveDefinite(t *testing.T) {
	for _, tc := range []struct {
		name     string
		a        []float64
		wantInfo int
	}{
		// Eigenvalues 3 and -1: fails at the second pivot.
		{name: "indefinite", a: []float64{1, 2, 2, 1}, wantInfo: 2},
		// A zero leading pivot fails immediately.
		{name: "zero diagonal", a: []float64{0, 0, 0, 1}, wantInfo: 1},
		{name: "negative diagonal", a: []float64{-4, 0, 0, 1}, wantInfo: 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			for _, opts := range [][]cholesky.Option{nil, {cholesky.WithGenericKernel()}} {
				a := mustDense(t, 2, append([]float64(nil), tc.a...))
				f, err := cholesky.Factorize(a, cholesky.Upper, opts...)
				require.ErrorIs(t, err, cholesky.ErrNotPositiveDefinite)
				require.NotNil(t, f)
				require.Equal(t, tc.wantInfo, f.Info())
				require.False(t, f.OK())
			}
		})
	}
}

// A diagonal entry with a non-zero imaginary part violates the Hermitian
// assumption and must be detected at that pivot.
func TestFactorize_NonHermitianDiagonal(t *testing.T) {
	a := mustDense(t, 2, []complex128{
		1, 0,
		0, complex(2, 1),
	})
	f, err := cholesky.Factorize(a, cholesky.Upper)
	require.ErrorIs(t, err, cholesky.ErrNotPositiveDefinite)
	require.Equal(t, 2, f.Info())
}

func TestFactorizeInPlace_AliasesBuffer(t *testing.T) {
	a := mustDense(t, 3, append([]float64(nil), concretePD...))
	f, err := cholesky.FactorizeInPlace(a, cholesky.Upper)
	require.NoError(t, err)

	// The caller's buffer now holds the factor in its upper triangle.
	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 2.0, v, 1e-15)
	v, err = a.At(0, 2)
	require.NoError(t, err)
	require.InDelta(t, -8.0, v, 1e-15)

	// And mutating through the factorization is visible through a.
	require.NoError(t, f.Update(make([]float64, 3))) // zero vector: no-op update
	v, err = a.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 2.0, v, 1e-15)
}

func TestFactors_ViewAdjointIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, uplo := range []cholesky.Triangle{cholesky.Upper, cholesky.Lower} {
		a := randHermitianPD(rng, 6)
		f, err := cholesky.Factorize(a, uplo)
		require.NoError(t, err)

		up := f.UpperFactor()
		lo := f.LowerFactor()
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				u, err := up.At(i, j)
				require.NoError(t, err)
				l, err := lo.At(j, i)
				require.NoError(t, err)
				// upper_factor == lower_factorᴴ exactly, whatever was stored.
				require.Equal(t, u, matrix.Conj(l), "uplo=%v (%d,%d)", uplo, i, j)
			}
		}

		// Out-of-range access fails with the matrix sentinel.
		_, err = up.At(-1, 0)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
}

func TestFactorize_Validation(t *testing.T) {
	_, err := cholesky.Factorize[float64](nil, cholesky.Upper)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)
	_, err = cholesky.Factorize(rect, cholesky.Upper)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	sq := mustDense(t, 2, []float64{1, 0, 0, 1})
	require.PanicsWithValue(t, cholesky.PanicBadTriangle_TestOnly, func() {
		_, _ = cholesky.Factorize(sq, cholesky.Triangle(42))
	})
}

func TestScalarPivotStep(t *testing.T) {
	root, ok := cholesky.ExportedPivotRootF(9)
	require.True(t, ok)
	require.Equal(t, 3.0, root)

	_, ok = cholesky.ExportedPivotRootF(0)
	require.False(t, ok)

	root, ok = cholesky.ExportedPivotRootF(-4)
	require.False(t, ok)
	require.Equal(t, 2.0, root) // sqrt(|real part|) even on failure

	// Complex: a positive real diagonal passes…
	rootC, ok := cholesky.ExportedPivotRootC(complex(4, 0))
	require.True(t, ok)
	require.Equal(t, complex(2, 0), rootC)
	// …a non-real one is a Hermitian violation.
	_, ok = cholesky.ExportedPivotRootC(complex(4, 1))
	require.False(t, ok)
	// …and a negative real part fails outright.
	_, ok = cholesky.ExportedPivotRootC(complex(-4, 0))
	require.False(t, ok)
}

func TestGivensRotation(t *testing.T) {
	for _, pair := range [][2]float64{{3, 4}, {5, 0}, {0, 2}, {1e-8, 7}} {
		c, s, r := cholesky.ExportedGivensF(pair[0], pair[1])
		require.InDelta(t, 1.0, c*c+s*s, 1e-14, "unitarity for %v", pair)
		require.InDelta(t, r, c*pair[0]+s*pair[1], 1e-12, "rotated magnitude for %v", pair)
		require.InDelta(t, 0.0, -s*pair[0]+c*pair[1], 1e-12, "zeroed component for %v", pair)
		require.GreaterOrEqual(t, r, 0.0)
	}

	// Complex pair: r stays real and non-negative when a is real positive.
	c, s, r := cholesky.ExportedGivensC(complex(2, 0), complex(1, -3))
	require.InDelta(t, 0.0, imag(r), 1e-14)
	require.GreaterOrEqual(t, real(r), 0.0)
	require.InDelta(t, 1.0, c*c+matrix.AbsSq(s), 1e-14)
	zeroed := -matrix.Conj(s)*complex(2, 0) + matrix.FromReal[complex128](c)*complex(1, -3)
	require.Less(t, matrix.Abs(zeroed), 1e-13)
}

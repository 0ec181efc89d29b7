// SPDX-License-Identifier: MIT

// Package cholesky: rank-revealing pivoted engine.
//
// At every step the remaining index with the algebraically largest diagonal
// value becomes the pivot (ties broken by lowest index). The search is O(n)
// per step, not O(n²): a running accumulator holds, per column j, the sum of
// |R[i,j]|² over already-finalized rows i, so the current Schur-complement
// diagonal is one subtraction away. Total work stays O(n³).
//
// Early termination at the tolerance is reported through rank/info, never as
// an error — many callers only need the numerical rank and leading factor.
package cholesky

import (
	"fmt"

	"github.com/katalvlaran/lvlchol/matrix"
)

// PivotedFactorization is the result of the pivoted engine: the triangular
// factor of A[piv,piv] restricted to its leading rank rows/cols, the 0-based
// permutation piv, the numerical rank, and the tolerance actually used.
// info is 0 when rank == n, 1 otherwise.
type PivotedFactorization[T matrix.Scalar] struct {
	Factorization[T]
	piv  []int
	rank int
	tol  float64
}

// Rank returns the number of pivots accepted before the tolerance test failed.
func (f *PivotedFactorization[T]) Rank() int { return f.rank }

// Tol returns the stopping tolerance the engine actually compared against
// (the resolved value, even when the automatic default was requested).
func (f *PivotedFactorization[T]) Tol() float64 { return f.tol }

// Pivots returns a copy of the permutation: row/column Pivots()[k] of the
// original matrix became row/column k of the factored one.
func (f *PivotedFactorization[T]) Pivots() []int {
	out := make([]int, len(f.piv))
	copy(out, f.piv)

	return out
}

// RequireFullRank returns ErrRankDeficient unless rank == n.
func (f *PivotedFactorization[T]) RequireFullRank() error {
	if f.rank < f.Size() {
		return fmt.Errorf("RequireFullRank: rank %d of %d: %w", f.rank, f.Size(), ErrRankDeficient)
	}

	return nil
}

// PermutationMatrix materializes piv as a dense 0/1 matrix P with
// P[piv[j], j] = 1, so that Pᵀ·A·P = A[piv,piv] and A = P·(RᴴR)·Pᵀ.
// Expensive (O(n²) memory) and rarely needed; prefer Pivots.
func (f *PivotedFactorization[T]) PermutationMatrix() *matrix.Dense[T] {
	n := f.Size()
	p, _ := matrix.NewDense[T](n, n) // n ≥ 1 by construction
	for j, src := range f.piv {
		_ = p.Set(src, j, matrix.FromReal[T](1))
	}

	return p
}

// Update folds A + vvᴴ into the pivoted factor. v is given in ORIGINAL
// (unpermuted) coordinates: (A + vvᴴ)[piv,piv] = A[piv,piv] + v[piv]·v[piv]ᴴ,
// so the sweep runs on an internally permuted copy and v is left intact —
// unlike the unpivoted Update, which consumes its argument. The permutation
// itself is not revisited, so the factor stays valid but piv may no longer be
// the diagonal-maximum ordering of the updated matrix. Requires full rank:
// a truncated factor has no complete triangle to rotate.
func (f *PivotedFactorization[T]) Update(v []T) error {
	w, err := f.permuteVec("Update", v)
	if err != nil {
		return err
	}

	return f.Factorization.Update(w)
}

// Downdate folds A − vvᴴ into the pivoted factor; coordinate handling and
// full-rank requirement as in Update. Failure semantics follow the unpivoted
// Downdate (ErrInvalidDowndate, factorization invalidated).
func (f *PivotedFactorization[T]) Downdate(v []T) error {
	w, err := f.permuteVec("Downdate", v)
	if err != nil {
		return err
	}

	return f.Factorization.Downdate(w)
}

// permuteVec validates the rank/length preconditions shared by the pivoted
// Update/Downdate and maps v into factor coordinates.
func (f *PivotedFactorization[T]) permuteVec(op string, v []T) ([]T, error) {
	if err := f.RequireFullRank(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := matrix.ValidateVecLen(f.Size(), v); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	w := make([]T, len(v))
	for j, src := range f.piv {
		w[j] = v[src]
	}

	return w, nil
}

// Reconstruct multiplies the leading rank rows/cols of the factor back into
// the full Hermitian matrix A[piv,piv] it represents (both triangles
// materialized). Unlike the unpivoted Reconstruct, rank deficiency is fine:
// the product is then the rank-truncated approximation, exact for PSD inputs
// factored to completion.
func (f *PivotedFactorization[T]) Reconstruct() (*matrix.Dense[T], error) {
	return reconstruct(f.factors, f.uplo, f.rank), nil
}

// FactorizePivoted computes the rank-revealing Cholesky factorization of the
// uplo triangle of a, on a private copy; a is left untouched.
//
// The tolerance defaults to n · machine-epsilon · (largest diagonal entry);
// override with WithTolerance. Rank deficiency is NOT an error (inspect
// Rank/Info, or call RequireFullRank); only validation failures return one.
// Complexity: O(n³) time, O(n²) memory for the copy.
func FactorizePivoted[T matrix.Scalar](a *matrix.Dense[T], uplo Triangle, opts ...Option) (*PivotedFactorization[T], error) {
	mustValidTriangle(uplo)
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("FactorizePivoted: %w", err)
	}

	return factorizePivotedCore(a.Clone(), uplo, gatherOptions(opts...)), nil
}

// FactorizePivotedInPlace is the destructive variant: the factorization
// aliases a's buffer and a's contents are consumed.
func FactorizePivotedInPlace[T matrix.Scalar](a *matrix.Dense[T], uplo Triangle, opts ...Option) (*PivotedFactorization[T], error) {
	mustValidTriangle(uplo)
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("FactorizePivotedInPlace: %w", err)
	}

	return factorizePivotedCore(a, uplo, gatherOptions(opts...)), nil
}

// factorizePivotedCore runs the elimination on w destructively.
//
// Loop invariant (the whole point of the dots accumulator): entering step k,
// for every j ≥ k, dots[j] == Σ_{i<k} |R[i,j]|² over the finalized rows of
// the permuted factor — exactly the mass to subtract from the original
// diagonal to obtain the Schur-complement diagonal.
func factorizePivotedCore[T matrix.Scalar](w *matrix.Dense[T], uplo Triangle, opt options) *PivotedFactorization[T] {
	n := w.Rows()
	d := w.Data()

	f := &PivotedFactorization[T]{
		Factorization: Factorization[T]{factors: w, uplo: uplo},
		piv:           make([]int, n),
		rank:          n,
		tol:           opt.tol,
	}
	for i := range f.piv {
		f.piv[i] = i
	}

	dots := make([]float64, n) // per-column finalized |R[i,j]|² mass
	stop := opt.tol            // resolved at k == 0 when negative
	var k, j, i, best int
	var bestv, v float64
	var root, sum T
	for k = 0; k < n; k++ {
		// Stage 1: pivot search over the untouched indices {k..n-1}.
		best, bestv = k, matrix.Re(d[k*n+k])-dots[k]
		for j = k + 1; j < n; j++ {
			v = matrix.Re(d[j*n+j]) - dots[j]
			if v > bestv { // strict: ties keep the first (lowest) index
				best, bestv = j, v
			}
		}
		if k == 0 && stop < 0 {
			// Automatic tolerance from the global maximum diagonal value.
			stop = float64(n) * machEps * bestv
			f.tol = stop
		}

		// Stage 2: tolerance test; the negated form also stops on NaN.
		if !(bestv > stop) {
			f.rank = k
			f.info = 1
			return f
		}

		// Stage 3: symmetric permutation k ↔ best, bookkeeping included.
		if best != k {
			symmetricSwap(d, n, uplo, k, best)
			dots[k], dots[best] = dots[best], dots[k]
			f.piv[k], f.piv[best] = f.piv[best], f.piv[k]
		}

		// Stage 4: elimination step for column k; bestv > 0 here, so the
		// pivot step cannot fail.
		root, _ = pivotRoot(matrix.FromReal[T](bestv))
		d[k*n+k] = root
		if uplo == Upper {
			for j = k + 1; j < n; j++ {
				sum = d[k*n+j]
				for i = 0; i < k; i++ {
					sum -= matrix.Conj(d[i*n+k]) * d[i*n+j]
				}
				sum /= root
				d[k*n+j] = sum
				dots[j] += matrix.AbsSq(sum) // maintain the invariant for step k+1
			}
		} else {
			for i = k + 1; i < n; i++ {
				sum = d[i*n+k]
				for j = 0; j < k; j++ {
					sum -= d[i*n+j] * matrix.Conj(d[k*n+j])
				}
				sum /= root
				d[i*n+k] = sum
				dots[i] += matrix.AbsSq(sum)
			}
		}
	}

	return f
}

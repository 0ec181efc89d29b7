// SPDX-License-Identifier: MIT

// Package cholesky: operations derived from a completed factorization.
//
// Everything here runs off the triangular factor alone: determinant and
// log-determinant from the diagonal, linear solves as two sequential
// triangular substitutions (accelerated via LAPACK for float64), inversion
// as a solve against the identity followed by symmetrization. The pivoted
// variants add the permutation plumbing around the same cores.
package cholesky

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlchol/matrix"
)

// Det returns det(A) as the product of the squared diagonal magnitudes of
// the factor. Requires a successful factorization.
// Complexity: O(n).
func (f *Factorization[T]) Det() (float64, error) {
	if !f.OK() {
		return 0, fmt.Errorf("Det: pivot %d: %w", f.info, ErrNotPositiveDefinite)
	}
	n := f.Size()
	d := f.factors.Data()
	det := 1.0
	for k := 0; k < n; k++ {
		det *= matrix.AbsSq(d[k*n+k])
	}

	return det, nil
}

// LogDet returns log(det(A)) as Σ 2·log(diag_k), avoiding the overflow and
// underflow of forming the determinant itself. Requires a successful
// factorization (which guarantees real, positive diagonals).
// Complexity: O(n).
func (f *Factorization[T]) LogDet() (float64, error) {
	if !f.OK() {
		return 0, fmt.Errorf("LogDet: pivot %d: %w", f.info, ErrNotPositiveDefinite)
	}
	n := f.Size()
	sum := 0.0
	for k := 0; k < n; k++ {
		sum += 2 * math.Log(f.diag(k))
	}

	return sum, nil
}

// Solve returns X with A·X = B for an n×m right-hand side matrix b, which is
// not modified. Two sequential O(n²·m) triangular substitutions (forward
// then backward for Lower storage, conjugate-forward then backward for
// Upper); float64 delegates both to LAPACK's Potrs.
// Returns ErrSingularPivot when a factor diagonal is exactly zero.
func (f *Factorization[T]) Solve(b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	// Stage 1: Validate.
	if !f.OK() {
		return nil, fmt.Errorf("Solve: pivot %d: %w", f.info, ErrNotPositiveDefinite)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err := matrix.ValidateSameRows(f.Size(), b); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if k := f.zeroDiag(); k != 0 {
		return nil, fmt.Errorf("Solve: pivot %d: %w", k, ErrSingularPivot)
	}

	// Stage 2: Execute on a copy of the right-hand sides.
	x := b.Clone()
	if !lapackPotrs(f, x) {
		f.substitute(x)
	}

	return x, nil
}

// SolveVec is the single right-hand-side convenience over Solve.
// b is not modified; the solution is returned as a fresh slice.
func (f *Factorization[T]) SolveVec(b []T) ([]T, error) {
	if err := matrix.ValidateVecLen(f.Size(), b); err != nil {
		return nil, fmt.Errorf("SolveVec: %w", err)
	}
	col := make([]T, len(b))
	copy(col, b)
	rhs, err := matrix.NewDenseFrom(f.Size(), 1, col)
	if err != nil {
		return nil, fmt.Errorf("SolveVec: %w", err)
	}
	x, err := f.Solve(rhs)
	if err != nil {
		return nil, err
	}

	return x.Data(), nil
}

// Inverse returns A⁻¹, formed by solving against the identity and averaging
// the result with its own conjugate mirror to absorb rounding asymmetry.
// Complexity: O(n³).
func (f *Factorization[T]) Inverse() (*matrix.Dense[T], error) {
	inv, err := f.Solve(identity[T](f.Size()))
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	symmetrize(inv)

	return inv, nil
}

// zeroDiag returns the 1-based index of the first exactly-zero factor
// diagonal, or 0 when none is.
func (f *Factorization[T]) zeroDiag() int {
	for k := 0; k < f.Size(); k++ {
		if f.diag(k) == 0 {
			return k + 1
		}
	}

	return 0
}

// substitute runs the two generic triangular substitutions in place on the
// columns of x. Diagonals have been checked non-zero by the caller.
func (f *Factorization[T]) substitute(x *matrix.Dense[T]) {
	n := f.Size()
	m := x.Cols()
	d := f.factors.Data()
	xd := x.Data()

	var col, i, k int
	var sum, dg T
	for col = 0; col < m; col++ {
		if f.uplo == Upper {
			// Forward: Rᴴ·y = b (conjugated column walk of R).
			for i = 0; i < n; i++ {
				sum = xd[i*m+col]
				for k = 0; k < i; k++ {
					sum -= matrix.Conj(d[k*n+i]) * xd[k*m+col]
				}
				xd[i*m+col] = sum / d[i*n+i] // diagonal is real: conj is identity
			}
			// Backward: R·x = y.
			for i = n - 1; i >= 0; i-- {
				sum = xd[i*m+col]
				for k = i + 1; k < n; k++ {
					sum -= d[i*n+k] * xd[k*m+col]
				}
				xd[i*m+col] = sum / d[i*n+i]
			}
		} else {
			// Forward: L·z = b.
			for i = 0; i < n; i++ {
				sum = xd[i*m+col]
				for k = 0; k < i; k++ {
					sum -= d[i*n+k] * xd[k*m+col]
				}
				xd[i*m+col] = sum / d[i*n+i]
			}
			// Backward: Lᴴ·x = z.
			for i = n - 1; i >= 0; i-- {
				sum = xd[i*m+col]
				dg = d[i*n+i]
				for k = i + 1; k < n; k++ {
					sum -= matrix.Conj(d[k*n+i]) * xd[k*m+col]
				}
				xd[i*m+col] = sum / dg
			}
		}
	}
}

// --- pivoted variants --------------------------------------------------------

// Det returns det(A); exactly 0 when the factorization stopped short of full
// rank (the matrix is singular within tolerance).
func (f *PivotedFactorization[T]) Det() (float64, error) {
	if f.rank < f.Size() {
		return 0, nil
	}
	n := f.Size()
	d := f.factors.Data()
	det := 1.0
	for k := 0; k < n; k++ {
		det *= matrix.AbsSq(d[k*n+k])
	}

	return det, nil
}

// LogDet returns log(det(A)). Defined only for a full-rank factorization;
// rank deficiency means det(A) = 0 and is reported as ErrRankDeficient.
func (f *PivotedFactorization[T]) LogDet() (float64, error) {
	if err := f.RequireFullRank(); err != nil {
		return 0, fmt.Errorf("LogDet: %w", err)
	}

	return f.Factorization.LogDet()
}

// Solve returns X with A·X = B, routing the right-hand sides through the
// permutation: rows of B are gathered by piv before the substitutions and
// scattered back by piv⁻¹ after. Requires full rank.
func (f *PivotedFactorization[T]) Solve(b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := f.RequireFullRank(); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err := matrix.ValidateSameRows(f.Size(), b); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	// Gather: bp[k] = b[piv[k]].
	n, m := f.Size(), b.Cols()
	bp, _ := matrix.NewDense[T](n, m)
	gatherRows(bp.Data(), b.Data(), f.piv, m, false)

	xp, err := f.Factorization.Solve(bp)
	if err != nil {
		return nil, err
	}

	// Scatter: x[piv[k]] = xp[k].
	x, _ := matrix.NewDense[T](n, m)
	gatherRows(x.Data(), xp.Data(), f.piv, m, true)

	return x, nil
}

// SolveVec is the single right-hand-side convenience over the pivoted Solve.
func (f *PivotedFactorization[T]) SolveVec(b []T) ([]T, error) {
	if err := matrix.ValidateVecLen(f.Size(), b); err != nil {
		return nil, fmt.Errorf("SolveVec: %w", err)
	}
	col := make([]T, len(b))
	copy(col, b)
	rhs, _ := matrix.NewDenseFrom(f.Size(), 1, col)
	x, err := f.Solve(rhs)
	if err != nil {
		return nil, err
	}

	return x.Data(), nil
}

// Inverse returns A⁻¹ for a full-rank pivoted factorization, permutation
// included, symmetrized like the unpivoted Inverse.
func (f *PivotedFactorization[T]) Inverse() (*matrix.Dense[T], error) {
	inv, err := f.Solve(identity[T](f.Size()))
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	symmetrize(inv)

	return inv, nil
}

// gatherRows copies rows between the flat n×m buffers dst and src following
// the permutation: scatter=false does dst[k] = src[piv[k]] (apply P), while
// scatter=true does dst[piv[k]] = src[k] (apply P⁻¹).
func gatherRows[T matrix.Scalar](dst, src []T, piv []int, m int, scatter bool) {
	for k, p := range piv {
		if scatter {
			copy(dst[p*m:(p+1)*m], src[k*m:(k+1)*m])
		} else {
			copy(dst[k*m:(k+1)*m], src[p*m:(p+1)*m])
		}
	}
}

// identity returns the n×n identity matrix.
func identity[T matrix.Scalar](n int) *matrix.Dense[T] {
	eye, _ := matrix.NewDense[T](n, n)
	d := eye.Data()
	for i := 0; i < n; i++ {
		d[i*n+i] = matrix.FromReal[T](1)
	}

	return eye
}

// symmetrize averages m with its own conjugate transpose in place, forcing
// an exactly Hermitian result out of a numerically near-Hermitian one.
func symmetrize[T matrix.Scalar](m *matrix.Dense[T]) {
	n := m.Rows()
	d := m.Data()
	var i, j int
	var avg T
	for i = 0; i < n; i++ {
		// Diagonal entries of a Hermitian matrix are real.
		d[i*n+i] = matrix.FromReal[T](matrix.Re(d[i*n+i]))
		for j = i + 1; j < n; j++ {
			avg = (d[i*n+j] + matrix.Conj(d[j*n+i])) / matrix.FromReal[T](2)
			d[i*n+j] = avg
			d[j*n+i] = matrix.Conj(avg)
		}
	}
}

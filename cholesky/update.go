// SPDX-License-Identifier: MIT

// Package cholesky: rank-1 update and downdate of an existing factorization.
//
// Both operations rewrite the factor of A into the factor of A ± vvᴴ in
// O(n²) — against O(n³) for refactorizing from scratch, which is the entire
// reason they exist. The update sweeps a Givens rotation per row, folding the
// perturbation into ever-larger diagonals; the downdate uses the hyperbolic
// (non-unitary) analogue, which is only defined while A − vvᴴ stays positive
// definite.
//
// Storage-side handling: the Upper triangle holds R with A = RᴴR, whose
// stacked form appends the row vᴴ, so the sweep acts on conj(v); the Lower
// triangle appends the column v directly. Conjugating v up front for Upper
// makes the two inner loops share one set of recurrences, walking row i
// (stride 1) for Upper and column i (stride n) for Lower.
package cholesky

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlchol/matrix"
)

// Update mutates f in place so that its factor represents A + vvᴴ.
//
// v must have length Size(); it is overwritten with rotation residue as a
// side effect — callers needing it afterwards must copy first. Updating by a
// positive semi-definite rank-1 term cannot fail on a valid factorization;
// errors are limited to dimension mismatch and an already-failed f.
// Complexity: O(n²).
func (f *Factorization[T]) Update(v []T) error {
	if err := f.updowncheck("Update", v); err != nil {
		return err
	}
	n := f.Size()
	d := f.factors.Data()
	if f.uplo == Upper {
		conjVec(v)
	}

	var i, j, idx, start, stride int
	var c float64
	var s, r, cT, t, uj T
	for i = 0; i < n; i++ {
		// Rotate the incoming perturbation into the diagonal:
		// |d[i,i]|² + |v[i]|² = r².
		c, s, r = givens(d[i*n+i], v[i])
		d[i*n+i] = r
		cT = matrix.FromReal[T](c)

		// Propagate through the untouched remainder of row/column i.
		start, stride = i*n+i+1, 1 // Upper: row i, rightward
		if f.uplo == Lower {
			start, stride = (i+1)*n+i, n // Lower: column i, downward
		}
		idx = start
		for j = i + 1; j < n; j++ {
			t, uj = d[idx], v[j]
			d[idx] = cT*t + s*uj
			v[j] = cT*uj - matrix.Conj(s)*t
			idx += stride
		}
	}

	return nil
}

// Downdate mutates f in place so that its factor represents A − vvᴴ.
//
// v must have length Size() and is destroyed like in Update. When a sweep
// step would need a hyperbolic rotation with |s| ≥ 1, A − vvᴴ is not
// positive definite: Downdate returns ErrInvalidDowndate and invalidates f
// (Info reports the failing step) rather than clamping silently.
// Complexity: O(n²).
func (f *Factorization[T]) Downdate(v []T) error {
	if err := f.updowncheck("Downdate", v); err != nil {
		return err
	}
	n := f.Size()
	d := f.factors.Data()
	if f.uplo == Upper {
		conjVec(v)
	}

	var i, j, idx, start, stride int
	var ss float64
	var s, cT, t, uj T
	for i = 0; i < n; i++ {
		diag := d[i*n+i] // real, positive for a valid factor

		// Hyperbolic rotation zeroing v[i] against the diagonal. The rotation
		// coefficient is conj(v[i])/diag: the sweep cancels the appended
		// row/column against the factor's conjugated entries, so for
		// complex128 an unconjugated s leaves a residual in the off-diagonal
		// phases (diag is real, so conjugating v[i] alone suffices).
		s = matrix.Conj(v[i]) / diag
		ss = matrix.AbsSq(s)
		if ss >= 1 {
			f.info = i + 1 // factor is no longer a Cholesky factor of anything
			return fmt.Errorf("Downdate: pivot %d: %w", i+1, ErrInvalidDowndate)
		}
		cT = matrix.FromReal[T](math.Sqrt(1 - ss))
		d[i*n+i] = cT * diag

		start, stride = i*n+i+1, 1
		if f.uplo == Lower {
			start, stride = (i+1)*n+i, n
		}
		idx = start
		for j = i + 1; j < n; j++ {
			t, uj = d[idx], v[j]
			d[idx] = (t - s*uj) / cT
			v[j] = (uj - matrix.Conj(s)*t) / cT
			idx += stride
		}
	}

	return nil
}

// updowncheck validates the shared Update/Downdate preconditions.
func (f *Factorization[T]) updowncheck(op string, v []T) error {
	if !f.OK() {
		return fmt.Errorf("%s: pivot %d: %w", op, f.info, ErrNotPositiveDefinite)
	}
	if err := matrix.ValidateVecLen(f.Size(), v); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// conjVec conjugates v element-wise, in place. Identity for float64.
func conjVec[T matrix.Scalar](v []T) {
	for i, x := range v {
		v[i] = matrix.Conj(x)
	}
}

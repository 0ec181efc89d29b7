// Package lvlchol is a compact toolkit for Cholesky factorizations of
// symmetric / Hermitian matrices — the full-rank variant, the rank-revealing
// pivoted variant, and the operations usually built on top of them.
//
// 🚀 What is lvlchol?
//
//	A small, deterministic library that brings together:
//		• Dense storage: a generic row-major container for float64 and complex128
//		• Factorizations: unpivoted (A = RᴴR / L·Lᴴ) and diagonal-pivoted rank-revealing
//		• Derived operations: solve, inverse, determinant, log-determinant
//		• Rank-1 maintenance: O(n²) Givens update and hyperbolic downdate
//		• An accelerated float64 path via gonum's LAPACK implementation
//
// ✨ Why choose lvlchol?
//
//   - Predictable guarantees – sentinel errors, no panics on user input
//   - Honest failure reporting – the failing pivot index is always available
//   - Pure Go kernels for every element type, LAPACK speed where it exists
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/   — generic dense container, scalar capability set, validators
//	cholesky/ — engines, factorization objects, update/downdate, derived ops
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom(3, 3, []float64{
//		4, 12, -16,
//		12, 37, -43,
//		-16, -43, 98,
//	})
//	f, err := cholesky.Factorize(a, cholesky.Upper)
//	if err != nil { ... }
//	x, err := f.SolveVec([]float64{1, 2, 3})
//
// Start with cholesky.Factorize, move to cholesky.FactorizePivoted when the
// input may be singular, and reach for Update/Downdate when the matrix
// changes by a rank-1 term.
//
//	go get github.com/katalvlaran/lvlchol
package lvlchol

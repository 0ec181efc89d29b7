// SPDX-License-Identifier: MIT

// Package cholesky: functional configuration for the factorization engines.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package cholesky

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTolerance is the pivoted-engine stopping tolerance. Any negative
	// value means "auto": n · machine-epsilon · (largest diagonal entry),
	// computed once at the first elimination step.
	DefaultTolerance = -1.0
)

// machEps is the double-precision machine epsilon (ulp of 1.0), the unit used
// by the automatic pivoted tolerance.
const machEps = 0x1p-52

// panicTolNaN is the message used when WithTolerance receives NaN.
const panicTolNaN = "cholesky: WithTolerance(NaN) is not a tolerance"

// options is the internal engine configuration assembled by gatherOptions.
type options struct {
	tol          float64 // pivoted stopping tolerance; negative ⇒ auto
	forceGeneric bool    // bypass the accelerated float64 path
}

// Option mutates the internal options; construct via the WithX helpers.
type Option func(*options)

// defaultOptions returns the documented zero-value configuration.
func defaultOptions() options {
	return options{tol: DefaultTolerance}
}

// WithTolerance sets the pivoted engine's stopping tolerance. A pivot whose
// remaining diagonal value is ≤ tol terminates the factorization with the
// rank found so far. Negative values select the automatic tolerance.
// Panics on NaN (programmer error: NaN compares false with everything and
// would silently disable the stopping rule).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) {
		panic(panicTolNaN)
	}

	return func(o *options) { o.tol = tol }
}

// WithGenericKernel forces the portable scalar kernel even for element types
// that have an accelerated LAPACK path. Intended for cross-checking the two
// strategies and for callers that need the exact partial-state semantics of
// the scalar kernel on failure.
func WithGenericKernel() Option {
	return func(o *options) { o.forceGeneric = true }
}

// gatherOptions folds a variadic Option list over the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

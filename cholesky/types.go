// SPDX-License-Identifier: MIT

// Package cholesky: domain types shared across engines.
package cholesky

// Triangle selects which triangle of a square matrix is authoritative: the
// engines read (and write the factor into) exactly one triangle, the other
// triangle's contents are ignored and assumed to be its conjugate mirror.
type Triangle int

const (
	// Upper stores/produces the upper triangular factor R with A = RᴴR.
	Upper Triangle = iota
	// Lower stores/produces the lower triangular factor L with A = L·Lᴴ.
	Lower
)

// panicBadTriangle is the message used when a Triangle constant is invalid.
// An out-of-range Triangle is a programmer error, not a data condition,
// so it panics rather than returning a sentinel.
const panicBadTriangle = "cholesky: invalid Triangle tag"

// valid reports whether t is one of the defined constants.
func (t Triangle) valid() bool {
	return t == Upper || t == Lower
}

// String returns "Upper" or "Lower" (or a diagnostic for invalid tags).
func (t Triangle) String() string {
	switch t {
	case Upper:
		return "Upper"
	case Lower:
		return "Lower"
	default:
		return "Triangle(invalid)"
	}
}

// mustValidTriangle panics with panicBadTriangle on an invalid tag.
func mustValidTriangle(t Triangle) {
	if !t.valid() {
		panic(panicBadTriangle)
	}
}

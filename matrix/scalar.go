// SPDX-License-Identifier: MIT

// Package matrix: scalar capability set.
// The Cholesky kernels are generic over the element type; everything they
// need beyond ring arithmetic is collected here as a small, explicit set of
// capability functions: conjugation, real-part extraction, magnitude, and
// real-to-scalar promotion. All of them are pure, deterministic, O(1).
package matrix

import (
	"math"
	"math/cmplx"
)

// Scalar enumerates the element types the dense container and the kernels
// support. Real symmetric work uses float64; Hermitian work uses complex128.
type Scalar interface {
	float64 | complex128
}

// Conj returns the complex conjugate of x. For float64 it is the identity.
func Conj[T Scalar](x T) T {
	if z, ok := any(x).(complex128); ok {
		return any(cmplx.Conj(z)).(T)
	}

	return x
}

// Re returns the real part of x.
func Re[T Scalar](x T) float64 {
	if z, ok := any(x).(complex128); ok {
		return real(z)
	}

	return any(x).(float64)
}

// Im returns the imaginary part of x. For float64 it is always 0.
func Im[T Scalar](x T) float64 {
	if z, ok := any(x).(complex128); ok {
		return imag(z)
	}

	return 0
}

// Abs returns |x|: math.Abs for float64, the complex modulus for complex128.
func Abs[T Scalar](x T) float64 {
	if z, ok := any(x).(complex128); ok {
		return cmplx.Abs(z)
	}

	return math.Abs(any(x).(float64))
}

// AbsSq returns |x|² without the square root, the Hermitian inner-product
// building block: conj(x)·x projected onto the reals.
func AbsSq[T Scalar](x T) float64 {
	if z, ok := any(x).(complex128); ok {
		return real(z)*real(z) + imag(z)*imag(z)
	}
	v := any(x).(float64)

	return v * v
}

// FromReal promotes a real value into the scalar type T (imaginary part 0).
func FromReal[T Scalar](r float64) T {
	var zero T
	if _, ok := any(zero).(complex128); ok {
		return any(complex(r, 0)).(T)
	}

	return any(r).(T)
}

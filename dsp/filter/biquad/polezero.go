package biquad

import (
	"math"
	"math/cmplx"
)

// Poles returns the roots of 1 + A1*z^-1 + A2*z^-2.
func (c Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the roots of B0 + B1*z^-1 + B2*z^-2. A first-order
// numerator reports its single zero first and 0 second.
func (c Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// PoleRadius returns the largest pole magnitude. A complex-conjugate pair
// has radius sqrt(A2) exactly.
func (c Coefficients) PoleRadius() float64 {
	if c.A1*c.A1 < 4*c.A2 {
		return math.Sqrt(c.A2)
	}
	return rootRadius(c.Poles())
}

// ZeroRadius returns the largest zero magnitude.
func (c Coefficients) ZeroRadius() float64 {
	return rootRadius(c.Zeros())
}

// IsStable reports whether both poles lie strictly inside the unit circle.
// The test uses the stability triangle on A1, A2, so poles on the circle
// are never rounded inside it.
func (c Coefficients) IsStable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

func rootRadius(r [2]complex128) float64 {
	return max(cmplx.Abs(r[0]), cmplx.Abs(r[1]))
}

// quadraticRoots solves a*x^2 + b*x + c = 0, degrading to the linear case
// when a is zero.
func quadraticRoots(a, b, c float64) [2]complex128 {
	switch {
	case a == 0 && b == 0:
		return [2]complex128{}
	case a == 0:
		return [2]complex128{complex(-c/b, 0), 0}
	}

	sq := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	twoA := complex(2*a, 0)

	return [2]complex128{
		(complex(-b, 0) + sq) / twoA,
		(complex(-b, 0) - sq) / twoA,
	}
}

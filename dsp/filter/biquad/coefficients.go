package biquad

import "math"

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Array returns the coefficients in b0, b1, b2, a1, a2 order.
func (c Coefficients) Array() [5]float64 {
	return [5]float64{c.B0, c.B1, c.B2, c.A1, c.A2}
}

// FromArray is the inverse of [Coefficients.Array].
func FromArray(v [5]float64) Coefficients {
	return Coefficients{B0: v[0], B1: v[1], B2: v[2], A1: v[3], A2: v[4]}
}

// IsFinite reports whether no coefficient is NaN or Inf.
func (c Coefficients) IsFinite() bool {
	for _, v := range c.Array() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// ImpulseResponse computes n samples of h[n] for the section using a
// Direct Form II Transposed recursion started from zero state.
func (c Coefficients) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	ir := make([]float64, n)

	var d0, d1 float64

	x := 1.0
	for i := range ir {
		y := c.B0*x + d0
		d0 = c.B1*x - c.A1*y + d1
		d1 = c.B2*x - c.A2*y
		ir[i] = y
		x = 0
	}

	return ir
}

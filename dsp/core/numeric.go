// Package core holds small numeric helpers shared by the designers,
// the fixed-point packer and the measurement code.
package core

import "math"

// IsFinite reports whether x is neither NaN nor Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// DBToShelfAmplitude returns 10^(db/40), the square root of the linear
// amplitude 10^(db/20). Peaking and shelving biquads in cookbook form are
// written in terms of this value.
func DBToShelfAmplitude(db float64) float64 {
	return math.Pow(10, db/40)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

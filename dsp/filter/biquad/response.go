package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-peq/dsp/core"
)

// Response evaluates H(z) on the unit circle at freqHz for the given
// sample rate.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	z1 := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate) // z^-1

	num := complex(c.B0, 0) + z1*(complex(c.B1, 0)+z1*complex(c.B2, 0))
	den := 1 + z1*(complex(c.A1, 0)+z1*complex(c.A2, 0))

	return num / den
}

// MagnitudeSquared returns |H(f)|^2 in closed form, without complex
// arithmetic.
func (c Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)

	num := (c.B0-c.B2)*(c.B0-c.B2) + c.B1*c.B1 + (c.B1*(c.B0+c.B2)+c.B0*c.B2*cw)*cw
	den := (1-c.A2)*(1-c.A2) + c.A1*c.A1 + (c.A1*(c.A2+1)+cw*c.A2)*cw

	return num / den
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearPowerToDB(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns arg H(f) in radians, in [-pi, pi].
func (c Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

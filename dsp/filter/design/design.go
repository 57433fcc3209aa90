package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-peq/dsp/core"
	"github.com/cwbudde/algo-peq/dsp/filter/biquad"
)

// Peak designs a peaking-EQ biquad (RBJ cookbook form):
//
//	A     = 10^(gain/40)
//	w0    = 2*pi*f/fs
//	alpha = sin(w0) / (2*A*Q)
//
//	b0 = 1 + alpha*A   a0 = 1 + alpha/A
//	b1 = -2*cos(w0)    a1 = -2*cos(w0)
//	b2 = 1 - alpha*A   a2 = 1 - alpha/A
//
// All coefficients are divided by a0.
func Peak(p Params) (biquad.Coefficients, error) {
	if err := p.Validate(); err != nil {
		return biquad.Coefficients{}, err
	}

	return peakRBJ(p.FreqHz, p.GainDB, p.Q, p.SampleRate), nil
}

// PeakBands designs every band independently. The first invalid band
// aborts the whole call; no partial result is returned.
func PeakBands(bands []Params) ([]biquad.Coefficients, error) {
	out := make([]biquad.Coefficients, len(bands))
	for i, p := range bands {
		c, err := Peak(p)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", i, err)
		}
		out[i] = c
	}

	return out, nil
}

func peakRBJ(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	a := core.DBToShelfAmplitude(gainDB)
	alpha := sw / (2 * a * q)

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

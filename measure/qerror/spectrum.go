package qerror

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-peq/dsp/filter/biquad"
)

// Spectrum returns |H[k]| for bins 0..n/2 of the FFT of the first n
// samples of the section's impulse response. n must be a power of two.
func Spectrum(c biquad.Coefficients, n int) ([]float64, error) {
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("qerror: fft size must be a power of two >= 2: %d", n)
	}

	ir := c.ImpulseResponse(n)

	in := make([]complex128, n)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("qerror: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("qerror: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

package qerror

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-peq/dsp/core"
	"github.com/cwbudde/algo-peq/dsp/filter/biquad"
)

// Report summarizes the difference between an ideal and a quantized biquad.
type Report struct {
	// CoefficientError is quantized minus ideal, in b0, b1, b2, a1, a2 order.
	CoefficientError    [5]float64
	MaxCoefficientError float64

	// Closed-form magnitude comparison on the log grid.
	MaxDeviationDB float64
	MaxDeviationHz float64
	// MaxPhaseDeviation is the largest wrapped phase difference on the
	// grid, in radians.
	MaxPhaseDeviation float64

	// FFT comparison of the impulse responses.
	SpectralDeviationDB float64
	SpectralDeviationHz float64

	IdealPoleRadius     float64
	QuantizedPoleRadius float64
	QuantizedZeroRadius float64
	Stable              bool // quantized section has all poles inside the unit circle
}

// Compare measures quantized against ideal at sampleRate.
func Compare(ideal, quantized biquad.Coefficients, sampleRate float64, opts ...Option) (Report, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return Report{}, fmt.Errorf("qerror: sample rate must be > 0 and finite: %v", sampleRate)
	}
	if !ideal.IsFinite() || !quantized.IsFinite() {
		return Report{}, fmt.Errorf("qerror: coefficients must be finite")
	}

	cfg := ApplyOptions(opts...)
	maxFreq := cfg.MaxFreq
	if maxFreq <= 0 {
		maxFreq = defaultMaxRatio * sampleRate
	}
	if cfg.MinFreq >= maxFreq {
		return Report{}, fmt.Errorf("qerror: empty frequency range [%v, %v]", cfg.MinFreq, maxFreq)
	}

	var rep Report

	iv, qv := ideal.Array(), quantized.Array()
	for i := range iv {
		rep.CoefficientError[i] = qv[i] - iv[i]
		rep.MaxCoefficientError = math.Max(rep.MaxCoefficientError, math.Abs(rep.CoefficientError[i]))
	}

	grid := floats.LogSpan(make([]float64, cfg.GridPoints), cfg.MinFreq, maxFreq)
	rep.MaxDeviationDB, rep.MaxDeviationHz = gridDeviation(ideal, quantized, grid, sampleRate)
	rep.MaxPhaseDeviation = phaseDeviation(ideal, quantized, grid, sampleRate)

	specIdeal, err := Spectrum(ideal, cfg.FFTSize)
	if err != nil {
		return Report{}, err
	}
	specQuant, err := Spectrum(quantized, cfg.FFTSize)
	if err != nil {
		return Report{}, err
	}

	dev, bin := spectralDeviation(specIdeal, specQuant)
	rep.SpectralDeviationDB = dev
	rep.SpectralDeviationHz = float64(bin) * sampleRate / float64(cfg.FFTSize)

	rep.IdealPoleRadius = ideal.PoleRadius()
	rep.QuantizedPoleRadius = quantized.PoleRadius()
	rep.QuantizedZeroRadius = quantized.ZeroRadius()
	rep.Stable = quantized.IsStable()

	return rep, nil
}

func gridDeviation(ideal, quantized biquad.Coefficients, grid []float64, sampleRate float64) (float64, float64) {
	a := make([]float64, len(grid))
	b := make([]float64, len(grid))
	for i, f := range grid {
		a[i] = ideal.MagnitudeDB(f, sampleRate)
		b[i] = quantized.MagnitudeDB(f, sampleRate)
	}

	diff := absInPlace(floats.SubTo(make([]float64, len(grid)), b, a))
	idx := floats.MaxIdx(diff)

	return diff[idx], grid[idx]
}

func phaseDeviation(ideal, quantized biquad.Coefficients, grid []float64, sampleRate float64) float64 {
	diff := make([]float64, len(grid))
	for i, f := range grid {
		d := quantized.Phase(f, sampleRate) - ideal.Phase(f, sampleRate)
		diff[i] = math.Abs(math.Remainder(d, 2*math.Pi))
	}

	return floats.Max(diff)
}

// spectralDeviation returns the largest dB difference and its bin, skipping
// bins where either spectrum is zero.
func spectralDeviation(ideal, quantized []float64) (float64, int) {
	diff := make([]float64, len(ideal))
	for k := range ideal {
		if ideal[k] == 0 || quantized[k] == 0 {
			continue
		}
		diff[k] = core.LinearToDB(quantized[k]) - core.LinearToDB(ideal[k])
	}

	absInPlace(diff)
	idx := floats.MaxIdx(diff)

	return diff[idx], idx
}

func absInPlace(s []float64) []float64 {
	for i, v := range s {
		s[i] = math.Abs(v)
	}
	return s
}

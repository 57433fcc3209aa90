// Package biquad defines the coefficient set of a single second-order IIR
// section (biquad) and closed-form analysis of it.
//
// [Coefficients] are normalized so that a0 = 1. The package evaluates their
// frequency response, pole/zero locations and impulse response; it never
// filters audio. Coefficient design (peaking EQ) lives in dsp/filter/design
// and fixed-point packing in dsp/fixed.
package biquad

// Package design derives digital biquad coefficients from human-meaningful
// filter parameters.
//
// [Peak] implements the RBJ cookbook peaking EQ: a boost or cut of GainDB
// decibels centred on FreqHz with bandwidth set by Q. The result is a
// normalized [biquad.Coefficients] ready for fixed-point packing in
// dsp/fixed. Parameters are validated before any computation; invalid input
// yields an error wrapping [ErrInvalidParameter] instead of NaN
// coefficients.
package design

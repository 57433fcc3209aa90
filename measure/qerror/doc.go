// Package qerror measures how far a fixed-point packed biquad drifts from
// the floating-point design it was derived from.
//
// [Compare] reports the per-coefficient error, the largest magnitude
// deviation on a log-spaced frequency grid evaluated in closed form, the
// largest deviation of the FFT spectra of both impulse responses, and the
// pole radius of both sections.
//
// # Usage
//
//	ideal, _ := design.Peak(params)
//	set, _ := packer.PackSet(ideal)
//	rep, err := qerror.Compare(ideal, fixed.Unpack(layout, set), params.SampleRate)
//	fmt.Printf("max deviation %.4f dB at %.0f Hz\n", rep.MaxDeviationDB, rep.MaxDeviationHz)
package qerror

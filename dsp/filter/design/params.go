package design

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-peq/dsp/core"
)

// ErrInvalidParameter is wrapped by every validation failure in this package.
var ErrInvalidParameter = errors.New("design: invalid parameter")

// Params describes one peaking EQ band.
//
// FreqHz should lie below SampleRate/2 for a physically meaningful
// response; this is the caller's responsibility and is not checked.
type Params struct {
	GainDB     float64 // boost (>0) or cut (<0) in dB
	FreqHz     float64 // centre frequency, > 0
	SampleRate float64 // Hz, > 0
	Q          float64 // quality factor, > 0
}

// Validate reports the first parameter that cannot produce finite
// coefficients.
func (p Params) Validate() error {
	switch {
	case !core.IsFinite(p.SampleRate) || p.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be > 0 and finite: %v", ErrInvalidParameter, p.SampleRate)
	case !core.IsFinite(p.FreqHz) || p.FreqHz <= 0:
		return fmt.Errorf("%w: frequency must be > 0 and finite: %v", ErrInvalidParameter, p.FreqHz)
	case !core.IsFinite(p.Q) || p.Q <= 0:
		return fmt.Errorf("%w: q must be > 0 and finite: %v", ErrInvalidParameter, p.Q)
	case !core.IsFinite(p.GainDB):
		return fmt.Errorf("%w: gain must be finite: %v", ErrInvalidParameter, p.GainDB)
	}

	return nil
}

// String renders the band in a compact human form.
func (p Params) String() string {
	return fmt.Sprintf("%gHz %+gdB Q%g @%gHz", p.FreqHz, p.GainDB, p.Q, p.SampleRate)
}

package fixed

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-peq/dsp/core"
)

const (
	// FracBits is the number of fractional bits of a code.
	FracBits = 20
	// Width is the code width in bits.
	Width = 24
	// Scale is the value of one integer unit in code LSBs (2^20).
	Scale = 1 << FracBits
	// Mask selects the 24 code bits.
	Mask = 1<<Width - 1
	// MaxMagnitude is the exclusive coefficient magnitude bound: any
	// larger magnitude needs more than 24 bits.
	MaxMagnitude = float64(1 << (Width - FracBits))
	// SignedLimit bounds the range whose codes decode back unambiguously
	// as signed values.
	SignedLimit = MaxMagnitude / 2
	// Step is the quantization step size (2^-20).
	Step = 1.0 / Scale

	modulus = 1 << Width
)

// Code is a 24-bit two's-complement fixed-point value with FracBits
// fractional bits. Bits above bit 23 are always zero.
type Code uint32

// Signed interprets c as a signed 24-bit integer.
func (c Code) Signed() int32 {
	return int32(uint32(c)<<(32-Width)) >> (32 - Width)
}

// Float returns the value c represents in the signed range
// [-SignedLimit, SignedLimit).
func (c Code) Float() float64 {
	return float64(c.Signed()) / Scale
}

// String renders the code as six uppercase hex digits.
func (c Code) String() string {
	return fmt.Sprintf("0x%06X", uint32(c))
}

// Rounding selects how the scaled magnitude is reduced to an integer.
type Rounding uint8

const (
	// RoundTruncate computes floor(|c| * 2^20): the magnitude is truncated
	// towards zero before negation.
	RoundTruncate Rounding = iota
	// RoundFloor computes |floor(c * 2^20)|, i.e. negative coefficients
	// round towards minus infinity. This matches the byte output of the
	// legacy register tool.
	RoundFloor
)

var roundingNames = map[Rounding]string{
	RoundTruncate: "truncate",
	RoundFloor:    "floor",
}

func (r Rounding) String() string {
	if s, ok := roundingNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Rounding(%d)", uint8(r))
}

// Valid reports whether r is a known rounding mode.
func (r Rounding) Valid() bool {
	_, ok := roundingNames[r]
	return ok
}

// ParseRounding maps "truncate" or "floor" (case-insensitive) to a Rounding.
func ParseRounding(s string) (Rounding, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for r, n := range roundingNames {
		if n == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRounding, s)
}

// Quantize converts coef to a Code with [RoundTruncate] and the full
// [MaxMagnitude] range.
func Quantize(coef float64) (Code, error) {
	code, _, err := quantize(coef, RoundTruncate, MaxMagnitude)
	return code, err
}

// quantize returns the code together with the unsigned scaled magnitude.
func quantize(coef float64, rounding Rounding, limit float64) (Code, uint32, error) {
	if !core.IsFinite(coef) {
		return 0, 0, fmt.Errorf("%w: coefficient is not finite: %v", ErrQuantizationOverflow, coef)
	}

	if math.Abs(coef) >= limit {
		return 0, 0, fmt.Errorf("%w: |%v| >= %v", ErrQuantizationOverflow, coef, limit)
	}

	var scaled float64
	switch rounding {
	case RoundFloor:
		scaled = math.Abs(math.Floor(coef * Scale))
	default:
		scaled = math.Floor(math.Abs(coef) * Scale)
	}

	if scaled > Mask {
		return 0, 0, fmt.Errorf("%w: scaled magnitude %v exceeds %d bits", ErrQuantizationOverflow, scaled, Width)
	}

	mag := uint32(scaled)
	if coef > 0 {
		return Code(mag), mag, nil
	}

	return Code((modulus - mag) & Mask), mag, nil
}

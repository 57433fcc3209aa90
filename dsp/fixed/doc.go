// Package fixed quantizes biquad coefficients to 24-bit two's-complement
// fixed-point codes with 20 fractional bits and serializes them for a
// parametric-EQ register interface.
//
// A coefficient c becomes a [Code]: floor(|c| * 2^20) for c > 0, and the
// 24-bit two's-complement negation of that magnitude otherwise. Exact zero
// (and negative zero) therefore takes the negation branch, which wraps to
// code 0x000000. Magnitudes of 16 or more cannot be represented and yield
// [ErrQuantizationOverflow].
//
// Each code is split into a three-byte [Word] using one of two layouts:
//
//	LayoutDirect  Hi = bits[23:16]        Mid = bits[15:8]                  Lo = bits[7:0]
//	LayoutNibble  Hi = bits[7:4]          Mid = bits[15:12] | bits[3:0]<<4  Lo = bits[23:20] | bits[11:8]<<4
//
// The nibble layout mirrors the device register format and does not carry
// bits[19:16].
//
// A [Set] holds the five packed words of one biquad and always serializes
// them in b0, b1, b2, a1, a2 order, as space-separated uppercase hex pairs
// ([Set.Hex]) or unsigned decimal bytes ([Set.Decimal]).
package fixed

package fixed

import "errors"

var (
	// ErrQuantizationOverflow reports a coefficient that does not fit the
	// 24-bit code (|c| >= 16, or >= 8 with [WithStrictRange]) or is not
	// finite.
	ErrQuantizationOverflow = errors.New("fixed: quantization overflow")

	// ErrUnknownLayout is returned by [ParseLayout] and [WithLayout].
	ErrUnknownLayout = errors.New("fixed: unknown layout")

	// ErrUnknownEncoding is returned by [ParseEncoding].
	ErrUnknownEncoding = errors.New("fixed: unknown encoding")

	// ErrUnknownRounding is returned by [ParseRounding] and [WithRounding].
	ErrUnknownRounding = errors.New("fixed: unknown rounding")
)

package fixed

import (
	"fmt"
	"strconv"
	"strings"
)

var coefficientNames = [5]string{"b0", "b1", "b2", "a1", "a2"}

// Set is the packed form of one biquad. Its wire order is b0, b1, b2,
// a1, a2.
type Set struct {
	B0, B1, B2 Word
	A1, A2     Word
}

func setFromWords(w [5]Word) Set {
	return Set{B0: w[0], B1: w[1], B2: w[2], A1: w[3], A2: w[4]}
}

// Words returns the packed words in wire order.
func (s Set) Words() [5]Word {
	return [5]Word{s.B0, s.B1, s.B2, s.A1, s.A2}
}

// Bytes returns the 15 wire bytes.
func (s Set) Bytes() []byte {
	return s.AppendBytes(make([]byte, 0, 15))
}

// AppendBytes appends the 15 wire bytes to dst.
func (s Set) AppendBytes(dst []byte) []byte {
	for _, w := range s.Words() {
		dst = append(dst, w.Hi, w.Mid, w.Lo)
	}
	return dst
}

// Hex renders the wire bytes as space-separated two-digit uppercase hex.
func (s Set) Hex() string {
	return s.Format(EncodingHex)
}

// Decimal renders the wire bytes as space-separated unsigned decimals.
func (s Set) Decimal() string {
	return s.Format(EncodingDecimal)
}

// String is Hex.
func (s Set) String() string {
	return s.Hex()
}

// Format renders the wire bytes with e.
func (s Set) Format(e Encoding) string {
	var sb strings.Builder
	e.write(&sb, s)
	return sb.String()
}

// Encoding selects the textual rendering of packed bytes.
type Encoding uint8

const (
	// EncodingHex renders bytes as "0F".
	EncodingHex Encoding = iota
	// EncodingDecimal renders bytes as "15".
	EncodingDecimal
)

var encodingNames = map[Encoding]string{
	EncodingHex:     "hex",
	EncodingDecimal: "decimal",
}

func (e Encoding) String() string {
	if s, ok := encodingNames[e]; ok {
		return s
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// ParseEncoding maps "hex" or "decimal" (case-insensitive) to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for e, n := range encodingNames {
		if n == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

const hexDigits = "0123456789ABCDEF"

func (e Encoding) write(sb *strings.Builder, s Set) {
	for i, b := range s.Bytes() {
		if i > 0 {
			sb.WriteByte(' ')
		}

		switch e {
		case EncodingDecimal:
			sb.WriteString(strconv.Itoa(int(b)))
		default:
			sb.WriteByte(hexDigits[b>>4])
			sb.WriteByte(hexDigits[b&0xF])
		}
	}
}

// FormatBands renders several sets with e, separated by single spaces.
func FormatBands(e Encoding, sets []Set) string {
	var sb strings.Builder
	for i, s := range sets {
		if i > 0 {
			sb.WriteByte(' ')
		}
		e.write(&sb, s)
	}
	return sb.String()
}

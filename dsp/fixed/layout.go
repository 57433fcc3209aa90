package fixed

import (
	"fmt"
	"strings"
)

// Layout selects how a 24-bit code is split into three bytes.
type Layout uint8

const (
	// LayoutDirect is a big-endian split of the code.
	LayoutDirect Layout = iota
	// LayoutNibble interleaves nibbles as the EQ register file expects.
	LayoutNibble
)

// NibbleMask selects the code bits carried by [LayoutNibble].
const NibbleMask = 0xF0FFFF

var layoutNames = map[Layout]string{
	LayoutDirect: "direct",
	LayoutNibble: "nibble",
}

func (l Layout) String() string {
	if s, ok := layoutNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Layout(%d)", uint8(l))
}

// Valid reports whether l is a known layout.
func (l Layout) Valid() bool {
	_, ok := layoutNames[l]
	return ok
}

// ParseLayout maps "direct" or "nibble" (case-insensitive) to a Layout.
func ParseLayout(s string) (Layout, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for l, n := range layoutNames {
		if n == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// Word is one packed coefficient. Bytes are emitted in Hi, Mid, Lo order.
type Word struct {
	Hi, Mid, Lo byte
}

// Bytes returns the word in emission order.
func (w Word) Bytes() [3]byte {
	return [3]byte{w.Hi, w.Mid, w.Lo}
}

// Split distributes the 24 bits of c over a Word.
func (l Layout) Split(c Code) Word {
	v := uint32(c) & Mask

	switch l {
	case LayoutDirect:
		return Word{
			Hi:  byte(v >> 16),
			Mid: byte(v >> 8),
			Lo:  byte(v),
		}
	case LayoutNibble:
		return Word{
			Hi:  byte(v >> 4 & 0xF),
			Mid: byte(v>>12&0xF | (v&0xF)<<4),
			Lo:  byte(v>>20&0xF | (v>>8&0xF)<<4),
		}
	default:
		panic(fmt.Sprintf("fixed: split with unknown layout %d", uint8(l)))
	}
}

// Join reassembles a code from a Word split with l. For [LayoutNibble]
// bits[19:16] of the result are zero.
func (l Layout) Join(w Word) Code {
	hi, mid, lo := uint32(w.Hi), uint32(w.Mid), uint32(w.Lo)

	switch l {
	case LayoutDirect:
		return Code(hi<<16 | mid<<8 | lo)
	case LayoutNibble:
		return Code((lo&0xF)<<20 | (mid&0xF)<<12 | (lo>>4)<<8 | (hi&0xF)<<4 | mid>>4)
	default:
		panic(fmt.Sprintf("fixed: join with unknown layout %d", uint8(l)))
	}
}

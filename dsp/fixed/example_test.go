package fixed_test

import (
	"fmt"

	"github.com/cwbudde/algo-peq/dsp/filter/biquad"
	"github.com/cwbudde/algo-peq/dsp/fixed"
)

func ExamplePacker_PackSet() {
	p, err := fixed.NewPacker(fixed.WithLayout(fixed.LayoutDirect))
	if err != nil {
		fmt.Println(err)
		return
	}

	set, err := p.PackSet(biquad.Coefficients{B0: 1, B1: -2, B2: 1, A1: -2, A2: 1})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(set.Hex())
	fmt.Println(set.Decimal())
	// Output:
	// 10 00 00 E0 00 00 10 00 00 E0 00 00 10 00 00
	// 16 0 0 224 0 0 16 0 0 224 0 0 16 0 0
}

func ExampleQuantize() {
	for _, c := range []float64{1, -2, 0, 0.5} {
		code, err := fixed.Quantize(c)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(c, code, fixed.LayoutNibble.Split(code))
	}

	_, err := fixed.Quantize(16)
	fmt.Println(err)
	// Output:
	// 1 0x100000 {0 0 1}
	// -2 0xE00000 {0 0 14}
	// 0 0x000000 {0 0 0}
	// 0.5 0x080000 {0 0 0}
	// fixed: quantization overflow: |16| >= 16
}

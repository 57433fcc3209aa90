package fixed

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-peq/dsp/filter/biquad"
)

// Packer quantizes and splits coefficients with a fixed configuration.
// It is immutable and safe for concurrent use.
type Packer struct {
	layout   Layout
	rounding Rounding
	limit    float64
	log      logrus.FieldLogger
}

// NewPacker creates a Packer. The default configuration is
// [LayoutNibble], [RoundTruncate] and the full ±16 range.
func NewPacker(opts ...Option) (*Packer, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Packer{
		layout:   cfg.layout,
		rounding: cfg.rounding,
		limit:    cfg.limit,
		log:      cfg.logger,
	}, nil
}

// Layout returns the configured byte layout.
func (p *Packer) Layout() Layout { return p.layout }

// Rounding returns the configured rounding mode.
func (p *Packer) Rounding() Rounding { return p.rounding }

// Limit returns the exclusive coefficient magnitude bound.
func (p *Packer) Limit() float64 { return p.limit }

// Quantize converts coef to a Code.
func (p *Packer) Quantize(coef float64) (Code, error) {
	code, scaled, err := quantize(coef, p.rounding, p.limit)
	if err != nil {
		return 0, err
	}

	p.log.WithFields(logrus.Fields{
		"coef":     coef,
		"scaled":   scaled,
		"code":     code.String(),
		"rounding": p.rounding.String(),
	}).Debug("fixed: quantized coefficient")

	return code, nil
}

// Pack quantizes coef and splits it with the configured layout.
func (p *Packer) Pack(coef float64) (Word, error) {
	code, err := p.Quantize(coef)
	if err != nil {
		return Word{}, err
	}

	return p.layout.Split(code), nil
}

// PackSet packs each coefficient of c independently. If any coefficient
// fails, the zero Set is returned with an error naming it.
func (p *Packer) PackSet(c biquad.Coefficients) (Set, error) {
	var words [5]Word

	for i, v := range c.Array() {
		w, err := p.Pack(v)
		if err != nil {
			return Set{}, fmt.Errorf("coefficient %s: %w", coefficientNames[i], err)
		}
		words[i] = w
	}

	return setFromWords(words), nil
}

// PackBands packs several coefficient sets, one per EQ band. The first
// failure aborts with no partial result.
func (p *Packer) PackBands(bands []biquad.Coefficients) ([]Set, error) {
	out := make([]Set, len(bands))
	for i, c := range bands {
		s, err := p.PackSet(c)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", i, err)
		}
		out[i] = s
	}

	return out, nil
}

// Realized quantizes every coefficient of c and decodes the codes back
// as signed values: the coefficients the device actually runs. Unlike
// [Unpack] it does not depend on the byte layout.
func (p *Packer) Realized(c biquad.Coefficients) (biquad.Coefficients, error) {
	var v [5]float64

	for i, x := range c.Array() {
		code, err := p.Quantize(x)
		if err != nil {
			return biquad.Coefficients{}, fmt.Errorf("coefficient %s: %w", coefficientNames[i], err)
		}
		v[i] = code.Float()
	}

	return biquad.FromArray(v), nil
}

// Unpack decodes a Set packed with layout l back into coefficients,
// interpreting every code as signed. Bits a layout does not carry read
// as zero.
func Unpack(l Layout, s Set) biquad.Coefficients {
	var v [5]float64
	for i, w := range s.Words() {
		v[i] = l.Join(w).Float()
	}

	return biquad.FromArray(v)
}

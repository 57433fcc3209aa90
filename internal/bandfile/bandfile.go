// Package bandfile loads equalizer band sets from YAML for the command
// line harness.
//
//	sample_rate: 48000
//	layout: nibble      # or direct
//	format: hex         # or decimal
//	rounding: truncate  # or floor
//	bands:
//	  - {frequency: 265, gain: 11.5, q: 1.09}
//	  - {frequency: 2500, gain: -3, q: 2, sample_rate: 96000}
package bandfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-peq/dsp/filter/design"
	"github.com/cwbudde/algo-peq/dsp/fixed"
)

// Band is one entry of the bands list. SampleRate overrides the file-level
// rate when set.
type Band struct {
	Frequency  float64 `yaml:"frequency"`
	Gain       float64 `yaml:"gain"`
	Q          float64 `yaml:"q"`
	SampleRate float64 `yaml:"sample_rate,omitempty"`
}

// File is the decoded document.
type File struct {
	SampleRate float64 `yaml:"sample_rate"`
	Layout     string  `yaml:"layout,omitempty"`
	Format     string  `yaml:"format,omitempty"`
	Rounding   string  `yaml:"rounding,omitempty"`
	Bands      []Band  `yaml:"bands"`
}

// Load reads and validates a band file from path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bandfile: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads and validates a band file from r. Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("bandfile: empty document")
		}
		return nil, fmt.Errorf("bandfile: %w", err)
	}

	if err := file.validate(); err != nil {
		return nil, err
	}

	return &file, nil
}

// Params returns the design parameters of every band.
func (f *File) Params() []design.Params {
	out := make([]design.Params, len(f.Bands))
	for i, b := range f.Bands {
		rate := f.SampleRate
		if b.SampleRate != 0 {
			rate = b.SampleRate
		}
		out[i] = design.Params{GainDB: b.Gain, FreqHz: b.Frequency, SampleRate: rate, Q: b.Q}
	}
	return out
}

// PackerOptions maps the layout and rounding keys to packer options.
// Empty keys contribute no option.
func (f *File) PackerOptions() ([]fixed.Option, error) {
	var opts []fixed.Option

	if f.Layout != "" {
		l, err := fixed.ParseLayout(f.Layout)
		if err != nil {
			return nil, fmt.Errorf("bandfile: %w", err)
		}
		opts = append(opts, fixed.WithLayout(l))
	}

	if f.Rounding != "" {
		r, err := fixed.ParseRounding(f.Rounding)
		if err != nil {
			return nil, fmt.Errorf("bandfile: %w", err)
		}
		opts = append(opts, fixed.WithRounding(r))
	}

	return opts, nil
}

// Encoding returns the output encoding, defaulting to hex.
func (f *File) Encoding() (fixed.Encoding, error) {
	if f.Format == "" {
		return fixed.EncodingHex, nil
	}

	e, err := fixed.ParseEncoding(f.Format)
	if err != nil {
		return 0, fmt.Errorf("bandfile: %w", err)
	}
	return e, nil
}

func (f *File) validate() error {
	if len(f.Bands) == 0 {
		return fmt.Errorf("bandfile: no bands defined")
	}

	for i, p := range f.Params() {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("bandfile: band %d: %w", i, err)
		}
	}

	if _, err := f.PackerOptions(); err != nil {
		return err
	}

	_, err := f.Encoding()

	return err
}

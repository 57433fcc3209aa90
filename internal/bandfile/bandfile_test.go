package bandfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-peq/dsp/filter/design"
	"github.com/cwbudde/algo-peq/dsp/fixed"
)

const threeBands = `
sample_rate: 48000
layout: direct
format: decimal
rounding: floor
bands:
  - {frequency: 265, gain: 11.5, q: 1.09}
  - {frequency: 2500, gain: -3, q: 2}
  - frequency: 9000
    gain: 4
    q: 0.8
    sample_rate: 96000
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(threeBands))
	require.NoError(t, err)

	assert.Equal(t, []design.Params{
		{GainDB: 11.5, FreqHz: 265, SampleRate: 48000, Q: 1.09},
		{GainDB: -3, FreqHz: 2500, SampleRate: 48000, Q: 2},
		{GainDB: 4, FreqHz: 9000, SampleRate: 96000, Q: 0.8},
	}, f.Params())

	enc, err := f.Encoding()
	require.NoError(t, err)
	assert.Equal(t, fixed.EncodingDecimal, enc)

	opts, err := f.PackerOptions()
	require.NoError(t, err)
	p, err := fixed.NewPacker(opts...)
	require.NoError(t, err)
	assert.Equal(t, fixed.LayoutDirect, p.Layout())
	assert.Equal(t, fixed.RoundFloor, p.Rounding())
}

func TestDecode_Defaults(t *testing.T) {
	f, err := Decode(strings.NewReader("sample_rate: 44100\nbands:\n  - {frequency: 100, gain: 1, q: 1}\n"))
	require.NoError(t, err)

	enc, err := f.Encoding()
	require.NoError(t, err)
	assert.Equal(t, fixed.EncodingHex, enc)

	opts, err := f.PackerOptions()
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "", "empty document"},
		{"no bands", "sample_rate: 48000\n", "no bands"},
		{"unknown key", "sample_rate: 48000\nfoo: 1\nbands: [{frequency: 1, gain: 0, q: 1}]\n", "foo"},
		{"bad band", "sample_rate: 48000\nbands: [{frequency: 100, gain: 0, q: 0}]\n", "band 0"},
		{"missing rate", "bands: [{frequency: 100, gain: 0, q: 1}]\n", "sample rate"},
		{"bad layout", "sample_rate: 48000\nlayout: bcd\nbands: [{frequency: 100, gain: 0, q: 1}]\n", "unknown layout"},
		{"bad format", "sample_rate: 48000\nformat: octal\nbands: [{frequency: 100, gain: 0, q: 1}]\n", "unknown encoding"},
		{"bad rounding", "sample_rate: 48000\nrounding: up\nbands: [{frequency: 100, gain: 0, q: 1}]\n", "unknown rounding"},
		{"not yaml", "bands: [\n", "bandfile"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestDecode_InvalidBandWrapsDesignError(t *testing.T) {
	_, err := Decode(strings.NewReader("sample_rate: 48000\nbands: [{frequency: -5, gain: 0, q: 1}]\n"))
	assert.ErrorIs(t, err, design.ErrInvalidParameter)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bands.yaml")
	require.NoError(t, os.WriteFile(path, []byte(threeBands), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Bands, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

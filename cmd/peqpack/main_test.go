package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-peq/dsp/filter/design"
	"github.com/cwbudde/algo-peq/dsp/fixed"
)

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_ReferenceBand(t *testing.T) {
	out, _, err := runArgs(t, "265:11.5:1.09")
	require.NoError(t, err)
	assert.Equal(t, "09 F2 F1 07 02 7E 0D 8A D0 07 02 7E 07 8D D0\n", out)
}

func TestRun_DirectDecimal(t *testing.T) {
	out, _, err := runArgs(t, "-layout", "direct", "-format", "decimal", "265:11.5:1.09")
	require.NoError(t, err)
	assert.Equal(t, "16 47 159 224 39 112 15 173 216 224 39 112 15 221 120\n", out)
}

func TestRun_LegacyFloor(t *testing.T) {
	out, _, err := runArgs(t, "-rounding", "floor", "265:11.5:1.09")
	require.NoError(t, err)
	assert.Equal(t, "09 F2 F1 06 F2 7E 0D 8A D0 06 F2 7E 07 8D D0\n", out)
}

func TestRun_MultipleBands(t *testing.T) {
	out, _, err := runArgs(t, "-layout", "direct", "265:11.5:1.09", "1000:0:0.707")
	require.NoError(t, err)
	assert.Equal(t,
		"10 2F 9F E0 27 70 0F AD D8 E0 27 70 0F DD 78 10 00 00 E2 F4 76 0D 4B B4 E2 F4 76 0D 4B B4\n",
		out)
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bands.yaml")
	doc := "sample_rate: 48000\nlayout: direct\nbands:\n  - {frequency: 265, gain: 11.5, q: 1.09}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := runArgs(t, "-config", path)
	require.NoError(t, err)
	assert.Equal(t, "10 2F 9F E0 27 70 0F AD D8 E0 27 70 0F DD 78\n", out)

	// Flags override the file.
	out, _, err = runArgs(t, "-config", path, "-layout", "nibble", "-format", "decimal")
	require.NoError(t, err)
	assert.Equal(t, "9 242 241 7 2 126 13 138 208 7 2 126 7 141 208\n", out)
}

func TestRun_ConfigRejectsPositionalBands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bands.yaml")
	doc := "bands:\n  - {frequency: 265, gain: 11.5, q: 1.09}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := runArgs(t, "-config", path, "1000:3:1")
	require.ErrorIs(t, err, errUsage)
	assert.ErrorContains(t, err, "1000:3:1")
	assert.Empty(t, out)
}

func TestRun_Report(t *testing.T) {
	out, _, err := runArgs(t, "-report", "265:11.5:1.09")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "Band"))
	assert.Contains(t, lines[1], "Phase dev [rad]")
	assert.Contains(t, lines[1], "Zero radius")
	assert.True(t, strings.HasPrefix(lines[3], "0 "))
	assert.Contains(t, lines[3], "true")
}

func TestRun_VerboseLogsQuantization(t *testing.T) {
	_, stderr, err := runArgs(t, "-v", "265:11.5:1.09")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(stderr, "fixed: quantized coefficient"))
	assert.Contains(t, stderr, "designed band")
	assert.Contains(t, stderr, "code=0x102F9F")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := runArgs(t)
	assert.True(t, errors.Is(err, errUsage))

	_, _, err = runArgs(t, "-bogus")
	assert.True(t, errors.Is(err, errUsage))

	_, _, err = runArgs(t, "-h")
	assert.True(t, errors.Is(err, flag.ErrHelp))

	_, _, err = runArgs(t, "265:11.5")
	assert.ErrorContains(t, err, "want freq:gain:q")

	_, _, err = runArgs(t, "265:x:1")
	assert.Error(t, err)

	_, _, err = runArgs(t, "265:11.5:0")
	assert.ErrorIs(t, err, design.ErrInvalidParameter)

	_, _, err = runArgs(t, "-strict", "12000:40:0.05")
	assert.ErrorIs(t, err, fixed.ErrQuantizationOverflow)

	// b0 = 10 and b2 = -8.18: representable, but outside the signed range.
	_, _, err = runArgs(t, "12000:40:0.05")
	assert.NoError(t, err)

	_, _, err = runArgs(t, "-layout", "bcd", "265:11.5:1.09")
	assert.ErrorIs(t, err, fixed.ErrUnknownLayout)

	_, _, err = runArgs(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseBand(t *testing.T) {
	p, err := parseBand(" 2500 : -3 : 2 ", 96000)
	require.NoError(t, err)
	assert.Equal(t, design.Params{FreqHz: 2500, GainDB: -3, Q: 2, SampleRate: 96000}, p)
}

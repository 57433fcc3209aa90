// Command peqpack derives peaking-EQ biquad coefficients and prints them
// packed as 24-bit fixed-point register bytes.
//
// Usage:
//
//	peqpack [flags] [freq:gain:q ...]
//
// Every positional argument is one band. Bands are designed independently
// and printed on one line, separated by spaces, each as 15 bytes in
// b0 b1 b2 a1 a2 order.
//
// Examples:
//
//	peqpack 265:11.5:1.09
//	peqpack -layout direct -format decimal 265:11.5:1.09 2500:-3:2
//	peqpack -config bands.yaml -report
//	peqpack -v -rounding floor 99:-6:1.09
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-peq/dsp/filter/design"
	"github.com/cwbudde/algo-peq/dsp/fixed"
	"github.com/cwbudde/algo-peq/internal/bandfile"
	"github.com/cwbudde/algo-peq/measure/qerror"
)

var errUsage = errors.New("usage")

type options struct {
	rate     float64
	config   string
	layout   string
	format   string
	rounding string
	strict   bool
	report   bool
	verbose  bool
	bands    []string
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	bands, packOpts, enc, err := resolve(opts)
	if err != nil {
		return err
	}

	packOpts = append(packOpts, fixed.WithLogger(log))
	if opts.strict {
		packOpts = append(packOpts, fixed.WithStrictRange())
	}

	packer, err := fixed.NewPacker(packOpts...)
	if err != nil {
		return err
	}

	coeffs, err := design.PeakBands(bands)
	if err != nil {
		return err
	}

	for i, c := range coeffs {
		log.WithFields(logrus.Fields{
			"band":   i,
			"params": bands[i].String(),
			"b0":     c.B0,
			"b1":     c.B1,
			"b2":     c.B2,
			"a1":     c.A1,
			"a2":     c.A2,
		}).Debug("designed band")
	}

	sets, err := packer.PackBands(coeffs)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(stdout, fixed.FormatBands(enc, sets)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if !opts.report {
		return nil
	}

	return printReport(stdout, packer, bands)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("peqpack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&opts.rate, "rate", 48000, "sample rate in Hz for positional bands")
	fs.StringVar(&opts.config, "config", "", "YAML band file (no positional bands allowed)")
	fs.StringVar(&opts.layout, "layout", "", "byte layout: nibble or direct (default nibble)")
	fs.StringVar(&opts.format, "format", "", "output encoding: hex or decimal (default hex)")
	fs.StringVar(&opts.rounding, "rounding", "", "magnitude rounding: truncate or floor (default truncate)")
	fs.BoolVar(&opts.strict, "strict", false, "reject coefficients outside the signed ±8 range")
	fs.BoolVar(&opts.report, "report", false, "print a quantization fidelity table")
	fs.BoolVar(&opts.verbose, "v", false, "log quantization diagnostics to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: peqpack [flags] [freq:gain:q ...]\n\n")
		fmt.Fprintf(stderr, "Prints peaking-EQ biquad coefficients as packed register bytes.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  peqpack 265:11.5:1.09\n")
		fmt.Fprintf(stderr, "  peqpack -layout direct -format decimal 265:11.5:1.09 2500:-3:2\n")
		fmt.Fprintf(stderr, "  peqpack -config bands.yaml -report\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, err
		}
		return opts, fmt.Errorf("%w: %v", errUsage, err)
	}

	opts.bands = fs.Args()
	switch {
	case opts.config == "" && len(opts.bands) == 0:
		fs.Usage()
		return opts, fmt.Errorf("%w: no bands given", errUsage)
	case opts.config != "" && len(opts.bands) > 0:
		return opts, fmt.Errorf("%w: -config cannot be combined with positional bands %v", errUsage, opts.bands)
	}

	return opts, nil
}

// resolve merges the band file (if any) with the command line. Flags
// override the file's layout, format and rounding keys.
func resolve(opts options) ([]design.Params, []fixed.Option, fixed.Encoding, error) {
	var (
		bands    []design.Params
		packOpts []fixed.Option
	)

	enc := fixed.EncodingHex

	if opts.config != "" {
		file, err := bandfile.Load(opts.config)
		if err != nil {
			return nil, nil, 0, err
		}

		bands = file.Params()

		packOpts, err = file.PackerOptions()
		if err != nil {
			return nil, nil, 0, err
		}

		enc, err = file.Encoding()
		if err != nil {
			return nil, nil, 0, err
		}
	} else {
		for _, arg := range opts.bands {
			p, err := parseBand(arg, opts.rate)
			if err != nil {
				return nil, nil, 0, err
			}
			bands = append(bands, p)
		}
	}

	if opts.layout != "" {
		l, err := fixed.ParseLayout(opts.layout)
		if err != nil {
			return nil, nil, 0, err
		}
		packOpts = append(packOpts, fixed.WithLayout(l))
	}

	if opts.rounding != "" {
		r, err := fixed.ParseRounding(opts.rounding)
		if err != nil {
			return nil, nil, 0, err
		}
		packOpts = append(packOpts, fixed.WithRounding(r))
	}

	if opts.format != "" {
		e, err := fixed.ParseEncoding(opts.format)
		if err != nil {
			return nil, nil, 0, err
		}
		enc = e
	}

	return bands, packOpts, enc, nil
}

// parseBand parses "freq:gain:q".
func parseBand(s string, rate float64) (design.Params, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return design.Params{}, fmt.Errorf("band %q: want freq:gain:q", s)
	}

	var v [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return design.Params{}, fmt.Errorf("band %q: %w", s, err)
		}
		v[i] = f
	}

	return design.Params{FreqHz: v[0], GainDB: v[1], Q: v[2], SampleRate: rate}, nil
}

func printReport(w io.Writer, packer *fixed.Packer, bands []design.Params) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tFreq [Hz]\tGain [dB]\tQ\tMax coef err\tMax dev [dB]\tat [Hz]\tPhase dev [rad]\tFFT dev [dB]\tPole radius\tZero radius\tStable\n")
	fmt.Fprintf(tw, "----\t---------\t---------\t-\t------------\t------------\t-------\t---------------\t------------\t-----------\t-----------\t------\n")

	for i, p := range bands {
		ideal, err := design.Peak(p)
		if err != nil {
			return err
		}

		realized, err := packer.Realized(ideal)
		if err != nil {
			return fmt.Errorf("band %d: %w", i, err)
		}

		rep, err := qerror.Compare(ideal, realized, p.SampleRate)
		if err != nil {
			return fmt.Errorf("band %d: %w", i, err)
		}

		fmt.Fprintf(tw, "%d\t%g\t%g\t%g\t%.3g\t%.5f\t%.1f\t%.2e\t%.5f\t%.6f\t%.6f\t%t\n",
			i, p.FreqHz, p.GainDB, p.Q,
			rep.MaxCoefficientError,
			rep.MaxDeviationDB, rep.MaxDeviationHz,
			rep.MaxPhaseDeviation,
			rep.SpectralDeviationDB,
			rep.QuantizedPoleRadius,
			rep.QuantizedZeroRadius,
			rep.Stable,
		)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}

	return nil
}

package fixed

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	defaultLayout   = LayoutNibble
	defaultRounding = RoundTruncate
)

type config struct {
	layout   Layout
	rounding Rounding
	limit    float64
	logger   logrus.FieldLogger
}

func defaultConfig() config {
	return config{
		layout:   defaultLayout,
		rounding: defaultRounding,
		limit:    MaxMagnitude,
		logger:   logrus.StandardLogger(),
	}
}

// Option configures a [Packer].
type Option func(*config) error

// WithLayout sets the byte layout (default [LayoutNibble]).
func WithLayout(l Layout) Option {
	return func(cfg *config) error {
		if !l.Valid() {
			return fmt.Errorf("%w: %d", ErrUnknownLayout, uint8(l))
		}

		cfg.layout = l

		return nil
	}
}

// WithRounding sets how scaled magnitudes are rounded (default
// [RoundTruncate]).
func WithRounding(r Rounding) Option {
	return func(cfg *config) error {
		if !r.Valid() {
			return fmt.Errorf("%w: %d", ErrUnknownRounding, uint8(r))
		}

		cfg.rounding = r

		return nil
	}
}

// WithStrictRange rejects coefficients with |c| >= [SignedLimit], so that
// every packed code decodes back to its signed value.
func WithStrictRange() Option {
	return func(cfg *config) error {
		cfg.limit = SignedLimit
		return nil
	}
}

// WithLogger sets the logger receiving per-coefficient debug records
// (default logrus.StandardLogger()).
func WithLogger(l logrus.FieldLogger) Option {
	return func(cfg *config) error {
		if l == nil {
			return fmt.Errorf("fixed: logger must not be nil")
		}

		cfg.logger = l

		return nil
	}
}

package qerror

const (
	defaultGridPoints = 512
	defaultMinFreq    = 20
	defaultMaxRatio   = 0.45 // of the sample rate
	defaultFFTSize    = 1 << 15
)

// Config controls the resolution of [Compare].
type Config struct {
	GridPoints int     // log-spaced evaluation points
	MinFreq    float64 // Hz; lower grid edge
	MaxFreq    float64 // Hz; upper grid edge, 0 means 0.45*sampleRate
	FFTSize    int     // impulse response length, power of two
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults used by Compare.
func DefaultConfig() Config {
	return Config{
		GridPoints: defaultGridPoints,
		MinFreq:    defaultMinFreq,
		FFTSize:    defaultFFTSize,
	}
}

// WithGridPoints sets the number of closed-form evaluation points.
func WithGridPoints(n int) Option {
	return func(cfg *Config) {
		if n >= 2 {
			cfg.GridPoints = n
		}
	}
}

// WithFrequencyRange sets the evaluated band in Hz.
func WithFrequencyRange(minHz, maxHz float64) Option {
	return func(cfg *Config) {
		if minHz > 0 && maxHz > minHz {
			cfg.MinFreq = minHz
			cfg.MaxFreq = maxHz
		}
	}
}

// WithFFTSize sets the impulse response / FFT length.
func WithFFTSize(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.FFTSize = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

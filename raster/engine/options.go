package engine

import (
	"runtime"

	"github.com/cwbudde/algo-raster/raster/fft"
	"github.com/cwbudde/algo-raster/raster/filter"
)

// Config holds engine-wide filter settings.
type Config struct {
	Workers    int
	BlurRadius int
	BlurSigma  float64
	Backend    fft.Backend
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns one worker per CPU, the default Gaussian (radius 2,
// sigma 1.0) and the radix-2 FFT backend.
func DefaultConfig() Config {
	return Config{
		Workers:    runtime.GOMAXPROCS(0),
		BlurRadius: filter.DefaultRadius,
		BlurSigma:  filter.DefaultSigma,
		Backend:    fft.Radix2(),
	}
}

// WithWorkers limits row-level parallelism. Values < 1 are ignored.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithBlurRadius sets the GaussianBlur radius. Negative values are ignored.
func WithBlurRadius(r int) Option {
	return func(cfg *Config) {
		if r >= 0 {
			cfg.BlurRadius = r
		}
	}
}

// WithBlurSigma sets the GaussianBlur sigma. Non-positive values are ignored.
func WithBlurSigma(sigma float64) Option {
	return func(cfg *Config) {
		if sigma > 0 {
			cfg.BlurSigma = sigma
		}
	}
}

// WithFFTBackend selects the line transform used by the frequency
// operations. nil is ignored.
func WithFFTBackend(b fft.Backend) Option {
	return func(cfg *Config) {
		if b != nil {
			cfg.Backend = b
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

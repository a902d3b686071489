package filter

import "runtime"

// Defaults for GaussianBlur.
const (
	DefaultRadius = 2
	DefaultSigma  = 1.0
)

// Config holds filter settings.
type Config struct {
	Radius  int
	Sigma   float64
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns radius 2, sigma 1.0 and one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Radius:  DefaultRadius,
		Sigma:   DefaultSigma,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithRadius sets the Gaussian kernel radius. Negative values are ignored.
func WithRadius(r int) Option {
	return func(cfg *Config) {
		if r >= 0 {
			cfg.Radius = r
		}
	}
}

// WithSigma sets the Gaussian standard deviation. Non-positive values are ignored.
func WithSigma(sigma float64) Option {
	return func(cfg *Config) {
		if sigma > 0 {
			cfg.Sigma = sigma
		}
	}
}

// WithWorkers limits the number of concurrent row bands.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
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

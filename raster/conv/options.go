package conv

import "runtime"

// Boundary selects how pixels near the image edge are handled.
type Boundary int

const (
	// BoundaryClamp clamps out-of-range sample coordinates to the edge.
	BoundaryClamp Boundary = iota
	// BoundarySkip leaves pixels within the kernel radius of an edge untouched.
	BoundarySkip
)

// String returns the policy name.
func (b Boundary) String() string {
	switch b {
	case BoundaryClamp:
		return "clamp"
	case BoundarySkip:
		return "skip"
	default:
		return "unknown"
	}
}

// AlphaPolicy selects what is written to the alpha channel of output pixels.
type AlphaPolicy int

const (
	// AlphaPreserve copies the source alpha.
	AlphaPreserve AlphaPolicy = iota
	// AlphaOpaque writes 255.
	AlphaOpaque
)

// Config holds convolution settings.
type Config struct {
	Boundary Boundary
	Alpha    AlphaPolicy
	Workers  int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns clamp sampling, preserved alpha and one worker per
// available CPU.
func DefaultConfig() Config {
	return Config{
		Boundary: BoundaryClamp,
		Alpha:    AlphaPreserve,
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// WithBoundary sets the boundary policy.
func WithBoundary(b Boundary) Option {
	return func(cfg *Config) {
		cfg.Boundary = b
	}
}

// WithAlpha sets the alpha policy.
func WithAlpha(a AlphaPolicy) Option {
	return func(cfg *Config) {
		cfg.Alpha = a
	}
}

// WithWorkers limits the number of concurrent row bands.
// Values < 1 are ignored.
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

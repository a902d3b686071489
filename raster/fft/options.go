package fft

import "runtime"

// Config holds transform settings.
type Config struct {
	Backend Backend
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the radix-2 backend and one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Backend: Radix2(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithBackend selects the line transform backend. nil is ignored.
func WithBackend(b Backend) Option {
	return func(cfg *Config) {
		if b != nil {
			cfg.Backend = b
		}
	}
}

// WithWorkers limits the number of rows or columns transformed concurrently.
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

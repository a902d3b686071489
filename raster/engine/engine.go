package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cwbudde/algo-raster/internal/cpu"
	"github.com/cwbudde/algo-raster/raster/fft"
	"github.com/cwbudde/algo-raster/raster/filter"
	"github.com/cwbudde/algo-raster/raster/morph"
	"github.com/cwbudde/algo-raster/raster/pixel"
)

// Engine runs raster operations on caller-owned BGRA buffers.
// Filter methods are safe for concurrent use on distinct buffers.
type Engine struct {
	cfg  Config
	pool *pixel.Pool

	mu       sync.RWMutex
	spectrum *fft.Spectrum
}

// New returns an Engine with no spectral data.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:  ApplyOptions(opts...),
		pool: pixel.NewPool(),
	}
	Logger().Info("engine: created",
		"workers", e.cfg.Workers,
		"backend", e.cfg.Backend.Name(),
		"blur_radius", e.cfg.BlurRadius,
		"blur_sigma", e.cfg.BlurSigma,
		"simd", cpu.DetectFeatures().Best().String())
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// run validates the geometry, applies fn to a pooled copy of data and
// copies the result back only when fn succeeds. Panics in fn become
// computation faults.
func (e *Engine) run(op Operation, data []byte, width, height int, fn func(*pixel.Buffer) error) (err error) {
	start := time.Now()
	log := Logger()

	src, werr := pixel.Wrap(data, width, height)
	if werr != nil {
		return &Error{Op: op, Kind: KindInvalidGeometry, Err: werr}
	}

	scratch := e.pool.Snapshot(src)
	defer e.pool.Put(scratch)

	defer func() {
		if r := recover(); r != nil {
			err = &Error{Op: op, Kind: KindComputationFault, Err: fmt.Errorf("recovered panic: %v", r)}
			log.Warn("engine: fault", "op", string(op), "err", err)
		}
	}()

	if ferr := fn(scratch); ferr != nil {
		cerr := classify(op, ferr)
		if cerr.Kind == KindComputationFault || cerr.Kind == KindProtocolViolation {
			log.Warn("engine: "+cerr.Kind.String(), "op", string(op), "err", ferr)
		}
		return cerr
	}

	debug := log.Enabled(context.Background(), slog.LevelDebug)
	changed := true
	if debug {
		changed = !scratch.Equal(src)
	}
	if err := src.CopyFrom(scratch); err != nil {
		return &Error{Op: op, Kind: KindComputationFault, Err: err}
	}
	if debug {
		log.Debug("engine: op",
			"op", string(op),
			"width", width,
			"height", height,
			"changed", changed,
			"duration", time.Since(start))
	}
	return nil
}

func (e *Engine) filterOptions() []filter.Option {
	return []filter.Option{
		filter.WithRadius(e.cfg.BlurRadius),
		filter.WithSigma(e.cfg.BlurSigma),
		filter.WithWorkers(e.cfg.Workers),
	}
}

func (e *Engine) morphOptions() []morph.Option {
	return []morph.Option{morph.WithWorkers(e.cfg.Workers)}
}

func (e *Engine) fftOptions() []fft.Option {
	return []fft.Option{fft.WithBackend(e.cfg.Backend), fft.WithWorkers(e.cfg.Workers)}
}

// Grayscale replaces B, G and R with the pixel's luma. Alpha is untouched.
func (e *Engine) Grayscale(data []byte, width, height int) error {
	return e.run(OpGrayscale, data, width, height, func(b *pixel.Buffer) error {
		return filter.Grayscale(b, e.filterOptions()...)
	})
}

// GaussianBlur blurs B, G and R with the configured radius and sigma.
func (e *Engine) GaussianBlur(data []byte, width, height int) error {
	return e.run(OpGaussianBlur, data, width, height, func(b *pixel.Buffer) error {
		return filter.GaussianBlur(b, e.filterOptions()...)
	})
}

// Sobel writes the gradient magnitude of the grayscale image.
func (e *Engine) Sobel(data []byte, width, height int) error {
	return e.run(OpSobel, data, width, height, func(b *pixel.Buffer) error {
		return filter.Sobel(b, e.filterOptions()...)
	})
}

// Laplacian writes the clamped Laplacian response of the grayscale image.
func (e *Engine) Laplacian(data []byte, width, height int) error {
	return e.run(OpLaplacian, data, width, height, func(b *pixel.Buffer) error {
		return filter.Laplacian(b, e.filterOptions()...)
	})
}

// Binarize writes 255 where the luma exceeds threshold and 0 elsewhere.
func (e *Engine) Binarize(data []byte, width, height, threshold int) error {
	return e.run(OpBinarize, data, width, height, func(b *pixel.Buffer) error {
		return filter.Binarize(b, threshold, e.filterOptions()...)
	})
}

// Dilate writes the window maximum of luma over the interior pixels.
func (e *Engine) Dilate(data []byte, width, height, kernelSize int) error {
	return e.run(OpDilate, data, width, height, func(b *pixel.Buffer) error {
		return morph.Dilate(b, kernelSize, e.morphOptions()...)
	})
}

// Erode writes the window minimum of luma over the interior pixels.
func (e *Engine) Erode(data []byte, width, height, kernelSize int) error {
	return e.run(OpErode, data, width, height, func(b *pixel.Buffer) error {
		return morph.Erode(b, kernelSize, e.morphOptions()...)
	})
}

// Open runs Erode then Dilate.
func (e *Engine) Open(data []byte, width, height, kernelSize int) error {
	return e.run(OpOpen, data, width, height, func(b *pixel.Buffer) error {
		return morph.Open(b, kernelSize, e.morphOptions()...)
	})
}

// Close runs Dilate then Erode.
func (e *Engine) Close(data []byte, width, height, kernelSize int) error {
	return e.run(OpClose, data, width, height, func(b *pixel.Buffer) error {
		return morph.Close(b, kernelSize, e.morphOptions()...)
	})
}

// Median writes the per-channel window median over the interior pixels.
func (e *Engine) Median(data []byte, width, height, kernelSize int) error {
	return e.run(OpMedian, data, width, height, func(b *pixel.Buffer) error {
		return morph.Median(b, kernelSize, e.morphOptions()...)
	})
}

// ForwardTransform computes the 2D spectrum of the image's luma, writes
// its log-magnitude view into data and keeps the spectrum in the engine,
// replacing any spectrum held before. The spectrum is stored only when the
// call succeeds.
func (e *Engine) ForwardTransform(data []byte, width, height int) (*fft.Spectrum, error) {
	var spec *fft.Spectrum
	err := e.run(OpForwardTransform, data, width, height, func(b *pixel.Buffer) error {
		s, err := fft.Transform(b, e.fftOptions()...)
		if err != nil {
			return err
		}
		if err := s.Visualize(b); err != nil {
			return err
		}
		spec = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.spectrum = spec
	e.mu.Unlock()
	return spec, nil
}

// InverseTransform reconstructs the image from the held spectrum into
// data. With no spectrum held it fails with a protocol violation and data
// is not touched. The spectrum stays held after the call.
func (e *Engine) InverseTransform(data []byte, width, height int) error {
	e.mu.RLock()
	spec := e.spectrum
	e.mu.RUnlock()

	if spec == nil {
		err := &Error{Op: OpInverseTransform, Kind: KindProtocolViolation, Err: ErrNoSpectralData}
		Logger().Warn("engine: protocol violation", "op", string(OpInverseTransform), "err", ErrNoSpectralData)
		return err
	}
	return e.InverseTransformWith(spec, data, width, height)
}

// InverseTransformWith reconstructs the image from spec without touching
// the engine's held spectrum. A nil spec is a protocol violation.
func (e *Engine) InverseTransformWith(spec *fft.Spectrum, data []byte, width, height int) error {
	if spec == nil {
		return &Error{Op: OpInverseTransform, Kind: KindProtocolViolation, Err: ErrNoSpectralData}
	}
	return e.run(OpInverseTransform, data, width, height, func(b *pixel.Buffer) error {
		return spec.Reconstruct(b, e.fftOptions()...)
	})
}

// HasSpectralData reports whether a spectrum is held.
func (e *Engine) HasSpectralData() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.spectrum != nil
}

// ClearSpectralData drops the held spectrum. Clearing an empty engine is a
// no-op.
func (e *Engine) ClearSpectralData() {
	e.mu.Lock()
	e.spectrum = nil
	e.mu.Unlock()
}

// SpectralData returns the held spectrum, or nil.
func (e *Engine) SpectralData() *fft.Spectrum {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.spectrum
}

// Apply dispatches op by name. Only the Params field op needs is read.
func (e *Engine) Apply(op Operation, data []byte, width, height int, p Params) error {
	switch op {
	case OpGrayscale:
		return e.Grayscale(data, width, height)
	case OpGaussianBlur:
		return e.GaussianBlur(data, width, height)
	case OpSobel:
		return e.Sobel(data, width, height)
	case OpLaplacian:
		return e.Laplacian(data, width, height)
	case OpBinarize:
		return e.Binarize(data, width, height, p.Threshold)
	case OpDilate:
		return e.Dilate(data, width, height, p.KernelSize)
	case OpErode:
		return e.Erode(data, width, height, p.KernelSize)
	case OpOpen:
		return e.Open(data, width, height, p.KernelSize)
	case OpClose:
		return e.Close(data, width, height, p.KernelSize)
	case OpMedian:
		return e.Median(data, width, height, p.KernelSize)
	case OpForwardTransform:
		_, err := e.ForwardTransform(data, width, height)
		return err
	case OpInverseTransform:
		return e.InverseTransform(data, width, height)
	default:
		return &Error{Op: op, Kind: KindInvalidParameter, Err: fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))}
	}
}

package fft

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by backends and transforms.
var (
	ErrNotPowerOfTwo   = errors.New("fft: length is not a power of two")
	ErrLengthMismatch  = errors.New("fft: real and imaginary lengths differ")
	ErrUnknownBackend  = errors.New("fft: unknown backend")
	ErrGeometry        = errors.New("fft: buffer geometry does not match spectrum")
	ErrNilSpectrum     = errors.New("fft: nil spectrum")
	ErrNilBuffer       = errors.New("fft: nil buffer")
	ErrPlaneDimensions = errors.New("fft: plane dimensions must be powers of two")
)

// Backend performs one in-place 1D complex transform. inverse transforms
// must include the 1/n normalization.
type Backend interface {
	Name() string
	Transform(re, im []float64, inverse bool) error
}

func checkLine(re, im []float64) error {
	if len(re) != len(im) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(re), len(im))
	}
	if !IsPowerOfTwo(len(re)) {
		return fmt.Errorf("%w: %d", ErrNotPowerOfTwo, len(re))
	}
	return nil
}

type radix2 struct{}

// Radix2 returns the built-in iterative Cooley-Tukey backend.
func Radix2() Backend { return radix2{} }

func (radix2) Name() string { return "radix2" }

func (radix2) Transform(re, im []float64, inverse bool) error {
	if err := checkLine(re, im); err != nil {
		return err
	}
	FFT1D(re, im, inverse)
	return nil
}

// AlgoFFT delegates line transforms to algo-fft plans. Plans are created
// lazily per length and pooled, so one AlgoFFT can serve concurrent rows.
type AlgoFFT struct {
	mu    sync.Mutex
	plans map[int]*sync.Pool
}

// NewAlgoFFT returns an AlgoFFT backend with an empty plan cache.
func NewAlgoFFT() *AlgoFFT {
	return &AlgoFFT{plans: make(map[int]*sync.Pool)}
}

// Name returns "algofft".
func (a *AlgoFFT) Name() string { return "algofft" }

func (a *AlgoFFT) pool(n int) *sync.Pool {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.plans[n]
	if !ok {
		p = &sync.Pool{}
		a.plans[n] = p
	}
	return p
}

// Transform runs the forward or normalized inverse transform of (re, im).
func (a *AlgoFFT) Transform(re, im []float64, inverse bool) error {
	if err := checkLine(re, im); err != nil {
		return err
	}
	n := len(re)
	if n == 1 {
		return nil
	}
	pool := a.pool(n)

	plan, _ := pool.Get().(*algofft.Plan[complex128])
	if plan == nil {
		var err error
		plan, err = algofft.NewPlan64(n)
		if err != nil {
			return fmt.Errorf("fft: failed to create plan: %w", err)
		}
	}
	defer pool.Put(plan)

	buf := make([]complex128, n)
	for i := range buf {
		buf[i] = complex(re[i], im[i])
	}

	var err error
	if inverse {
		err = plan.Inverse(buf, buf)
	} else {
		err = plan.Forward(buf, buf)
	}
	if err != nil {
		return fmt.Errorf("fft: algo-fft transform failed: %w", err)
	}

	for i, c := range buf {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return nil
}

// BackendByName resolves "radix2" or "algofft" (case-insensitive).
// An empty name selects Radix2.
func BackendByName(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "radix2":
		return Radix2(), nil
	case "algofft", "algo-fft":
		return NewAlgoFFT(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

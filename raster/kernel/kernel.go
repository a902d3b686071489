// Package kernel defines the odd-sized weight grids applied by the
// convolution engine and generates the kernels used by the spatial filters.
//
// Weights are addressed by offset from the kernel center, so a kernel of
// size 2r+1 covers offsets -r..r on each axis. Gaussian kernels are
// normalized to sum to 1; the fixed gradient kernels are raw.
package kernel

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by kernel constructors.
var (
	ErrEvenSize      = errors.New("kernel: size must be odd and positive")
	ErrWeightCount   = errors.New("kernel: weight count does not match size")
	ErrInvalidRadius = errors.New("kernel: radius must be >= 0")
	ErrInvalidSigma  = errors.New("kernel: sigma must be > 0")
)

// Kernel is a square (2r+1)x(2r+1) weight grid stored row-major.
type Kernel struct {
	size    int
	weights []float64
}

// New returns a square kernel of the given odd size. weights are copied
// and must have size*size entries in row-major order.
func New(size int, weights []float64) (Kernel, error) {
	if size <= 0 || size%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: %d", ErrEvenSize, size)
	}
	if len(weights) != size*size {
		return Kernel{}, fmt.Errorf("%w: got %d, want %d", ErrWeightCount, len(weights), size*size)
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	return Kernel{size: size, weights: w}, nil
}

func mustNew(size int, weights ...float64) Kernel {
	k, err := New(size, weights)
	if err != nil {
		panic(err)
	}
	return k
}

// Fixed 3x3 kernels used by the edge filters.
var (
	SobelX = mustNew(3,
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	)
	SobelY = mustNew(3,
		1, 2, 1,
		0, 0, 0,
		-1, -2, -1,
	)
	Laplacian = mustNew(3,
		0, -1, 0,
		-1, 4, -1,
		0, -1, 0,
	)
)

// Size returns the edge length.
func (k Kernel) Size() int { return k.size }

// Radius returns size/2.
func (k Kernel) Radius() int { return k.size / 2 }

// At returns the weight at offset (dx, dy) from the center.
func (k Kernel) At(dx, dy int) float64 {
	r := k.Radius()
	return k.weights[(dy+r)*k.size+dx+r]
}

// Weights returns a copy of the row-major weights.
func (k Kernel) Weights() []float64 {
	w := make([]float64, len(k.weights))
	copy(w, k.weights)
	return w
}

// Sum returns the sum of all weights.
func (k Kernel) Sum() float64 {
	return sum(k.weights)
}

// Kernel1D is a 1x(2r+1) weight row.
type Kernel1D struct {
	weights []float64
}

// New1D returns a 1D kernel of odd length. weights are copied.
func New1D(weights []float64) (Kernel1D, error) {
	if len(weights) == 0 || len(weights)%2 == 0 {
		return Kernel1D{}, fmt.Errorf("%w: %d", ErrEvenSize, len(weights))
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	return Kernel1D{weights: w}, nil
}

// Gaussian returns a normalized 1D Gaussian of the given radius:
// w[i] = exp(-i²/(2σ²)) for i in -radius..radius, scaled to sum to 1.
func Gaussian(radius int, sigma float64) (Kernel1D, error) {
	if radius < 0 {
		return Kernel1D{}, fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return Kernel1D{}, fmt.Errorf("%w: %v", ErrInvalidSigma, sigma)
	}

	w := make([]float64, 2*radius+1)
	twoSigmaSq := 2 * sigma * sigma
	for i := -radius; i <= radius; i++ {
		w[i+radius] = math.Exp(-float64(i*i) / twoSigmaSq)
	}
	inv := 1 / sum(w)
	for i := range w {
		w[i] *= inv
	}
	return New1D(w)
}

// Len returns the number of taps.
func (k Kernel1D) Len() int { return len(k.weights) }

// Radius returns Len()/2.
func (k Kernel1D) Radius() int { return len(k.weights) / 2 }

// At returns the weight at offset i from the center.
func (k Kernel1D) At(i int) float64 {
	return k.weights[i+k.Radius()]
}

// Weights returns a copy of the taps.
func (k Kernel1D) Weights() []float64 {
	w := make([]float64, len(k.weights))
	copy(w, k.weights)
	return w
}

// Sum returns the sum of all taps.
func (k Kernel1D) Sum() float64 {
	return sum(k.weights)
}

// Outer returns the square kernel k ⊗ k, the 2D kernel equivalent to a
// horizontal pass followed by a vertical pass with k.
func (k Kernel1D) Outer() Kernel {
	n := len(k.weights)
	w := make([]float64, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			w[y*n+x] = k.weights[y] * k.weights[x]
		}
	}
	return Kernel{size: n, weights: w}
}

func sum(w []float64) float64 {
	s := 0.0
	for _, v := range w {
		s += v
	}
	return s
}

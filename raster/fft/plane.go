package fft

import (
	"fmt"

	"github.com/cwbudde/algo-raster/raster/conv"
)

// Plane is a row-major complex image split into real and imaginary parts.
// Width and Height are powers of two.
type Plane struct {
	Width  int
	Height int
	Re     []float64
	Im     []float64
}

// NewPlane returns a zeroed plane. Both dimensions must be powers of two.
func NewPlane(width, height int) (*Plane, error) {
	if !IsPowerOfTwo(width) || !IsPowerOfTwo(height) {
		return nil, fmt.Errorf("%w: %dx%d", ErrPlaneDimensions, width, height)
	}
	return &Plane{
		Width:  width,
		Height: height,
		Re:     make([]float64, width*height),
		Im:     make([]float64, width*height),
	}, nil
}

// Clone returns a deep copy.
func (p *Plane) Clone() *Plane {
	c := &Plane{
		Width:  p.Width,
		Height: p.Height,
		Re:     make([]float64, len(p.Re)),
		Im:     make([]float64, len(p.Im)),
	}
	copy(c.Re, p.Re)
	copy(c.Im, p.Im)
	return c
}

// Forward2D transforms every row, then every column, in place.
func (p *Plane) Forward2D(opts ...Option) error {
	cfg := ApplyOptions(opts...)
	if err := p.rows(cfg, false); err != nil {
		return err
	}
	return p.columns(cfg, false)
}

// Inverse2D transforms every column, then every row, in place, undoing
// Forward2D.
func (p *Plane) Inverse2D(opts ...Option) error {
	cfg := ApplyOptions(opts...)
	if err := p.columns(cfg, true); err != nil {
		return err
	}
	return p.rows(cfg, true)
}

func (p *Plane) rows(cfg Config, inverse bool) error {
	w := p.Width
	return conv.Rows(cfg.Workers, p.Height, func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			if err := cfg.Backend.Transform(p.Re[y*w:(y+1)*w], p.Im[y*w:(y+1)*w], inverse); err != nil {
				return fmt.Errorf("fft: row %d: %w", y, err)
			}
		}
		return nil
	})
}

func (p *Plane) columns(cfg Config, inverse bool) error {
	w, h := p.Width, p.Height
	return conv.Rows(cfg.Workers, w, func(x0, x1 int) error {
		re := make([]float64, h)
		im := make([]float64, h)
		for x := x0; x < x1; x++ {
			for y := 0; y < h; y++ {
				re[y] = p.Re[y*w+x]
				im[y] = p.Im[y*w+x]
			}
			if err := cfg.Backend.Transform(re, im, inverse); err != nil {
				return fmt.Errorf("fft: column %d: %w", x, err)
			}
			for y := 0; y < h; y++ {
				p.Re[y*w+x] = re[y]
				p.Im[y*w+x] = im[y]
			}
		}
		return nil
	})
}

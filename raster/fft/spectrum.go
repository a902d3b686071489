package fft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-raster/raster/pixel"
)

// Spectrum is the frequency-domain state of one image: the padded complex
// planes plus the original dimensions. A Spectrum is immutable after
// Transform returns and safe for concurrent readers.
type Spectrum struct {
	width  int
	height int
	plane  *Plane
	cfg    Config
}

// Transform reduces buf to luma, places it in the top-left corner of a
// zero plane padded to the next power of two on each axis and returns its
// 2D forward transform. buf is not modified.
func Transform(buf *pixel.Buffer, opts ...Option) (*Spectrum, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	cfg := ApplyOptions(opts...)
	w, h := buf.Width(), buf.Height()

	plane, err := NewPlane(NextPowerOfTwo(w), NextPowerOfTwo(h))
	if err != nil {
		return nil, err
	}
	pix := buf.Pix()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := buf.Offset(x, y)
			plane.Re[y*plane.Width+x] = float64(pixel.Luma(pix[i+pixel.ChannelB], pix[i+pixel.ChannelG], pix[i+pixel.ChannelR]))
		}
	}

	if err := plane.Forward2D(WithBackend(cfg.Backend), WithWorkers(cfg.Workers)); err != nil {
		return nil, err
	}
	return &Spectrum{width: w, height: h, plane: plane, cfg: cfg}, nil
}

// Width returns the original image width.
func (s *Spectrum) Width() int { return s.width }

// Height returns the original image height.
func (s *Spectrum) Height() int { return s.height }

// PaddedWidth returns the power-of-two plane width.
func (s *Spectrum) PaddedWidth() int { return s.plane.Width }

// PaddedHeight returns the power-of-two plane height.
func (s *Spectrum) PaddedHeight() int { return s.plane.Height }

// Bin returns the complex coefficient at plane position (u, v).
func (s *Spectrum) Bin(u, v int) complex128 {
	i := v*s.plane.Width + u
	return complex(s.plane.Re[i], s.plane.Im[i])
}

// planes returns copies of the real and imaginary planes, row-major with
// stride PaddedWidth.
func (s *Spectrum) planes() (re, im []float64) {
	c := s.plane.Clone()
	return c.Re, c.Im
}

// Clone returns an independent copy of the spectrum.
func (s *Spectrum) Clone() *Spectrum {
	return &Spectrum{width: s.width, height: s.height, plane: s.plane.Clone(), cfg: s.cfg}
}

// Magnitude returns |X| for the bins inside the original width x height
// region, row-major with stride Width.
func (s *Spectrum) Magnitude() []float64 {
	w, pw := s.width, s.plane.Width
	out := make([]float64, w*s.height)
	for y := 0; y < s.height; y++ {
		vecmath.Magnitude(out[y*w:(y+1)*w], s.plane.Re[y*pw:y*pw+w], s.plane.Im[y*pw:y*pw+w])
	}
	return out
}

func (s *Spectrum) check(buf *pixel.Buffer) error {
	if s == nil {
		return ErrNilSpectrum
	}
	if buf == nil {
		return ErrNilBuffer
	}
	if buf.Width() != s.width || buf.Height() != s.height {
		return fmt.Errorf("%w: buffer %dx%d, spectrum %dx%d", ErrGeometry,
			buf.Width(), buf.Height(), s.width, s.height)
	}
	return nil
}

// Visualize writes log1p(|X|)/log1p(max|X|)*255 for every bin of the
// original region into B, G and R of buf and sets alpha to 255. An all-zero
// spectrum leaves buf unmodified.
func (s *Spectrum) Visualize(buf *pixel.Buffer) error {
	if err := s.check(buf); err != nil {
		return err
	}
	mag := s.Magnitude()
	maxMag := 0.0
	for _, m := range mag {
		if m > maxMag {
			maxMag = m
		}
	}
	if maxMag == 0 {
		return nil
	}

	scale := 255 / math.Log1p(maxMag)
	pix := buf.Pix()
	for i, m := range mag {
		v := pixel.ClampByte(math.Log1p(m) * scale)
		o := i * pixel.Channels
		pix[o+pixel.ChannelB] = v
		pix[o+pixel.ChannelG] = v
		pix[o+pixel.ChannelR] = v
		pix[o+pixel.ChannelA] = 255
	}
	return nil
}

// Reconstruct inverse-transforms a copy of the planes and writes
// round(|re|), clamped to [0, 255], into B, G and R of buf over the
// original region with alpha 255. The spectrum itself is not modified.
func (s *Spectrum) Reconstruct(buf *pixel.Buffer, opts ...Option) error {
	if err := s.check(buf); err != nil {
		return err
	}
	cfg := s.cfg
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	plane := s.plane.Clone()
	if err := plane.Inverse2D(WithBackend(cfg.Backend), WithWorkers(cfg.Workers)); err != nil {
		return err
	}

	pix := buf.Pix()
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			v := pixel.ClampByte(math.Abs(plane.Re[y*plane.Width+x]))
			o := buf.Offset(x, y)
			pix[o+pixel.ChannelB] = v
			pix[o+pixel.ChannelG] = v
			pix[o+pixel.ChannelR] = v
			pix[o+pixel.ChannelA] = 255
		}
	}
	return nil
}

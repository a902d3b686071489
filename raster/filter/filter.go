package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-raster/raster/conv"
	"github.com/cwbudde/algo-raster/raster/kernel"
	"github.com/cwbudde/algo-raster/raster/pixel"
)

// Errors returned by filters.
var (
	ErrNilBuffer        = errors.New("filter: nil buffer")
	ErrInvalidThreshold = errors.New("filter: threshold must be in [0,255]")
)

// Grayscale replaces B, G and R of every pixel by its rounded luma.
// Alpha is untouched. Grayscale is idempotent.
func Grayscale(buf *pixel.Buffer, opts ...Option) error {
	if buf == nil {
		return ErrNilBuffer
	}
	cfg := ApplyOptions(opts...)
	return conv.Rows(cfg.Workers, buf.Height(), func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			row := buf.Row(y)
			for i := 0; i < len(row); i += pixel.Channels {
				g := pixel.Luma(row[i+pixel.ChannelB], row[i+pixel.ChannelG], row[i+pixel.ChannelR])
				row[i+pixel.ChannelB] = g
				row[i+pixel.ChannelG] = g
				row[i+pixel.ChannelR] = g
			}
		}
		return nil
	})
}

// GaussianBlur blurs the color channels with a normalized separable
// Gaussian of the configured radius and sigma. Samples outside the image are
// clamped to the edge, so border pixels get a full-kernel response. Alpha
// is preserved.
func GaussianBlur(buf *pixel.Buffer, opts ...Option) error {
	if buf == nil {
		return ErrNilBuffer
	}
	cfg := ApplyOptions(opts...)
	k, err := kernel.Gaussian(cfg.Radius, cfg.Sigma)
	if err != nil {
		return fmt.Errorf("filter: gaussian kernel: %w", err)
	}

	snap := pixel.Snapshot(buf)
	defer pixel.Release(snap)
	return conv.Separable(buf, snap, k, conv.WithWorkers(cfg.Workers))
}

// Sobel reduces buf to grayscale and writes the gradient magnitude
// round(sqrt(Gx²+Gy²)), clamped to [0, 255], into B, G and R with alpha 255.
// The one-pixel border keeps its grayscale value.
func Sobel(buf *pixel.Buffer, opts ...Option) error {
	if err := Grayscale(buf, opts...); err != nil {
		return err
	}
	cfg := ApplyOptions(opts...)
	w, h := buf.Width(), buf.Height()
	if w < 3 || h < 3 {
		return nil
	}

	gray := conv.PlaneFromChannel(buf, pixel.ChannelB)
	pix := buf.Pix()
	return conv.Rows(cfg.Workers, h, func(y0, y1 int) error {
		for y := max(y0, 1); y < min(y1, h-1); y++ {
			for x := 1; x < w-1; x++ {
				gx := gray.CorrelateAt(kernel.SobelX, x, y)
				gy := gray.CorrelateAt(kernel.SobelY, x, y)
				g := pixel.ClampByte(math.Sqrt(gx*gx + gy*gy))
				o := buf.Offset(x, y)
				pix[o+pixel.ChannelB] = g
				pix[o+pixel.ChannelG] = g
				pix[o+pixel.ChannelR] = g
				pix[o+pixel.ChannelA] = 255
			}
		}
		return nil
	})
}

// Laplacian reduces buf to grayscale and convolves it with the 4-neighbor
// discrete Laplacian. Responses are clamped to [0, 255]; the one-pixel
// border keeps its grayscale value and written pixels get alpha 255.
func Laplacian(buf *pixel.Buffer, opts ...Option) error {
	if err := Grayscale(buf, opts...); err != nil {
		return err
	}
	cfg := ApplyOptions(opts...)

	snap := pixel.Snapshot(buf)
	defer pixel.Release(snap)
	return conv.Correlate(buf, snap, kernel.Laplacian,
		conv.WithBoundary(conv.BoundarySkip),
		conv.WithAlpha(conv.AlphaOpaque),
		conv.WithWorkers(cfg.Workers),
	)
}

// Binarize reduces buf to grayscale and maps every pixel to 255 when its
// luma is strictly greater than threshold and to 0 otherwise. Alpha is
// untouched.
func Binarize(buf *pixel.Buffer, threshold int, opts ...Option) error {
	if threshold < 0 || threshold > 255 {
		return fmt.Errorf("%w: %d", ErrInvalidThreshold, threshold)
	}
	if buf == nil {
		return ErrNilBuffer
	}
	cfg := ApplyOptions(opts...)
	t := uint8(threshold)
	return conv.Rows(cfg.Workers, buf.Height(), func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			row := buf.Row(y)
			for i := 0; i < len(row); i += pixel.Channels {
				var v uint8
				if pixel.Luma(row[i+pixel.ChannelB], row[i+pixel.ChannelG], row[i+pixel.ChannelR]) > t {
					v = 255
				}
				row[i+pixel.ChannelB] = v
				row[i+pixel.ChannelG] = v
				row[i+pixel.ChannelR] = v
			}
		}
		return nil
	})
}

// Package morph implements sliding-window morphology and rank filters:
// dilation, erosion, median and the opening/closing composites.
//
// Every filter reads from a snapshot and writes into the live
// buffer. Pixels closer than kernelSize/2 to any edge are never written;
// they keep their pre-filter value. Alpha is never modified.
package morph

import (
	"errors"
	"fmt"
	"runtime"
	"slices"

	"github.com/cwbudde/algo-raster/raster/conv"
	"github.com/cwbudde/algo-raster/raster/pixel"
)

// Errors returned by morphology filters.
var (
	ErrNilBuffer         = errors.New("morph: nil buffer")
	ErrInvalidKernelSize = errors.New("morph: kernel size must be odd and >= 1")
)

// Config holds morphology settings.
type Config struct {
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// WithWorkers limits the number of concurrent row bands.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

func applyOptions(opts []Option) Config {
	cfg := Config{Workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func validate(buf *pixel.Buffer, kernelSize int) error {
	if buf == nil {
		return ErrNilBuffer
	}
	if kernelSize < 1 || kernelSize%2 == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidKernelSize, kernelSize)
	}
	return nil
}

// interior reports whether the written region [kHalf, w-kHalf) x
// [kHalf, h-kHalf) is non-empty.
func interior(buf *pixel.Buffer, kHalf int) bool {
	return buf.Width() > 2*kHalf && buf.Height() > 2*kHalf
}

// Dilate writes, for every interior pixel, the maximum luma found in its
// kernelSize x kernelSize window into B, G and R.
func Dilate(buf *pixel.Buffer, kernelSize int, opts ...Option) error {
	return extremum(buf, kernelSize, applyOptions(opts), true)
}

// Erode writes, for every interior pixel, the minimum luma found in its
// kernelSize x kernelSize window into B, G and R.
func Erode(buf *pixel.Buffer, kernelSize int, opts ...Option) error {
	return extremum(buf, kernelSize, applyOptions(opts), false)
}

// Open applies Erode then Dilate.
func Open(buf *pixel.Buffer, kernelSize int, opts ...Option) error {
	if err := Erode(buf, kernelSize, opts...); err != nil {
		return err
	}
	return Dilate(buf, kernelSize, opts...)
}

// Close applies Dilate then Erode.
func Close(buf *pixel.Buffer, kernelSize int, opts ...Option) error {
	if err := Dilate(buf, kernelSize, opts...); err != nil {
		return err
	}
	return Erode(buf, kernelSize, opts...)
}

func extremum(buf *pixel.Buffer, kernelSize int, cfg Config, takeMax bool) error {
	if err := validate(buf, kernelSize); err != nil {
		return err
	}
	kHalf := kernelSize / 2
	if !interior(buf, kHalf) {
		return nil
	}

	w, h := buf.Width(), buf.Height()
	luma := lumaPlane(buf)
	return conv.Rows(cfg.Workers, h, func(y0, y1 int) error {
		for y := max(y0, kHalf); y < min(y1, h-kHalf); y++ {
			for x := kHalf; x < w-kHalf; x++ {
				v := luma[y*w+x]
				for dy := -kHalf; dy <= kHalf; dy++ {
					row := luma[(y+dy)*w:]
					for dx := -kHalf; dx <= kHalf; dx++ {
						if s := row[x+dx]; (takeMax && s > v) || (!takeMax && s < v) {
							v = s
						}
					}
				}
				buf.SetGray(x, y, v)
			}
		}
		return nil
	})
}

// Median writes, for every interior pixel and each of B, G and R
// independently, the median of that channel over the window.
func Median(buf *pixel.Buffer, kernelSize int, opts ...Option) error {
	if err := validate(buf, kernelSize); err != nil {
		return err
	}
	cfg := applyOptions(opts)
	kHalf := kernelSize / 2
	if !interior(buf, kHalf) {
		return nil
	}

	w, h := buf.Width(), buf.Height()
	snap := pixel.Snapshot(buf)
	defer pixel.Release(snap)
	sp, dp := snap.Pix(), buf.Pix()
	n := kernelSize * kernelSize

	return conv.Rows(cfg.Workers, h, func(y0, y1 int) error {
		window := make([]uint8, n)
		for y := max(y0, kHalf); y < min(y1, h-kHalf); y++ {
			for x := kHalf; x < w-kHalf; x++ {
				o := buf.Offset(x, y)
				for c := pixel.ChannelB; c <= pixel.ChannelR; c++ {
					k := 0
					for dy := -kHalf; dy <= kHalf; dy++ {
						for dx := -kHalf; dx <= kHalf; dx++ {
							window[k] = sp[snap.Offset(x+dx, y+dy)+c]
							k++
						}
					}
					slices.Sort(window)
					dp[o+c] = window[n/2]
				}
			}
		}
		return nil
	})
}

// lumaPlane is the snapshot read by Dilate and Erode.
func lumaPlane(buf *pixel.Buffer) []uint8 {
	pix := buf.Pix()
	out := make([]uint8, buf.Width()*buf.Height())
	for i := range out {
		j := i * pixel.Channels
		out[i] = pixel.Luma(pix[j+pixel.ChannelB], pix[j+pixel.ChannelG], pix[j+pixel.ChannelR])
	}
	return out
}

package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-raster/raster/kernel"
	"github.com/cwbudde/algo-raster/raster/pixel"
)

// Errors returned by convolution functions.
var (
	ErrSizeMismatch = errors.New("conv: source and destination geometry differ")
	ErrAliased      = errors.New("conv: source and destination share memory")
	ErrEmptyKernel  = errors.New("conv: empty kernel")
)

func validate(dst, src *pixel.Buffer, kernelSize int) error {
	if dst == nil || src == nil {
		return fmt.Errorf("%w: nil buffer", ErrSizeMismatch)
	}
	if !dst.SameGeometry(src) {
		return fmt.Errorf("%w: src %dx%d, dst %dx%d", ErrSizeMismatch,
			src.Width(), src.Height(), dst.Width(), dst.Height())
	}
	if &dst.Pix()[0] == &src.Pix()[0] {
		return ErrAliased
	}
	if kernelSize == 0 {
		return ErrEmptyKernel
	}
	return nil
}

// Correlate computes, for every output pixel, the weighted sum of the B, G
// and R channels of src over the kernel window, rounded and clamped to
// [0, 255], and writes it to dst.
//
// Kernels are applied without flipping, which equals convolution for the
// symmetric kernels used by the filters.
func Correlate(dst, src *pixel.Buffer, k kernel.Kernel, opts ...Option) error {
	if err := validate(dst, src, k.Size()); err != nil {
		return err
	}
	cfg := ApplyOptions(opts...)

	w, h := src.Width(), src.Height()
	r := k.Radius()
	x0, x1 := 0, w
	if cfg.Boundary == BoundarySkip {
		x0, x1 = r, w-r
		if x0 >= x1 || 2*r >= h {
			return nil
		}
	}

	sp, dp := src.Pix(), dst.Pix()
	return Rows(cfg.Workers, h, func(ya, yb int) error {
		for y := ya; y < yb; y++ {
			if cfg.Boundary == BoundarySkip && (y < r || y >= h-r) {
				continue
			}
			for x := x0; x < x1; x++ {
				var accB, accG, accR float64
				for dy := -r; dy <= r; dy++ {
					sy := pixel.ClampCoord(y+dy, h)
					for dx := -r; dx <= r; dx++ {
						sx := pixel.ClampCoord(x+dx, w)
						wt := k.At(dx, dy)
						i := src.Offset(sx, sy)
						accB += wt * float64(sp[i+pixel.ChannelB])
						accG += wt * float64(sp[i+pixel.ChannelG])
						accR += wt * float64(sp[i+pixel.ChannelR])
					}
				}
				o := dst.Offset(x, y)
				dp[o+pixel.ChannelB] = pixel.ClampByte(accB)
				dp[o+pixel.ChannelG] = pixel.ClampByte(accG)
				dp[o+pixel.ChannelR] = pixel.ClampByte(accR)
				writeAlpha(dp, sp, o, cfg.Alpha)
			}
		}
		return nil
	})
}

// Separable applies k horizontally then vertically with clamp-to-edge
// sampling. The intermediate is kept in float64 and rounding happens only
// at the final write. The boundary option is ignored: separable passes
// always clamp.
func Separable(dst, src *pixel.Buffer, k kernel.Kernel1D, opts ...Option) error {
	if err := validate(dst, src, k.Len()); err != nil {
		return err
	}
	cfg := ApplyOptions(opts...)

	w, h := src.Width(), src.Height()
	r := k.Radius()
	taps := k.Weights()
	sp, dp := src.Pix(), dst.Pix()

	// Horizontal pass: bytes -> float B,G,R triples.
	tmp := make([]float64, w*h*3)
	err := Rows(cfg.Workers, h, func(ya, yb int) error {
		for y := ya; y < yb; y++ {
			for x := 0; x < w; x++ {
				var accB, accG, accR float64
				for t := -r; t <= r; t++ {
					i := src.Offset(pixel.ClampCoord(x+t, w), y)
					wt := taps[t+r]
					accB += wt * float64(sp[i+pixel.ChannelB])
					accG += wt * float64(sp[i+pixel.ChannelG])
					accR += wt * float64(sp[i+pixel.ChannelR])
				}
				j := (y*w + x) * 3
				tmp[j], tmp[j+1], tmp[j+2] = accB, accG, accR
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Vertical pass: float triples -> bytes.
	return Rows(cfg.Workers, h, func(ya, yb int) error {
		for y := ya; y < yb; y++ {
			for x := 0; x < w; x++ {
				var accB, accG, accR float64
				for t := -r; t <= r; t++ {
					j := (pixel.ClampCoord(y+t, h)*w + x) * 3
					wt := taps[t+r]
					accB += wt * tmp[j]
					accG += wt * tmp[j+1]
					accR += wt * tmp[j+2]
				}
				o := dst.Offset(x, y)
				dp[o+pixel.ChannelB] = pixel.ClampByte(accB)
				dp[o+pixel.ChannelG] = pixel.ClampByte(accG)
				dp[o+pixel.ChannelR] = pixel.ClampByte(accR)
				writeAlpha(dp, sp, o, cfg.Alpha)
			}
		}
		return nil
	})
}

func writeAlpha(dp, sp []byte, o int, policy AlphaPolicy) {
	if policy == AlphaOpaque {
		dp[o+pixel.ChannelA] = 255
		return
	}
	dp[o+pixel.ChannelA] = sp[o+pixel.ChannelA]
}

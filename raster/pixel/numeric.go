package pixel

import "math"

// Luma weights (ITU-R BT.601).
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// ClampByte rounds v to the nearest integer and limits it to [0, 255].
// NaN maps to 0.
func ClampByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	v = math.Round(v)
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// ClampCoord limits a sample coordinate to [0, n-1].
func ClampCoord(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// LumaF returns the unrounded luma of a B,G,R triple.
func LumaF(b, g, r uint8) float64 {
	return LumaR*float64(r) + LumaG*float64(g) + LumaB*float64(b)
}

// Luma returns the rounded, clamped luma of a B,G,R triple.
func Luma(b, g, r uint8) uint8 {
	return ClampByte(LumaF(b, g, r))
}

// Luma returns the luma of the pixel's color channels.
func (p Pixel) Luma() uint8 {
	return Luma(p.B, p.G, p.R)
}

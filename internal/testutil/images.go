package testutil

import "math/rand"

// Uniform returns a width x height BGRA frame filled with one color.
func Uniform(width, height int, b, g, r, a uint8) []byte {
	out := make([]byte, width*height*4)
	for i := 0; i < len(out); i += 4 {
		out[i] = b
		out[i+1] = g
		out[i+2] = r
		out[i+3] = a
	}
	return out
}

// Gray returns an opaque frame with B=G=R=v.
func Gray(width, height int, v uint8) []byte {
	return Uniform(width, height, v, v, v, 255)
}

// Impulse returns an opaque black frame with a single gray pixel v at (x, y).
func Impulse(width, height, x, y int, v uint8) []byte {
	out := Gray(width, height, 0)
	if x >= 0 && x < width && y >= 0 && y < height {
		i := (y*width + x) * 4
		out[i], out[i+1], out[i+2] = v, v, v
	}
	return out
}

// DeterministicNoise returns a frame of random colors with a fixed seed.
// Alpha is random too so alpha-preservation is observable.
func DeterministicNoise(seed int64, width, height int) []byte {
	out := make([]byte, width*height*4)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = byte(rng.Intn(256))
	}
	return out
}

// BinaryNoise returns an opaque frame whose pixels are 0 or 255 gray, with
// roughly density of them at 255.
func BinaryNoise(seed int64, width, height int, density float64) []byte {
	out := Gray(width, height, 0)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < len(out); i += 4 {
		if rng.Float64() < density {
			out[i], out[i+1], out[i+2] = 255, 255, 255
		}
	}
	return out
}

// Checkerboard returns an opaque frame of cell x cell squares alternating
// between 0 and 255.
func Checkerboard(width, height, cell int) []byte {
	out := Gray(width, height, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/cell)+(y/cell))%2 == 0 {
				continue
			}
			i := (y*width + x) * 4
			out[i], out[i+1], out[i+2] = 255, 255, 255
		}
	}
	return out
}

// GrayAt returns the blue channel of (x, y), which equals green and red in
// gray frames.
func GrayAt(data []byte, width, x, y int) uint8 {
	return data[(y*width+x)*4]
}

package conv

import (
	"github.com/cwbudde/algo-raster/raster/kernel"
	"github.com/cwbudde/algo-raster/raster/pixel"
)

// Plane is a single-channel float64 image.
type Plane struct {
	Width  int
	Height int
	Data   []float64
}

// NewPlane returns a zeroed plane.
func NewPlane(width, height int) Plane {
	return Plane{Width: width, Height: height, Data: make([]float64, width*height)}
}

// PlaneFromChannel copies one byte channel of buf into a plane.
func PlaneFromChannel(buf *pixel.Buffer, channel int) Plane {
	p := NewPlane(buf.Width(), buf.Height())
	pix := buf.Pix()
	for i := range p.Data {
		p.Data[i] = float64(pix[i*pixel.Channels+channel])
	}
	return p
}

// At returns the sample at (x, y) with coordinates clamped to the plane.
func (p Plane) At(x, y int) float64 {
	x = pixel.ClampCoord(x, p.Width)
	y = pixel.ClampCoord(y, p.Height)
	return p.Data[y*p.Width+x]
}

// CorrelateAt returns the weighted kernel-window sum centered at (x, y).
// Samples outside the plane are clamped to the edge.
func (p Plane) CorrelateAt(k kernel.Kernel, x, y int) float64 {
	r := k.Radius()
	if x >= r && y >= r && x < p.Width-r && y < p.Height-r {
		acc := 0.0
		for dy := -r; dy <= r; dy++ {
			row := p.Data[(y+dy)*p.Width:]
			for dx := -r; dx <= r; dx++ {
				acc += k.At(dx, dy) * row[x+dx]
			}
		}
		return acc
	}
	acc := 0.0
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			acc += k.At(dx, dy) * p.At(x+dx, y+dy)
		}
	}
	return acc
}

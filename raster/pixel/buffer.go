package pixel

import (
	"errors"
	"fmt"
)

// Channels is the number of bytes per pixel.
const Channels = 4

// Channel offsets inside a pixel.
const (
	ChannelB = 0
	ChannelG = 1
	ChannelR = 2
	ChannelA = 3
)

// ErrInvalidGeometry is returned when width or height is not positive or the
// byte length does not equal width*height*4.
var ErrInvalidGeometry = errors.New("pixel: invalid geometry")

// Pixel is one B,G,R,A sample.
type Pixel struct {
	B, G, R, A uint8
}

// Buffer is a view over interleaved BGRA bytes.
// Mutations through the Buffer are visible in the wrapped slice and vice versa.
type Buffer struct {
	pix    []byte
	width  int
	height int
}

// Validate checks that data holds exactly width*height pixels.
func Validate(data []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, width, height)
	}
	want := width * height * Channels
	if want/Channels/height != width {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidGeometry, width, height)
	}
	if len(data) != want {
		return fmt.Errorf("%w: length %d, want %d for %dx%d", ErrInvalidGeometry, len(data), want, width, height)
	}
	return nil
}

// Wrap returns a Buffer over data without copying.
func Wrap(data []byte, width, height int) (*Buffer, error) {
	if err := Validate(data, width, height); err != nil {
		return nil, err
	}
	return &Buffer{pix: data, width: width, height: height}, nil
}

// New allocates a zeroed Buffer.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, width, height)
	}
	return Wrap(make([]byte, width*height*Channels), width, height)
}

// Pix returns the underlying slice.
func (b *Buffer) Pix() []byte { return b.pix }

// Width returns the number of pixels per row.
func (b *Buffer) Width() int { return b.width }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.height }

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int { return b.width * Channels }

// Offset returns the index of the first byte of pixel (x, y).
// Coordinates are not range checked.
func (b *Buffer) Offset(x, y int) int {
	return y*b.width*Channels + x*Channels
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns pixel (x, y). Out-of-range coordinates return the zero Pixel.
func (b *Buffer) At(x, y int) Pixel {
	if !b.In(x, y) {
		return Pixel{}
	}
	i := b.Offset(x, y)
	s := b.pix[i : i+Channels : i+Channels]
	return Pixel{B: s[ChannelB], G: s[ChannelG], R: s[ChannelR], A: s[ChannelA]}
}

// Set writes pixel (x, y). Out-of-range coordinates are ignored.
func (b *Buffer) Set(x, y int, p Pixel) {
	if !b.In(x, y) {
		return
	}
	i := b.Offset(x, y)
	s := b.pix[i : i+Channels : i+Channels]
	s[ChannelB] = p.B
	s[ChannelG] = p.G
	s[ChannelR] = p.R
	s[ChannelA] = p.A
}

// SetGray writes v into the three color channels of (x, y) and leaves alpha.
func (b *Buffer) SetGray(x, y int, v uint8) {
	i := b.Offset(x, y)
	b.pix[i+ChannelB] = v
	b.pix[i+ChannelG] = v
	b.pix[i+ChannelR] = v
}

// Row returns the bytes of row y.
func (b *Buffer) Row(y int) []byte {
	start := y * b.Stride()
	return b.pix[start : start+b.Stride() : start+b.Stride()]
}

// SameGeometry reports whether o has the same width and height as b.
func (b *Buffer) SameGeometry(o *Buffer) bool {
	return o != nil && b.width == o.width && b.height == o.height
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	s := make([]byte, len(b.pix))
	copy(s, b.pix)
	return &Buffer{pix: s, width: b.width, height: b.height}
}

// CopyFrom overwrites b with the contents of src.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if !b.SameGeometry(src) {
		return fmt.Errorf("%w: copy %dx%d into %dx%d", ErrInvalidGeometry, src.width, src.height, b.width, b.height)
	}
	copy(b.pix, src.pix)
	return nil
}

// Equal reports whether both buffers have the same geometry and bytes.
func (b *Buffer) Equal(o *Buffer) bool {
	if !b.SameGeometry(o) {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

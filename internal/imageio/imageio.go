// Package imageio converts between image files and the engine's BGRA
// byte layout.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned for formats that cannot be written.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// Frame is a decoded image in B, G, R, A byte order with row stride
// Width*4.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
	// Format is the decoder name reported by image.Decode.
	Format string
}

// Decode reads any registered format (PNG, JPEG, GIF, BMP, TIFF, WebP).
// Colors are converted to non-premultiplied 8-bit values.
func Decode(r io.Reader) (*Frame, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	f := FromImage(img)
	f.Format = format
	return f, nil
}

// Load decodes the file at path.
func Load(path string) (*Frame, error) {
	fh, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = fh.Close()
	}()
	return Decode(fh)
}

// FromImage converts img into a BGRA frame.
func FromImage(img image.Image) *Frame {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		// draw goes through premultiplied color and would lose the color
		// of translucent pixels
		rowLen := b.Dx() * 4
		for y := 0; y < b.Dy(); y++ {
			o := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+rowLen], src.Pix[o:o+rowLen])
		}
	} else {
		xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)
	}

	pix := nrgba.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
	return &Frame{Pix: pix, Width: b.Dx(), Height: b.Dy()}
}

// Image returns an NRGBA view copy of the frame.
func (f *Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	copy(img.Pix, f.Pix)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+2] = img.Pix[i+2], img.Pix[i]
	}
	return img
}

// FormatFromPath maps a file extension to a format name.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	default:
		return ""
	}
}

// Encode writes f in the named format. WebP is decode-only.
func Encode(w io.Writer, f *Frame, format string) error {
	img := f.Image()
	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save encodes f to path using the format implied by its extension.
func Save(path string, f *Frame) error {
	format := FormatFromPath(path)
	if format == "" || format == "webp" {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	fh, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := Encode(fh, f, format); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

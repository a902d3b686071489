// Package pixel provides the addressing view used by every raster filter: a
// flat byte slice interpreted as height rows of width pixels, each pixel four
// bytes in blue, green, red, alpha order.
//
// A [Buffer] never copies or owns the caller's bytes. Filters that must not
// observe their own writes take a snapshot first; [Pool] recycles those
// snapshots across calls.
//
//	buf, err := pixel.Wrap(data, width, height)
//	if err != nil {
//		return err // pixel.ErrInvalidGeometry
//	}
//	p := buf.At(0, 0)
//	p.A = 255
//	buf.Set(0, 0, p)
package pixel

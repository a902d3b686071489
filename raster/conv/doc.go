// Package conv is the 2D convolution engine behind the blur, gradient and
// morphology filters.
//
// All routines read from a source buffer that must not be the destination
// (take a [pixel.Snapshot] first when filtering in place) and write only to
// the destination. Rows are split into bands and processed concurrently;
// bands never share output rows.
//
// # Boundary policy
//
//   - [BoundaryClamp]: sample coordinates outside the image are clamped to the
//     nearest edge pixel, so every pixel receives a full-kernel response.
//   - [BoundarySkip]: pixels closer than the kernel radius to an edge are not
//     written and keep whatever the destination already holds.
//
// # Usage
//
//	snap := pixel.Snapshot(buf)
//	defer pixel.Release(snap)
//	err := conv.Correlate(buf, snap, kernel.Laplacian,
//		conv.WithBoundary(conv.BoundarySkip),
//		conv.WithAlpha(conv.AlphaOpaque))
//
// Separable kernels take two 1D passes through a float64 intermediate and
// round only at the final write:
//
//	g, _ := kernel.Gaussian(2, 1.0)
//	err := conv.Separable(buf, snap, g)
package conv

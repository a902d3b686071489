// Package filter implements the spatial filters of the raster engine:
// luma grayscale, separable Gaussian blur, Sobel gradient magnitude,
// discrete Laplacian and threshold binarization.
//
// Every filter works in place on a [pixel.Buffer] and leaves its geometry
// unchanged. Grayscale reduction always uses BT.601 luma weights
// (0.299 R + 0.587 G + 0.114 B); the edge and threshold filters reduce to
// grayscale first, so a frame is never mixed between weighting schemes.
//
// Filters that read neighborhoods take a pooled snapshot of the buffer and
// read only from it, so a pass never observes its own writes.
package filter

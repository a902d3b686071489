// Package fft implements the frequency-domain half of the raster engine: an
// iterative radix-2 Cooley-Tukey FFT, separable 2D transforms over
// power-of-two padded planes, log-magnitude visualization and inverse
// reconstruction.
//
// The frequency-domain planes of one image are carried by a [Spectrum]
// value. [Transform] produces it from a pixel buffer; [Spectrum.Visualize]
// renders it into a buffer of the original size; [Spectrum.Reconstruct]
// runs the inverse transform and writes the spatial image back. Because the
// complex planes are retained, reconstruction does not depend on the lossy
// 0..255 visualization.
//
//	spec, err := fft.Transform(buf)
//	if err != nil {
//		return err
//	}
//	_ = spec.Visualize(buf)   // log-magnitude view
//	_ = spec.Reconstruct(buf) // grayscale original, within rounding
//
// # Backends
//
// Line transforms are delegated to a [Backend]. [Radix2] is the default,
// self-contained implementation of [FFT1D]. [NewAlgoFFT] delegates to
// github.com/MeKo-Christian/algo-fft plans, cached per length.
package fft

// Package engine is the call boundary of the raster filters. Each operation
// takes a caller-owned BGRA byte slice with its width and height, validates
// the geometry, runs the filter on a pooled scratch copy and commits the
// result into the caller's slice only when the filter succeeds. A failed
// call never leaves the caller's bytes partially modified.
//
// Failures are reported as *[Error] values carrying a [Kind]; test them with
// errors.Is against [ErrInvalidGeometry], [ErrInvalidParameter],
// [ErrProtocolViolation] or [ErrComputationFault].
//
// # Spectral state
//
// [Engine.ForwardTransform] returns the image's [fft.Spectrum] and also
// keeps it in the engine, replacing any earlier one, so the
// forward, inspect, inverse protocol can be driven without threading the
// value through the caller:
//
//	eng := engine.New()
//	if _, err := eng.ForwardTransform(data, w, h); err != nil {
//		return err
//	}
//	// data now holds the log-magnitude view
//	if err := eng.InverseTransform(data, w, h); err != nil {
//		return err
//	}
//
// Callers running independent pipelines concurrently should keep the
// returned Spectrum and use [Engine.InverseTransformWith] instead, or use
// one Engine per pipeline.
package engine

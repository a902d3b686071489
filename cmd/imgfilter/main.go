// Command imgfilter runs the raster engine over image files.
//
// Usage:
//
//	imgfilter [flags] <command> <input> <output>
//
// Images are decoded into BGRA, filtered in place and written in the
// format implied by the output extension.
//
// Examples:
//
//	imgfilter sobel part.png edges.png
//	imgfilter --blur-sigma 1.5 blur scan.jpg smooth.png
//	imgfilter binarize --threshold 90 scan.png mask.png
//	imgfilter median --kernel 5 noisy.tiff clean.png
//	imgfilter spectrum part.png fft.png
//	imgfilter pipeline --steps inspect.yaml part.png out.png
//	imgfilter ops
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

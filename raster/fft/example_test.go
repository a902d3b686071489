package fft_test

import (
	"fmt"

	"github.com/cwbudde/algo-raster/raster/fft"
	"github.com/cwbudde/algo-raster/raster/pixel"
)

func ExampleNextPowerOfTwo() {
	fmt.Println(fft.NextPowerOfTwo(5), fft.NextPowerOfTwo(8), fft.NextPowerOfTwo(9))
	// Output:
	// 8 8 16
}

func ExampleFFT1D() {
	re := []float64{1, 1, 1, 1}
	im := make([]float64, 4)
	fft.FFT1D(re, im, false)
	fmt.Printf("%.0f %.0f %.0f %.0f\n", re[0], re[1], re[2], re[3])
	fft.FFT1D(re, im, true)
	fmt.Printf("%.0f %.0f %.0f %.0f\n", re[0], re[1], re[2], re[3])
	// Output:
	// 4 0 0 0
	// 1 1 1 1
}

func ExampleTransform() {
	data := make([]byte, 5*5*pixel.Channels)
	for i := range data {
		data[i] = 100
	}
	buf, _ := pixel.Wrap(data, 5, 5)

	spec, err := fft.Transform(buf)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(spec.PaddedWidth(), spec.PaddedHeight())

	if err := spec.Reconstruct(buf); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(buf.At(4, 4))
	// Output:
	// 8 8
	// {100 100 100 255}
}

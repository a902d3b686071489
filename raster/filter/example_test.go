package filter_test

import (
	"fmt"

	"github.com/cwbudde/algo-raster/raster/filter"
	"github.com/cwbudde/algo-raster/raster/pixel"
)

func ExampleBinarize() {
	data := []byte{
		200, 200, 200, 255,
		50, 50, 50, 255,
	}
	buf, _ := pixel.Wrap(data, 2, 1)
	if err := filter.Binarize(buf, 127); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(data)
	// Output:
	// [255 255 255 255 0 0 0 255]
}

package morph

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-raster/internal/testutil"
	"github.com/cwbudde/algo-raster/raster/pixel"
)

func BenchmarkMedian(b *testing.B) {
	for _, k := range []int{3, 5, 7} {
		b.Run(fmt.Sprintf("k%d", k), func(b *testing.B) {
			data := testutil.DeterministicNoise(1, 256, 256)
			buf, _ := pixel.Wrap(data, 256, 256)

			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for range b.N {
				_ = Median(buf, k)
			}
		})
	}
}

func BenchmarkDilate(b *testing.B) {
	data := testutil.BinaryNoise(1, 256, 256, 0.3)
	buf, _ := pixel.Wrap(data, 256, 256)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for range b.N {
		_ = Dilate(buf, 5)
	}
}

package fft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-raster/internal/testutil"
)

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want int }{
		{-4, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {5, 8}, {8, 8}, {9, 16}, {1000, 1024}, {1024, 1024},
	}
	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.in); got != tt.want {
			t.Fatalf("NextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if IsPowerOfTwo(0) || IsPowerOfTwo(6) || !IsPowerOfTwo(1) || !IsPowerOfTwo(64) {
		t.Fatal("IsPowerOfTwo mismatch")
	}
}

func naiveDFT(re, im []float64) ([]float64, []float64) {
	n := len(re)
	outRe := make([]float64, n)
	outIm := make([]float64, n)
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			s, c := math.Sincos(-2 * math.Pi * float64(j*k) / float64(n))
			outRe[k] += re[j]*c - im[j]*s
			outIm[k] += re[j]*s + im[j]*c
		}
	}
	return outRe, outIm
}

func randomLine(seed int64, n int) ([]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	re := make([]float64, n)
	im := make([]float64, n)
	for i := range re {
		re[i] = rng.Float64()*2 - 1
		im[i] = rng.Float64()*2 - 1
	}
	return re, im
}

func TestFFT1DImpulseAndDC(t *testing.T) {
	re := []float64{1, 0, 0, 0, 0, 0, 0, 0}
	im := make([]float64, 8)
	FFT1D(re, im, false)
	testutil.RequireSliceNearlyEqual(t, re, []float64{1, 1, 1, 1, 1, 1, 1, 1}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, im, make([]float64, 8), 1e-12)

	re = []float64{3, 3, 3, 3}
	im = make([]float64, 4)
	FFT1D(re, im, false)
	testutil.RequireSliceNearlyEqual(t, re, []float64{12, 0, 0, 0}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, im, []float64{0, 0, 0, 0}, 1e-12)
}

func TestFFT1DMatchesNaiveDFT(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 32} {
		re, im := randomLine(int64(n), n)
		wantRe, wantIm := naiveDFT(re, im)
		FFT1D(re, im, false)
		testutil.RequireSliceNearlyEqual(t, re, wantRe, 1e-9)
		testutil.RequireSliceNearlyEqual(t, im, wantIm, 1e-9)
	}
}

func TestFFT1DMatchesGonum(t *testing.T) {
	const n = 256
	re, im := randomLine(99, n)
	seq := make([]complex128, n)
	for i := range seq {
		seq[i] = complex(re[i], im[i])
	}
	want := fourier.NewCmplxFFT(n).Coefficients(nil, seq)

	FFT1D(re, im, false)
	for k := range want {
		got := complex(re[k], im[k])
		if cmplx.Abs(got-want[k]) > 1e-9 {
			t.Fatalf("bin %d: got %v, want %v", k, got, want[k])
		}
	}
}

func TestFFT1DRoundTrip(t *testing.T) {
	re, im := randomLine(7, 128)
	origRe := append([]float64(nil), re...)
	origIm := append([]float64(nil), im...)

	FFT1D(re, im, false)
	FFT1D(re, im, true)
	testutil.RequireSliceNearlyEqual(t, re, origRe, 1e-12)
	testutil.RequireSliceNearlyEqual(t, im, origIm, 1e-12)
}

func TestFFT1DNoOpOnInvalidLength(t *testing.T) {
	re := []float64{1, 2, 3}
	im := []float64{0, 0, 0}
	FFT1D(re, im, false)
	testutil.RequireSliceNearlyEqual(t, re, []float64{1, 2, 3}, 0)

	re = []float64{1, 2, 3, 4}
	FFT1D(re, im, false)
	testutil.RequireSliceNearlyEqual(t, re, []float64{1, 2, 3, 4}, 0)
}

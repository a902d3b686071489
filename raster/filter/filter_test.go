package filter

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-raster/internal/testutil"
	"github.com/cwbudde/algo-raster/raster/pixel"
)

func wrap(t *testing.T, data []byte, w, h int) *pixel.Buffer {
	t.Helper()
	b, err := pixel.Wrap(data, w, h)
	if err != nil {
		t.Fatalf("Wrap error: %v", err)
	}
	return b
}

func TestGrayscaleLuma(t *testing.T) {
	data := []byte{
		10, 20, 30, 99, // luma 21.85 -> 22
		255, 0, 0, 1, // blue: 29.07 -> 29
		0, 0, 255, 2, // red: 76.245 -> 76
	}
	buf := wrap(t, data, 3, 1)
	if err := Grayscale(buf); err != nil {
		t.Fatalf("Grayscale error: %v", err)
	}
	want := []byte{22, 22, 22, 99, 29, 29, 29, 1, 76, 76, 76, 2}
	testutil.RequireBytesEqual(t, data, want)
}

func TestGrayscaleIdempotent(t *testing.T) {
	data := testutil.DeterministicNoise(11, 17, 9)
	buf := wrap(t, data, 17, 9)
	if err := Grayscale(buf); err != nil {
		t.Fatalf("Grayscale error: %v", err)
	}
	once := append([]byte(nil), data...)
	if err := Grayscale(buf); err != nil {
		t.Fatalf("Grayscale error: %v", err)
	}
	testutil.RequireBytesEqual(t, data, once)
}

func TestGaussianBlurUniformUnchanged(t *testing.T) {
	data := testutil.Uniform(9, 6, 12, 140, 250, 33)
	want := append([]byte(nil), data...)
	buf := wrap(t, data, 9, 6)

	if err := GaussianBlur(buf); err != nil {
		t.Fatalf("GaussianBlur error: %v", err)
	}
	testutil.RequireBytesEqual(t, data, want)
}

func TestGaussianBlurSpreadsImpulse(t *testing.T) {
	data := testutil.Impulse(9, 9, 4, 4, 255)
	buf := wrap(t, data, 9, 9)
	if err := GaussianBlur(buf); err != nil {
		t.Fatalf("GaussianBlur error: %v", err)
	}

	center := testutil.GrayAt(data, 9, 4, 4)
	near := testutil.GrayAt(data, 9, 5, 4)
	far := testutil.GrayAt(data, 9, 7, 4)
	if !(center > near && near > far) {
		t.Fatalf("expected decreasing response: center=%d near=%d far=%d", center, near, far)
	}
	if testutil.GrayAt(data, 9, 4, 7) != far {
		t.Fatal("blur not symmetric between axes")
	}
	if testutil.GrayAt(data, 9, 0, 0) != 0 {
		t.Fatal("impulse leaked beyond kernel radius")
	}
}

func TestGaussianBlurPreservesAlpha(t *testing.T) {
	data := testutil.DeterministicNoise(5, 8, 8)
	alpha := make([]byte, 0, 64)
	for i := 3; i < len(data); i += 4 {
		alpha = append(alpha, data[i])
	}
	buf := wrap(t, data, 8, 8)
	if err := GaussianBlur(buf, WithRadius(1), WithSigma(0.8)); err != nil {
		t.Fatalf("GaussianBlur error: %v", err)
	}
	for i, a := range alpha {
		if data[i*4+3] != a {
			t.Fatalf("alpha of pixel %d changed: %d -> %d", i, a, data[i*4+3])
		}
	}
}

func TestSobelVerticalEdge(t *testing.T) {
	w, h := 6, 5
	data := testutil.Gray(w, h, 0)
	for y := 0; y < h; y++ {
		for x := 3; x < w; x++ {
			i := (y*w + x) * 4
			data[i], data[i+1], data[i+2] = 100, 100, 100
		}
	}
	buf := wrap(t, data, w, h)
	if err := Sobel(buf); err != nil {
		t.Fatalf("Sobel error: %v", err)
	}

	// Columns 2 and 3 straddle the edge: Gx = 4*100 -> clamped 255.
	if got := testutil.GrayAt(data, w, 2, 2); got != 255 {
		t.Fatalf("edge response = %d, want 255", got)
	}
	if got := testutil.GrayAt(data, w, 1, 2); got != 0 {
		t.Fatalf("flat response = %d, want 0", got)
	}
	// Border keeps the grayscale value.
	if got := testutil.GrayAt(data, w, 5, 0); got != 100 {
		t.Fatalf("border = %d, want 100", got)
	}
}

func TestSobelFlatImageZeroInterior(t *testing.T) {
	data := testutil.Uniform(5, 5, 80, 80, 80, 10)
	buf := wrap(t, data, 5, 5)
	if err := Sobel(buf); err != nil {
		t.Fatalf("Sobel error: %v", err)
	}
	if got := buf.At(2, 2); got != (pixel.Pixel{A: 255}) {
		t.Fatalf("interior = %+v, want black opaque", got)
	}
	if got := buf.At(0, 0); got != (pixel.Pixel{B: 80, G: 80, R: 80, A: 10}) {
		t.Fatalf("border = %+v, want untouched gray", got)
	}
}

func TestLaplacianImpulse(t *testing.T) {
	data := testutil.Impulse(5, 5, 2, 2, 50)
	buf := wrap(t, data, 5, 5)
	if err := Laplacian(buf); err != nil {
		t.Fatalf("Laplacian error: %v", err)
	}
	if got := testutil.GrayAt(data, 5, 2, 2); got != 200 {
		t.Fatalf("center = %d, want 200", got)
	}
	if got := testutil.GrayAt(data, 5, 2, 1); got != 0 {
		t.Fatalf("neighbor = %d, want 0 (clamped -50)", got)
	}
}

func TestBinarizeThresholdBoundary(t *testing.T) {
	tests := []struct {
		name string
		gray uint8
		t    int
		want uint8
	}{
		{name: "bright", gray: 200, t: 127, want: 255},
		{name: "dark", gray: 50, t: 127, want: 0},
		{name: "equal maps to 0", gray: 100, t: 100, want: 0},
		{name: "one above maps to 255", gray: 101, t: 100, want: 255},
		{name: "threshold 255", gray: 255, t: 255, want: 0},
		{name: "threshold 0", gray: 1, t: 0, want: 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := testutil.Uniform(2, 2, tt.gray, tt.gray, tt.gray, 9)
			buf := wrap(t, data, 2, 2)
			if err := Binarize(buf, tt.t); err != nil {
				t.Fatalf("Binarize error: %v", err)
			}
			if got := buf.At(1, 1); got != (pixel.Pixel{B: tt.want, G: tt.want, R: tt.want, A: 9}) {
				t.Fatalf("pixel = %+v, want %d", got, tt.want)
			}
		})
	}
}

func TestBinarizeInvalidThreshold(t *testing.T) {
	data := testutil.Gray(2, 2, 10)
	buf := wrap(t, data, 2, 2)
	for _, th := range []int{-1, 256} {
		if err := Binarize(buf, th); !errors.Is(err, ErrInvalidThreshold) {
			t.Fatalf("Binarize(%d) error = %v, want ErrInvalidThreshold", th, err)
		}
	}
	testutil.RequireBytesEqual(t, data, testutil.Gray(2, 2, 10))
}

func TestNilBuffer(t *testing.T) {
	if err := Grayscale(nil); !errors.Is(err, ErrNilBuffer) {
		t.Fatalf("Grayscale(nil) error = %v", err)
	}
	if err := GaussianBlur(nil); !errors.Is(err, ErrNilBuffer) {
		t.Fatalf("GaussianBlur(nil) error = %v", err)
	}
	if err := Sobel(nil); !errors.Is(err, ErrNilBuffer) {
		t.Fatalf("Sobel(nil) error = %v", err)
	}
}

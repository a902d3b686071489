package pixel

import (
	"math"
	"testing"
)

func TestClampByte(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-10, 0},
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{127.6, 128},
		{254.5, 255},
		{300, 255},
		{math.NaN(), 0},
		{math.Inf(1), 255},
	}
	for _, tt := range tests {
		if got := ClampByte(tt.in); got != tt.want {
			t.Fatalf("ClampByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampCoord(t *testing.T) {
	if ClampCoord(-3, 5) != 0 || ClampCoord(7, 5) != 4 || ClampCoord(2, 5) != 2 {
		t.Fatal("ClampCoord out of expected range")
	}
}

func TestLuma(t *testing.T) {
	if got := Luma(200, 200, 200); got != 200 {
		t.Fatalf("Luma(gray 200) = %d, want 200", got)
	}
	// 0.299*255 = 76.245
	if got := Luma(0, 0, 255); got != 76 {
		t.Fatalf("Luma(pure red) = %d, want 76", got)
	}
	// 0.587*255 = 149.685
	if got := (Pixel{G: 255}).Luma(); got != 150 {
		t.Fatalf("Luma(pure green) = %d, want 150", got)
	}
	// 0.114*255 = 29.07
	if got := Luma(255, 0, 0); got != 29 {
		t.Fatalf("Luma(pure blue) = %d, want 29", got)
	}
}

package engine

import (
	"fmt"
	"strings"
)

// Operation names an engine operation. The names are the ones accepted by
// Apply and the imgfilter CLI.
type Operation string

const (
	OpGrayscale        Operation = "grayscale"
	OpGaussianBlur     Operation = "blur"
	OpSobel            Operation = "sobel"
	OpLaplacian        Operation = "laplacian"
	OpBinarize         Operation = "binarize"
	OpDilate           Operation = "dilate"
	OpErode            Operation = "erode"
	OpOpen             Operation = "open"
	OpClose            Operation = "close"
	OpMedian           Operation = "median"
	OpForwardTransform Operation = "fft"
	OpInverseTransform Operation = "ifft"
)

// Params carries the per-call arguments of parameterized operations.
type Params struct {
	// Threshold is used by OpBinarize.
	Threshold int
	// KernelSize is used by the morphology operations.
	KernelSize int
}

// DefaultParams returns mid-gray thresholding and a 3x3 window.
func DefaultParams() Params {
	return Params{Threshold: 128, KernelSize: 3}
}

type opInfo struct {
	op       Operation
	summary  string
	usesArgs string
}

var operations = []opInfo{
	{OpGrayscale, "luma grayscale into B, G and R", ""},
	{OpGaussianBlur, "separable Gaussian blur with clamped borders", ""},
	{OpSobel, "Sobel gradient magnitude", ""},
	{OpLaplacian, "4-neighbour Laplacian", ""},
	{OpBinarize, "grayscale then threshold to 0 or 255", "threshold"},
	{OpDilate, "max of the luma window", "kernel"},
	{OpErode, "min of the luma window", "kernel"},
	{OpOpen, "erode then dilate", "kernel"},
	{OpClose, "dilate then erode", "kernel"},
	{OpMedian, "per-channel median of the window", "kernel"},
	{OpForwardTransform, "2D FFT, stores the spectrum and writes its log-magnitude view", ""},
	{OpInverseTransform, "reconstructs the image from the stored spectrum", ""},
}

// Operations returns every operation in a stable order.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	for i, info := range operations {
		out[i] = info.op
	}
	return out
}

// Summary returns a one-line description of op.
func (op Operation) Summary() string {
	for _, info := range operations {
		if info.op == op {
			return info.summary
		}
	}
	return ""
}

// Parameter names the Params field op reads, or "" when it reads none.
func (op Operation) Parameter() string {
	for _, info := range operations {
		if info.op == op {
			return info.usesArgs
		}
	}
	return ""
}

// ParseOperation resolves a case-insensitive operation name.
func ParseOperation(name string) (Operation, error) {
	n := Operation(strings.ToLower(strings.TrimSpace(name)))
	for _, info := range operations {
		if info.op == n {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-raster/internal/imageio"
	"github.com/cwbudde/algo-raster/internal/testutil"
	"github.com/cwbudde/algo-raster/raster/engine"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeImage(t *testing.T, dir string, pix []byte, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, "in.png")
	if err := imageio.Save(path, &imageio.Frame{Pix: pix, Width: w, Height: h}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	return path
}

func readImage(t *testing.T, path string) *imageio.Frame {
	t.Helper()
	f, err := imageio.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return f
}

func TestBinarizeCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeImage(t, dir, []byte{10, 10, 10, 255, 200, 200, 200, 255}, 2, 1)
	out := filepath.Join(dir, "out.png")

	if _, err := run(t, "binarize", "--threshold", "100", in, out); err != nil {
		t.Fatalf("binarize error: %v", err)
	}
	got := readImage(t, out)
	testutil.RequireBytesEqual(t, got.Pix, []byte{0, 0, 0, 255, 255, 255, 255, 255})
}

func TestInvalidThresholdFails(t *testing.T) {
	dir := t.TempDir()
	in := writeImage(t, dir, testutil.Gray(3, 3, 50), 3, 3)
	out := filepath.Join(dir, "out.png")

	_, err := run(t, "binarize", "--threshold", "300", in, out)
	if !errors.Is(err, engine.ErrInvalidParameter) {
		t.Fatalf("err = %v, want invalid parameter", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatal("output written on failure")
	}
}

func TestRoundTripCommand(t *testing.T) {
	dir := t.TempDir()
	pix := testutil.Checkerboard(6, 5, 2)
	in := writeImage(t, dir, pix, 6, 5)
	out := filepath.Join(dir, "out.png")
	spec := filepath.Join(dir, "spec.png")

	if _, err := run(t, "--fft-backend", "algofft", "roundtrip", "--spectrum", spec, in, out); err != nil {
		t.Fatalf("roundtrip error: %v", err)
	}
	testutil.RequireBytesEqual(t, readImage(t, out).Pix, pix)
	if f := readImage(t, spec); f.Width != 6 || f.Height != 5 {
		t.Fatalf("spectrum size = %dx%d, want 6x5", f.Width, f.Height)
	}
}

func TestPipelineFFTThenIFFT(t *testing.T) {
	dir := t.TempDir()
	pix := testutil.Impulse(5, 5, 2, 2, 200)
	in := writeImage(t, dir, pix, 5, 5)
	out := filepath.Join(dir, "out.png")
	mid := filepath.Join(dir, "mid.png")
	steps := filepath.Join(dir, "steps.yaml")
	yml := "steps:\n  - op: grayscale\n  - op: fft\n    save: " + mid + "\n  - op: ifft\n"
	if err := os.WriteFile(steps, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "pipeline", "--steps", steps, in, out); err != nil {
		t.Fatalf("pipeline error: %v", err)
	}
	testutil.RequireBytesEqual(t, readImage(t, out).Pix, pix)

	// an impulse has a flat magnitude spectrum
	view := readImage(t, mid)
	testutil.RequireBytesEqual(t, view.Pix, testutil.Gray(5, 5, 255))
}

func TestPipelineIFFTFirstIsProtocolViolation(t *testing.T) {
	dir := t.TempDir()
	in := writeImage(t, dir, testutil.Gray(4, 4, 9), 4, 4)
	steps := filepath.Join(dir, "steps.yaml")
	if err := os.WriteFile(steps, []byte("steps:\n  - op: ifft\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := run(t, "pipeline", "--steps", steps, in, filepath.Join(dir, "out.png"))
	if !errors.Is(err, engine.ErrProtocolViolation) {
		t.Fatalf("err = %v, want protocol violation", err)
	}
}

func TestParsePipeline(t *testing.T) {
	p, err := ParsePipeline(strings.NewReader("steps:\n  - op: Median\n    kernel: 5\n  - op: binarize\n"))
	if err != nil {
		t.Fatalf("ParsePipeline error: %v", err)
	}
	ops := p.Ops()
	if len(ops) != 2 || ops[0] != engine.OpMedian || ops[1] != engine.OpBinarize {
		t.Fatalf("ops = %v", ops)
	}
	if got := p.Steps[0].params(); got.KernelSize != 5 || got.Threshold != 128 {
		t.Fatalf("params = %+v", got)
	}

	tests := map[string]string{
		"empty":       "",
		"no steps":    "steps: []\n",
		"unknown op":  "steps:\n  - op: sharpen\n",
		"unknown key": "steps:\n  - op: sobel\n    radius: 3\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParsePipeline(strings.NewReader(src)); err == nil {
				t.Fatal("ParsePipeline accepted invalid input")
			}
		})
	}
}

func TestConfigFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "imgfilter.yaml")
	if err := os.WriteFile(cfg, []byte("workers: 3\nfft-backend: algofft\nblur-radius: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("IMGFILTER_BLUR_SIGMA", "2.5")

	out, err := run(t, "--config", cfg, "--blur-radius", "4", "info")
	if err != nil {
		t.Fatalf("info error: %v", err)
	}
	for _, want := range []string{
		"workers:      3",
		"fft backend:  algofft",
		"blur radius:  4",
		"blur sigma:   2.5",
		"config file:  " + cfg,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestMissingConfigFileFails(t *testing.T) {
	if _, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "info"); err == nil {
		t.Fatal("missing explicit config accepted")
	}
}

func TestUnknownBackendFails(t *testing.T) {
	if _, err := run(t, "--fft-backend", "fftw", "info"); err == nil {
		t.Fatal("unknown backend accepted")
	}
}

func TestOpsCommand(t *testing.T) {
	out, err := run(t, "ops")
	if err != nil {
		t.Fatalf("ops error: %v", err)
	}
	for _, op := range engine.Operations() {
		if !strings.Contains(out, string(op)) {
			t.Fatalf("ops output missing %s:\n%s", op, out)
		}
	}
}

func TestSpectrumCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeImage(t, dir, testutil.Gray(4, 2, 40), 4, 2)
	out := filepath.Join(dir, "spec.png")

	logs, err := run(t, "--log-level", "info", "spectrum", in, out)
	if err != nil {
		t.Fatalf("spectrum error: %v", err)
	}
	if !strings.Contains(logs, "padded_width=4") || !strings.Contains(logs, "dc=320") {
		t.Fatalf("log = %q, want padded size and DC magnitude", logs)
	}
	// flat power-of-two image: DC is the only nonzero bin
	got := readImage(t, out)
	if got.Pix[0] != 255 || got.Pix[4] != 0 {
		t.Fatalf("spectrum view = %v, want 255 at DC and 0 elsewhere", got.Pix[:8])
	}
}

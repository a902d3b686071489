package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Fatal("amd64 must report SSE2")
	}
}

func TestForcedFeatures(t *testing.T) {
	SetForcedFeatures(Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"})
	defer ResetForcedFeatures()

	f := DetectFeatures()
	if f.Best() != SIMDAVX2 {
		t.Fatalf("Best() = %v, want avx2", f.Best())
	}
	if got := f.Summary(); got != "amd64: sse2 avx2" {
		t.Fatalf("Summary() = %q", got)
	}
}

func TestSummaryNone(t *testing.T) {
	f := Features{Architecture: "wasm"}
	if f.Best() != SIMDNone {
		t.Fatalf("Best() = %v, want none", f.Best())
	}
	if got := f.Summary(); got != "wasm: none" {
		t.Fatalf("Summary() = %q", got)
	}
}

func TestFeaturesForUnknownArch(t *testing.T) {
	f := featuresFor("riscv64")
	if f.Best() != SIMDNone || f.Architecture != "riscv64" {
		t.Fatalf("featuresFor(riscv64) = %+v", f)
	}
}

func TestFeaturesForHostMatchesDetect(t *testing.T) {
	if got, want := featuresFor(runtime.GOARCH), DetectFeatures(); got != want {
		t.Fatalf("featuresFor(GOARCH) = %+v, DetectFeatures = %+v", got, want)
	}
}

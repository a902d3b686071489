// Package cpu reports the SIMD extensions of the host processor.
//
// The raster engine logs the detected level once at construction and the
// imgfilter command prints it, so throughput numbers can be related to the
// vector kernels algo-vecmath selects at runtime. Detection runs once and is
// cached.
package cpu

import (
	"strings"
	"sync"
)

// SIMDLevel names the widest usable vector extension.
type SIMDLevel int

const (
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDAVX
	SIMDAVX2
	SIMDAVX512
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "none"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX:
		return "avx"
	case SIMDAVX2:
		return "avx2"
	case SIMDAVX512:
		return "avx512"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Features describes the host's vector capabilities.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	Architecture string // runtime.GOARCH
}

// Best returns the widest extension present.
func (f Features) Best() SIMDLevel {
	switch {
	case f.HasAVX512:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasAVX:
		return SIMDAVX
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

// Summary returns the architecture and every present extension, e.g.
// "amd64: sse2 avx avx2".
func (f Features) Summary() string {
	var names []string
	for _, e := range []struct {
		ok    bool
		level SIMDLevel
	}{
		{f.HasSSE2, SIMDSSE2},
		{f.HasAVX, SIMDAVX},
		{f.HasAVX2, SIMDAVX2},
		{f.HasAVX512, SIMDAVX512},
		{f.HasNEON, SIMDNEON},
	} {
		if e.ok {
			names = append(names, e.level.String())
		}
	}
	if len(names) == 0 {
		names = append(names, SIMDNone.String())
	}
	return f.Architecture + ": " + strings.Join(names, " ")
}

var (
	detectOnce sync.Once
	detected   Features

	forcedMu sync.RWMutex
	forced   *Features
)

// DetectFeatures returns the cached host features, or the forced set when
// one is installed.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()
	if f != nil {
		return *f
	}

	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})
	return detected
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	forced = &f
}

// ResetForcedFeatures removes an override installed by SetForcedFeatures.
func ResetForcedFeatures() {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	forced = nil
}

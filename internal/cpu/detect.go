package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reads the x/sys/cpu flags for the running
// architecture. The X86 and ARM64 tables exist on every GOARCH and stay
// zero off their own architecture, so no build tags are needed.
func detectFeaturesImpl() Features {
	return featuresFor(runtime.GOARCH)
}

func featuresFor(arch string) Features {
	f := Features{Architecture: arch}
	switch arch {
	case "amd64", "386":
		f.HasSSE2 = cpu.X86.HasSSE2
		f.HasAVX = cpu.X86.HasAVX
		f.HasAVX2 = cpu.X86.HasAVX2
		f.HasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
	case "arm64":
		f.HasNEON = cpu.ARM64.HasASIMD
	}
	return f
}

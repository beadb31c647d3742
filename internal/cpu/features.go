// Package cpu reports the host CPU features relevant to benchmarking
// this library against SIMD-accelerated alternatives.
package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the SIMD capabilities of the current process.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// String returns a short summary like "amd64 (sse2 avx2)".
func (f Features) String() string {
	s := f.Architecture + " ("
	any := false

	add := func(name string, has bool) {
		if !has {
			return
		}

		if any {
			s += " "
		}

		s += name
		any = true
	}

	add("sse2", f.HasSSE2)
	add("avx2", f.HasAVX2)
	add("avx512", f.HasAVX512)
	add("neon", f.HasNEON)

	if !any {
		s += "generic"
	}

	return s + ")"
}

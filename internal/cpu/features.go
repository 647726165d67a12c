// Package cpu provides CPU feature detection used by the engine's kernel
// selection heuristics.
package cpu

import (
	"runtime"
	"sync"

	xcpu "golang.org/x/sys/cpu"
)

// Features describes the SIMD capabilities of the host CPU.
// Only the capabilities relevant to kernel selection are exposed.
type Features struct {
	HasSSE2      bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

var (
	detectOnce sync.Once
	detected   Features
)

// DetectFeatures returns the host CPU's feature set.
// Detection runs once; subsequent calls return the cached result.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detected = Features{
			HasSSE2:      xcpu.X86.HasSSE2,
			HasAVX:       xcpu.X86.HasAVX,
			HasAVX2:      xcpu.X86.HasAVX2,
			HasAVX512:    xcpu.X86.HasAVX512F,
			HasNEON:      xcpu.ARM64.HasASIMD,
			Architecture: runtime.GOARCH,
		}
	})

	return detected
}

// Vectorized reports whether the CPU has wide-vector support worth
// exploiting with unrolled kernels.
func (f Features) Vectorized() bool {
	return f.HasAVX2 || f.HasAVX512 || f.HasNEON
}

//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on amd64 systems.
//
// Uses golang.org/x/sys/cpu which provides portable CPUID access and also
// checks that the OS saves the YMM/ZMM state (HasAVX2 is false otherwise).
func detectFeaturesImpl() Features {
	return Features{
		HasSSSE3:     cpu.X86.HasSSSE3,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512BW:  cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW,
		Architecture: runtime.GOARCH,
	}
}

//go:build !amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// No kernels exist for NEON yet; the flag is still reported so that the
// driver's cpu info and the registry see the real hardware.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      runtime.GOARCH == "arm64" && cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-pixconv/internal/cpu"
	"github.com/cwbudde/algo-pixconv/pixconv/internal/arch/registry"
)

// init registers the AVX2 kernels with the strategy registry.
//
// AVX2 provides 256-bit VPSHUFB byte shuffles. Available on Intel Haswell
// (2013+) and AMD Excavator (2015+).
//
// Priority: 20-23 (wider blocks preferred)
func init() {
	entries := []struct {
		name  string
		label string
		width int
		fn    registry.Kernel
	}{
		{"avx2x8", "avx2 (8 pixels)", 8, Convert8},
		{"avx2x16", "avx2 (16 pixels)", 16, Convert16},
		{"avx2x32", "avx2 (32 pixels)", 32, Convert32},
		{"avx2x64", "avx2 (64 pixels)", 64, Convert64},
	}

	for i, e := range entries {
		registry.Global.Register(registry.OpEntry{
			Name:       e.name,
			Label:      e.label,
			SIMDLevel:  cpu.SIMDAVX2,
			Priority:   20 + i,
			BlockWidth: e.width,
			Convert:    e.fn,
		})
	}
}

package pixconv

import (
	"github.com/cwbudde/algo-pixconv/internal/cpu"
	"github.com/cwbudde/algo-pixconv/pixconv/internal/arch/registry"
)

// Kernel converts n packed RGBA pixels from src into n packed RGB pixels in
// dst. src must hold at least 4n bytes and dst at least 3n bytes; a shorter
// buffer panics. Bytes of dst at or beyond offset 3n are never written.
type Kernel func(dst, src []byte, n int)

// Strategy is one named conversion implementation.
type Strategy struct {
	// Name is the stable identifier, e.g. "unrolled4" or "avx2x32".
	Name string

	// Label is the display name used in reports.
	Label string

	// BlockWidth is the number of pixels per loop iteration.
	BlockWidth int

	// SIMD names the instruction set the strategy needs ("None" for the
	// generic kernels).
	SIMD string

	// Convert runs the strategy.
	Convert Kernel
}

func strategyFromEntry(e registry.OpEntry) Strategy {
	return Strategy{
		Name:       e.Name,
		Label:      e.Label,
		BlockWidth: e.BlockWidth,
		SIMD:       e.SIMDLevel.String(),
		Convert:    Kernel(e.Convert),
	}
}

// Strategies returns every strategy the current CPU can run, ordered from
// the reference kernel to the most preferred one.
func Strategies() []Strategy {
	entries := registry.Global.Available(cpu.DetectFeatures())

	out := make([]Strategy, len(entries))
	for i, e := range entries {
		out[i] = strategyFromEntry(e)
	}
	return out
}

// Lookup returns the strategy called name if it is available on the
// current CPU.
func Lookup(name string) (Strategy, bool) {
	e, ok := registry.Global.Find(name)
	if !ok || !cpu.Supports(cpu.DetectFeatures(), e.SIMDLevel) {
		return Strategy{}, false
	}
	return strategyFromEntry(e), true
}

// Best returns the most preferred strategy available on the current CPU.
func Best() Strategy {
	e := registry.Global.Lookup(cpu.DetectFeatures())
	if e == nil {
		panic("pixconv: no conversion kernel registered (missing generic fallback?)")
	}
	return strategyFromEntry(*e)
}

package generic

import (
	"github.com/cwbudde/algo-pixconv/internal/cpu"
	"github.com/cwbudde/algo-pixconv/pixconv/internal/arch/registry"
)

// init registers the generic (pure Go) kernels with the strategy registry.
//
// They are always available and serve as the fallback when no vector kernel
// is supported or when ForceGeneric is enabled for testing.
//
// Priority: 0-2 (lowest; unrolled4 is the preferred generic kernel)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "copy",
		Label:      "memcpy (1 pixel)",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		BlockWidth: 1,
		Convert:    Copy,
	})
	registry.Global.Register(registry.OpEntry{
		Name:       "index",
		Label:      "raw_pointers (1 pixel)",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   1,
		BlockWidth: 1,
		Convert:    Index,
	})
	registry.Global.Register(registry.OpEntry{
		Name:       "unrolled4",
		Label:      "raw_pointers (4 pixels)",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   2,
		BlockWidth: 4,
		Convert:    Unrolled4,
	})
}

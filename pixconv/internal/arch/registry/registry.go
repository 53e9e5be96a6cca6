// Package registry provides the strategy registry for pixel conversion kernels.
//
// Every conversion strategy (scalar, unrolled, vector of a given block width)
// registers itself from an init() function in its architecture package. The
// pixconv package asks the registry either for the single best strategy for
// the current CPU (Lookup) or for every strategy the CPU can run (Available),
// which is what validation and benchmark drivers iterate.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-pixconv/internal/cpu"
)

// Kernel converts n packed RGBA pixels from src into n packed RGB pixels in
// dst. src must hold at least 4n bytes and dst at least 3n bytes; no byte of
// dst at or beyond offset 3n is written.
type Kernel func(dst, src []byte, n int)

// OpEntry is one registered conversion strategy.
type OpEntry struct {
	// Name is a short stable identifier (e.g., "unrolled4", "avx2x16").
	Name string

	// Label is the human-readable name printed by drivers.
	Label string

	// SIMDLevel indicates the instruction set required by Convert.
	SIMDLevel cpu.SIMDLevel

	// Priority determines preference among compatible entries. Higher wins.
	// Suggested priorities:
	//   - generic: 0-9
	//   - SSSE3: 10-19
	//   - AVX2: 20-29
	//   - AVX-512: 30-39
	Priority int

	// BlockWidth is the number of pixels handled per loop iteration.
	BlockWidth int

	// Convert is the kernel itself.
	Convert Kernel
}

// OpRegistry manages registration and lookup of conversion strategies.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry used by the pixconv package.
var Global = &OpRegistry{}

// Register adds a strategy to the registry.
//
// It is safe to call concurrently, but all registrations should complete
// before the first call to Lookup or Available.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority strategy supported by features, or nil
// if none is (which means no generic fallback was registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			e := *entry
			return &e
		}
	}

	return nil
}

// Available returns every strategy supported by features, ordered by
// ascending priority so that the reference kernel comes first.
func (r *OpRegistry) Available(features cpu.Features) []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []OpEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			out = append(out, r.entries[i])
		}
	}

	return out
}

// Find returns the entry registered under name, regardless of CPU support.
func (r *OpRegistry) Find(name string) (OpEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Name == name {
			return e, true
		}
	}

	return OpEntry{}, false
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort keeps registration order for equal priorities.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries in registration or
// priority order, whichever was last established.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

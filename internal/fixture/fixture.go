// Package fixture builds deterministic pixel buffers for tests, validation
// sweeps and benchmarks.
package fixture

import (
	"math/rand"
)

// Ascending returns size bytes where byte i holds (i+1) mod 256. For an
// RGBA buffer this gives pixel i the channels (4i+1, 4i+2, 4i+3, 4i+4) mod 256.
func Ascending(size int) []byte {
	out := make([]byte, size)
	for i := range out {
		out[i] = byte((i + 1) % 256)
	}
	return out
}

// Random returns size pseudo-random bytes from a fixed seed, so failures
// reproduce.
func Random(seed int64, size int) []byte {
	out := make([]byte, size)
	rng := rand.New(rand.NewSource(seed))
	_, _ = rng.Read(out)
	return out
}

// Fill returns size bytes all set to value.
func Fill(value byte, size int) []byte {
	out := make([]byte, size)
	for i := range out {
		out[i] = value
	}
	return out
}

// Guarded returns a buffer of size+guard bytes whose trailing guard bytes
// are set to canary, along with the size-byte destination slice. Use
// FirstClobbered to check that nothing wrote past the destination.
func Guarded(size, guard int, canary byte) (buf, dst []byte) {
	buf = make([]byte, size+guard)
	for i := size; i < len(buf); i++ {
		buf[i] = canary
	}
	return buf, buf[:size:size]
}

// FirstClobbered returns the offset of the first guard byte past size that no
// longer equals canary, or -1 if all are untouched.
func FirstClobbered(buf []byte, size int, canary byte) int {
	for i := size; i < len(buf); i++ {
		if buf[i] != canary {
			return i
		}
	}
	return -1
}

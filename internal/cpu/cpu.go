// Package cpu reports the SIMD extensions the pixel kernels may use.
//
// Setting PIXCONV_NOSIMD to a non-empty value other than "0" before the
// first query restricts every lookup to the generic kernels.
package cpu

import (
	"os"
	"sync"
)

// NoSIMDEnv is the environment variable that disables all SIMD kernels.
const NoSIMDEnv = "PIXCONV_NOSIMD"

// SIMDLevel names the instruction set a kernel requires.
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD optimization (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSSE3 indicates x86-64 SSSE3 (128-bit PSHUFB byte shuffles).
	SIMDSSSE3

	// SIMDAVX2 indicates x86-64 AVX2 (256-bit VPSHUFB byte shuffles).
	SIMDAVX2

	// SIMDAVX512 indicates x86-64 AVX-512 with the BW byte/word extension.
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSSE3:
		return "SSSE3"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512BW"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to pixel kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSSE3    bool // Supplemental SSE3 (PSHUFB)
	HasAVX2     bool // Advanced Vector Extensions 2
	HasAVX512BW bool // AVX-512 Foundation + Byte/Word

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// Control flags
	ForceGeneric bool // Disable all SIMD optimizations (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

// Level returns the most capable SIMD level described by f.
func (f Features) Level() SIMDLevel {
	switch {
	case f.ForceGeneric:
		return SIMDNone
	case f.HasAVX512BW:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasSSSE3:
		return SIMDSSSE3
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

var (
	detectMutex      sync.Mutex
	detectOnce       sync.Once
	detectedFeatures Features

	forcedMutex    sync.RWMutex
	forcedFeatures *Features // test override, see SetForcedFeatures
)

// DetectFeatures returns the CPU features of the running machine, or the
// forced set when SetForcedFeatures is active. The hardware probe runs once
// and honours NoSIMDEnv at that time.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		if noSIMD(os.Getenv(NoSIMDEnv)) {
			detectedFeatures.ForceGeneric = true
		}
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

func noSIMD(v string) bool {
	return v != "" && v != "0"
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return DetectFeatures().HasAVX2
}

// HasSSSE3 returns true if the CPU supports SSSE3 instructions.
func HasSSSE3() bool {
	return DetectFeatures().HasSSSE3
}

// HasNEON returns true if the CPU supports ARM NEON (Advanced SIMD) instructions.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features support the specified SIMD level.
// The kernel registry uses it to decide which strategies are available.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSSE3:
		return features.HasSSSE3
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512BW
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

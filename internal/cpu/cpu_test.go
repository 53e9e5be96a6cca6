package cpu

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
}

func TestDetectFeaturesCached(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	a := DetectFeatures()
	b := DetectFeatures()
	if a != b {
		t.Errorf("DetectFeatures not stable: %+v vs %+v", a, b)
	}
}

func TestSetForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasAVX2: true, Architecture: "amd64"})
	if !HasAVX2() {
		t.Error("HasAVX2() = false with forced AVX2")
	}
	if HasSSSE3() {
		t.Error("HasSSSE3() = true, not forced")
	}

	ResetDetection()
	if got := DetectFeatures().Architecture; got != runtime.GOARCH {
		t.Errorf("after reset Architecture = %q, want %q", got, runtime.GOARCH)
	}
}

func TestNoSIMDEnv(t *testing.T) {
	t.Setenv(NoSIMDEnv, "1")
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	if !f.ForceGeneric {
		t.Fatal("ForceGeneric not set by environment")
	}
	if f.Level() != SIMDNone {
		t.Errorf("Level() = %v, want None", f.Level())
	}
}

func TestNoSIMDValues(t *testing.T) {
	tests := map[string]bool{"": false, "0": false, "1": true, "true": true}
	for v, want := range tests {
		if got := noSIMD(v); got != want {
			t.Errorf("noSIMD(%q) = %v, want %v", v, got, want)
		}
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none always", Features{}, SIMDNone, true},
		{"avx2 present", Features{HasAVX2: true}, SIMDAVX2, true},
		{"avx2 missing", Features{HasSSSE3: true}, SIMDAVX2, false},
		{"ssse3 present", Features{HasSSSE3: true}, SIMDSSSE3, true},
		{"avx512 present", Features{HasAVX512BW: true}, SIMDAVX512, true},
		{"neon present", Features{HasNEON: true}, SIMDNEON, true},
		{"forced generic hides avx2", Features{HasAVX2: true, ForceGeneric: true}, SIMDAVX2, false},
		{"forced generic keeps none", Features{HasAVX2: true, ForceGeneric: true}, SIMDNone, true},
		{"unknown level", Features{HasAVX2: true}, SIMDLevel(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Errorf("Supports(%+v, %v) = %v, want %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		features Features
		want     SIMDLevel
	}{
		{Features{}, SIMDNone},
		{Features{HasSSSE3: true}, SIMDSSSE3},
		{Features{HasSSSE3: true, HasAVX2: true}, SIMDAVX2},
		{Features{HasSSSE3: true, HasAVX2: true, HasAVX512BW: true}, SIMDAVX512},
		{Features{HasNEON: true}, SIMDNEON},
		{Features{HasAVX2: true, ForceGeneric: true}, SIMDNone},
	}
	for _, tt := range tests {
		if got := tt.features.Level(); got != tt.want {
			t.Errorf("%+v.Level() = %v, want %v", tt.features, got, tt.want)
		}
	}
}

func TestSIMDLevelString(t *testing.T) {
	tests := map[SIMDLevel]string{
		SIMDNone:      "None",
		SIMDSSSE3:     "SSSE3",
		SIMDAVX2:      "AVX2",
		SIMDAVX512:    "AVX-512BW",
		SIMDNEON:      "NEON",
		SIMDLevel(42): "Unknown",
	}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("SIMDLevel(%d).String() = %q, want %q", int(level), got, want)
		}
	}
}

func TestReport(t *testing.T) {
	defer ResetDetection()
	SetForcedFeatures(Features{HasAVX2: true, Architecture: runtime.GOARCH})

	var buf bytes.Buffer
	if err := Report(context.Background(), &buf); err != nil {
		t.Fatalf("Report: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"GOOS/GOARCH:", "SIMD: AVX2", "lscpu"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

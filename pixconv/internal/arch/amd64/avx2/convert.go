//go:build amd64 && !purego

// Package avx2 contains the AVX2 RGBA to RGB kernels.
//
// Each kernel loads blocks of W pixels (W = 8, 16, 32 or 64) into YMM
// registers, drops every fourth byte with one VPSHUFB and writes the packed
// RGB bytes back as 16-byte stores. Pixels left over after the last full
// block are converted by the generic kernel.
package avx2

import "github.com/cwbudde/algo-pixconv/pixconv/internal/arch/generic"

// Convert8 converts n pixels, 8 per vector iteration.
func Convert8(dst, src []byte, n int) {
	blocks := prepare(dst, src, n, 8)
	if blocks > 0 {
		convertAVX2x8(dst, src, blocks)
	}
	tail(dst, src, n, blocks*8)
}

// Convert16 converts n pixels, 16 per vector iteration.
func Convert16(dst, src []byte, n int) {
	blocks := prepare(dst, src, n, 16)
	if blocks > 0 {
		convertAVX2x16(dst, src, blocks)
	}
	tail(dst, src, n, blocks*16)
}

// Convert32 converts n pixels, 32 per vector iteration.
func Convert32(dst, src []byte, n int) {
	blocks := prepare(dst, src, n, 32)
	if blocks > 0 {
		convertAVX2x32(dst, src, blocks)
	}
	tail(dst, src, n, blocks*32)
}

// Convert64 converts n pixels, 64 per vector iteration.
func Convert64(dst, src []byte, n int) {
	blocks := prepare(dst, src, n, 64)
	if blocks > 0 {
		convertAVX2x64(dst, src, blocks)
	}
	tail(dst, src, n, blocks*64)
}

// prepare checks that dst and src hold n pixels and returns the number of
// full blocks of width pixels. The assembly does no bounds checking, so a
// short buffer must panic here.
func prepare(dst, src []byte, n, width int) int {
	if n == 0 {
		return 0
	}
	_ = dst[n*3-1]
	_ = src[n*4-1]
	return n / width
}

// tail converts pixels [done, n) with the generic kernel.
func tail(dst, src []byte, n, done int) {
	generic.Index(dst[done*3:], src[done*4:], n-done)
}

// Assembly function declarations (implemented in convert_amd64.s).
// blocks must be at least 1.

//go:noescape
func convertAVX2x8(dst, src []byte, blocks int)

//go:noescape
func convertAVX2x16(dst, src []byte, blocks int)

//go:noescape
func convertAVX2x32(dst, src []byte, blocks int)

//go:noescape
func convertAVX2x64(dst, src []byte, blocks int)

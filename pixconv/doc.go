// Package pixconv converts packed RGBA pixel buffers to packed RGB.
//
// Every pixel is 4 bytes [R, G, B, A] in the source and 3 bytes [R, G, B]
// in the destination; alpha is dropped and channel values are copied
// unchanged. Several interchangeable strategies implement the conversion:
//
//   - copy: a per-pixel copy() loop, the reference implementation
//   - index: direct byte assignments, one pixel per step
//   - unrolled4: four pixels per loop iteration plus a scalar remainder
//   - avx2x8, avx2x16, avx2x32, avx2x64: VPSHUFB kernels processing 8 to 64
//     pixels per iteration (amd64 with AVX2 only)
//
// All strategies produce byte-identical output. Convert and RGBAToRGB use
// the fastest strategy the CPU supports; Strategies lists every available
// one for drivers that validate or benchmark them side by side.
//
// # Buffers
//
// Kernels never allocate, never retain either buffer and never write at or
// beyond dst[3n], even when dst has spare capacity. The vector kernels
// write overlapping 16-byte chunks inside the destination and switch to an
// exact 8+4 byte store for the final block, so callers need no padding.
//
// # Selection
//
// Vector strategies are compiled only for amd64 without the purego build
// tag and are offered only when the CPU reports AVX2. Setting
// PIXCONV_NOSIMD=1 in the environment restricts selection to the generic
// kernels.
package pixconv

// Package generic contains the pure Go RGBA to RGB kernels.
//
// They are the reference implementation, the fallback on CPUs without a
// vector strategy, and the tail loop used by the vector kernels for pixels
// that do not fill a whole block.
package generic

// Copy converts n pixels by copying the first three bytes of every four.
// It mirrors a memcpy-per-pixel loop and is the reference kernel.
func Copy(dst, src []byte, n int) {
	if n == 0 {
		return
	}
	dst, src = clip(dst, src, n)

	for i := 0; i < n; i++ {
		copy(dst[i*3:i*3+3], src[i*4:i*4+3])
	}
}

// Index converts n pixels with direct byte assignments, advancing both
// slices by one pixel per step.
func Index(dst, src []byte, n int) {
	if n == 0 {
		return
	}
	dst, src = clip(dst, src, n)

	for len(dst) >= 3 && len(src) >= 4 {
		dst[0] = src[0]
		dst[1] = src[1]
		dst[2] = src[2]
		dst = dst[3:]
		src = src[4:]
	}
}

// Unrolled4 converts n pixels four at a time, then finishes the n%4
// remaining pixels one by one.
func Unrolled4(dst, src []byte, n int) {
	if n == 0 {
		return
	}
	dst, src = clip(dst, src, n)

	blocks := n / 4
	for i := 0; i < blocks; i++ {
		d := dst[i*12 : i*12+12 : i*12+12]
		s := src[i*16 : i*16+16 : i*16+16]

		d[0], d[1], d[2] = s[0], s[1], s[2]
		d[3], d[4], d[5] = s[4], s[5], s[6]
		d[6], d[7], d[8] = s[8], s[9], s[10]
		d[9], d[10], d[11] = s[12], s[13], s[14]
	}

	Index(dst[blocks*12:], src[blocks*16:], n-blocks*4)
}

// clip bounds dst and src to exactly n pixels. Indexing the last byte checks
// against len rather than cap, so a short buffer panics instead of letting a
// kernel write into spare capacity.
func clip(dst, src []byte, n int) ([]byte, []byte) {
	_ = dst[n*3-1]
	_ = src[n*4-1]
	return dst[:n*3], src[:n*4]
}

package pixconv

import (
	"sync"

	"github.com/cwbudde/algo-pixconv/internal/cpu"
)

var (
	convertImpl     Kernel
	convertInitOnce sync.Once
)

func initConvertKernel() {
	s := Best()
	convertImpl = s.Convert

	Logger().Debug("pixconv: kernel selected",
		"strategy", s.Name,
		"block", s.BlockWidth,
		"simd", cpu.DetectFeatures().Level().String(),
	)
}

// Convert converts n pixels from src (4n bytes of RGBA) into dst (3n bytes
// of RGB) using the best strategy for the current CPU. It does nothing for
// n == 0 and panics if either buffer is too short.
func Convert(dst, src []byte, n int) {
	if n < 0 {
		panic("pixconv: negative pixel count")
	}
	if n == 0 {
		return
	}
	convertInitOnce.Do(initConvertKernel)
	convertImpl(dst, src, n)
}

// RGBAToRGB converts all of src into dst and returns the number of pixels
// converted. len(src) must be a multiple of 4 and dst must hold at least
// len(src)/4*3 bytes.
func RGBAToRGB(dst, src []byte) int {
	if len(src)%4 != 0 {
		panic("pixconv: source length is not a multiple of 4")
	}
	n := len(src) / 4
	if len(dst) < n*3 {
		panic("pixconv: destination too short")
	}
	Convert(dst, src, n)
	return n
}

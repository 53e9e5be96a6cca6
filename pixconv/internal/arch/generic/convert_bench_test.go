package generic

import "testing"

var benchSizes = []struct {
	name string
	size int
}{
	{"64", 64},
	{"1K", 1024},
	{"64K", 65536},
	{"1080p", 1920 * 1080},
}

func BenchmarkKernels(b *testing.B) {
	for _, k := range kernels {
		for _, tc := range benchSizes {
			b.Run(k.name+"/"+tc.name, func(b *testing.B) {
				src := ascending(tc.size)
				dst := make([]byte, tc.size*3)

				b.SetBytes(int64(tc.size * 4))
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					k.fn(dst, src, tc.size)
				}
			})
		}
	}
}

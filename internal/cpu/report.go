package cpu

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"time"
)

// lscpuTimeout bounds the external lscpu call made by Report.
const lscpuTimeout = 5 * time.Second

// Report writes a human-readable summary of the host CPU to w: the Go
// runtime view, the detected kernel-relevant features and, where available,
// the output of lscpu (it carries model names that /proc/cpuinfo lacks).
//
// A missing or failing lscpu is reported inline and is not an error; only
// write errors on w are returned.
func Report(ctx context.Context, w io.Writer) error {
	f := DetectFeatures()
	if _, err := fmt.Fprintf(w, "GOOS/GOARCH: %s/%s\nLogical CPUs: %d\nGo: %s\n",
		runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), runtime.Version()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "SIMD: %s (ssse3=%t avx2=%t avx512bw=%t neon=%t force-generic=%t)\n",
		f.Level(), f.HasSSSE3, f.HasAVX2, f.HasAVX512BW, f.HasNEON, f.ForceGeneric); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, lscpuTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "lscpu").Output()
	if err != nil {
		_, werr := fmt.Fprintf(w, "lscpu: unavailable (%v)\n", err)
		return werr
	}
	if _, err := io.WriteString(w, "lscpu:\n"); err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

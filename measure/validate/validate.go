// Package validate runs every conversion strategy over a sweep of pixel
// counts and checks each output with the pixconv verifier.
//
// A failing (strategy, size) pair is reported and the sweep carries on;
// nothing aborts a run except a cancelled context.
package validate

import (
	"context"
	"fmt"
	"io"

	"github.com/cwbudde/algo-pixconv/internal/fixture"
	"github.com/cwbudde/algo-pixconv/pixconv"
)

const (
	guardLen = 64
	canary   = 0xA5
)

// Options controls a validation sweep.
type Options struct {
	// Out receives the per-case progress lines and verifier dumps. Nil
	// discards them.
	Out io.Writer

	// Random selects seeded random source data instead of the ascending
	// fixture.
	Random bool

	// Seed is used when Random is set.
	Seed int64
}

// Failure records one (strategy, size) pair that did not convert correctly.
type Failure struct {
	Strategy string
	Label    string
	Pixels   int

	// Mismatch is set when the RGB bytes were wrong.
	Mismatch *pixconv.Mismatch

	// Overshoot is the offset past 3n of the first clobbered guard byte,
	// or -1.
	Overshoot int
}

func (f Failure) String() string {
	if f.Mismatch != nil {
		return fmt.Sprintf("%s failed for %d pixels: %v", f.Label, f.Pixels, *f.Mismatch)
	}
	return fmt.Sprintf("%s failed for %d pixels: guard byte %d past the destination overwritten",
		f.Label, f.Pixels, f.Overshoot)
}

// Report summarises a sweep.
type Report struct {
	Cases    int
	Runs     int
	Failures []Failure
}

// OK reports whether every run passed.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// Sizes returns the pixel counts 0..maxSweep followed by extra.
func Sizes(maxSweep int, extra ...int) []int {
	sizes := make([]int, 0, maxSweep+1+len(extra))
	for n := 0; n <= maxSweep; n++ {
		sizes = append(sizes, n)
	}
	return append(sizes, extra...)
}

// DefaultSizes is 0..512 plus 800x600 and 1920x1080.
func DefaultSizes() []int {
	return Sizes(512, 800*600, 1920*1080)
}

// Run converts every size with every strategy and verifies the result.
// Each run gets a fresh source and a zeroed destination of exactly 3n
// bytes followed by guard bytes.
func Run(ctx context.Context, strategies []pixconv.Strategy, sizes []int, opts Options) (Report, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	var rep Report
	for k, n := range sizes {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		fmt.Fprintf(out, "%d. Validation case: %d pixels\n", k, n)
		rep.Cases++

		for _, s := range strategies {
			src := source(opts, n)
			buf, dst := fixture.Guarded(n*3, guardLen, canary)

			s.Convert(dst, src, n)
			rep.Runs++

			f := Failure{Strategy: s.Name, Label: s.Label, Pixels: n, Overshoot: -1}
			bad := false
			if !pixconv.Verify(out, src, dst, n) {
				m, _ := pixconv.FirstMismatch(src, dst, n)
				f.Mismatch = &m
				bad = true
			}
			if off := fixture.FirstClobbered(buf, n*3, canary); off >= 0 {
				f.Overshoot = off - n*3
				bad = true
			}
			if bad {
				fmt.Fprintf(out, "%s failed for %d pixels\n", s.Label, n)
				rep.Failures = append(rep.Failures, f)
			}
		}
	}

	pixconv.Logger().Debug("validate: sweep finished",
		"cases", rep.Cases,
		"runs", rep.Runs,
		"failures", len(rep.Failures),
	)
	return rep, nil
}

func source(opts Options, n int) []byte {
	if opts.Random {
		return fixture.Random(opts.Seed+int64(n), n*4)
	}
	return fixture.Ascending(n * 4)
}

// Package throughput times conversion strategies over fixed buffers.
//
// It is the measurement side of the benchmark driver: a warmup phase, then
// a fixed number of timed samples per strategy, summarised with
// stats/timing.
package throughput

import (
	"context"
	"errors"
	"time"

	"github.com/cwbudde/algo-pixconv/pixconv"
	"github.com/cwbudde/algo-pixconv/stats/timing"
)

// Options controls a benchmark run.
type Options struct {
	// Warmup is the number of untimed calls before sampling.
	Warmup int

	// Iterations is the number of timed samples.
	Iterations int

	// Batch is the number of calls per sample. Values below 1 mean 1.
	// Raise it for small frames where a single call is near timer
	// resolution.
	Batch int
}

// DefaultOptions returns the options used by the driver when none are given.
func DefaultOptions() Options {
	return Options{Warmup: 100, Iterations: 500, Batch: 1}
}

// Result is the outcome of benchmarking one strategy.
type Result struct {
	Name  string
	Label string

	// Pixels and Bytes describe one call; Bytes counts source bytes read.
	Pixels int
	Bytes  int64

	// Stats holds per-call durations (a batch sample divided by Batch).
	Stats timing.Stats
}

// MBps returns the mean throughput in source megabytes per second.
func (r Result) MBps() float64 {
	return timing.MBps(r.Bytes, r.Stats.Mean)
}

// ErrNoIterations is returned when Options.Iterations is not positive.
var ErrNoIterations = errors.New("throughput: iterations must be positive")

// Measure times fn according to opts and returns per-call statistics. The
// context is checked between samples; on cancellation the samples gathered
// so far are discarded and ctx.Err() is returned.
func Measure(ctx context.Context, fn func(), opts Options) (timing.Stats, error) {
	if opts.Iterations <= 0 {
		return timing.Stats{}, ErrNoIterations
	}
	batch := max(opts.Batch, 1)

	for i := 0; i < opts.Warmup; i++ {
		fn()
	}

	samples := make([]time.Duration, opts.Iterations)
	for i := range samples {
		if err := ctx.Err(); err != nil {
			return timing.Stats{}, err
		}
		start := time.Now()
		for j := 0; j < batch; j++ {
			fn()
		}
		samples[i] = time.Since(start) / time.Duration(batch)
	}

	return timing.Calculate(samples), nil
}

// Run benchmarks each strategy converting n pixels from src into dst.
// The same buffers are reused for every strategy and every call.
func Run(ctx context.Context, strategies []pixconv.Strategy, dst, src []byte, n int, opts Options) ([]Result, error) {
	results := make([]Result, 0, len(strategies))
	for _, s := range strategies {
		convert := s.Convert
		stats, err := Measure(ctx, func() { convert(dst, src, n) }, opts)
		if err != nil {
			return results, err
		}

		pixconv.Logger().Debug("throughput: strategy measured",
			"strategy", s.Name,
			"mean_ns", stats.Mean,
			"samples", stats.Count,
		)

		results = append(results, Result{
			Name:   s.Name,
			Label:  s.Label,
			Pixels: n,
			Bytes:  int64(n) * 4,
			Stats:  stats,
		})
	}
	return results, nil
}

// Package timing computes summary statistics over benchmark samples.
//
// Samples are per-iteration durations. Statistics are reported in
// nanoseconds as float64 so that sub-nanosecond averages survive.
package timing

import (
	"math"
	"slices"
	"time"

	"github.com/cwbudde/algo-vecmath"
)

// Stats holds statistics of a set of duration samples.
type Stats struct {
	Count  int
	Total  time.Duration
	Min    float64 // ns
	MinPos int
	Max    float64 // ns
	MaxPos int
	Mean   float64 // ns
	Median float64 // ns
	StdDev float64 // ns, population
	CV     float64 // StdDev / Mean
}

// Calculate computes statistics of samples. An empty input yields the zero
// Stats.
func Calculate(samples []time.Duration) Stats {
	n := len(samples)
	if n == 0 {
		return Stats{}
	}

	ns := make([]float64, n)
	for i, d := range samples {
		ns[i] = float64(d.Nanoseconds())
	}

	total := vecmath.Sum(ns)
	mean := total / float64(n)
	meanSq := vecmath.DotProduct(ns, ns) / float64(n)
	variance := math.Max(meanSq-mean*mean, 0)

	minVal, minPos := ns[0], 0
	for i, x := range ns {
		if x < minVal {
			minVal, minPos = x, i
		}
	}
	// Durations are non-negative, so the peak magnitude is the maximum.
	maxVal := vecmath.MaxAbs(ns)
	maxPos := slices.Index(ns, maxVal)

	stddev := math.Sqrt(variance)
	var cv float64
	if mean > 0 {
		cv = stddev / mean
	}

	return Stats{
		Count:  n,
		Total:  time.Duration(total),
		Min:    minVal,
		MinPos: minPos,
		Max:    maxVal,
		MaxPos: maxPos,
		Mean:   mean,
		Median: median(ns),
		StdDev: stddev,
		CV:     cv,
	}
}

// median sorts x in place and returns its median.
func median(x []float64) float64 {
	slices.Sort(x)
	n := len(x)
	if n%2 == 1 {
		return x[n/2]
	}
	return (x[n/2-1] + x[n/2]) / 2
}

// Throughput returns bytes processed per second for one operation of the
// given duration in nanoseconds. It returns 0 for non-positive durations.
func Throughput(bytes int64, ns float64) float64 {
	if ns <= 0 {
		return 0
	}
	return float64(bytes) / (ns / 1e9)
}

// MBps is Throughput expressed in megabytes (1e6 bytes) per second.
func MBps(bytes int64, ns float64) float64 {
	return Throughput(bytes, ns) / 1e6
}

package throughput

import (
	"context"
	"errors"
	"testing"

	"github.com/cwbudde/algo-pixconv/internal/fixture"
	"github.com/cwbudde/algo-pixconv/pixconv"
)

func TestMeasureCounts(t *testing.T) {
	calls := 0
	stats, err := Measure(context.Background(), func() { calls++ }, Options{Warmup: 3, Iterations: 5, Batch: 2})
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if calls != 3+5*2 {
		t.Errorf("calls = %d, want 13", calls)
	}
	if stats.Count != 5 {
		t.Errorf("Count = %d, want 5", stats.Count)
	}
}

func TestMeasureNoIterations(t *testing.T) {
	_, err := Measure(context.Background(), func() {}, Options{})
	if !errors.Is(err, ErrNoIterations) {
		t.Errorf("err = %v, want ErrNoIterations", err)
	}
}

func TestMeasureCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Measure(ctx, func() {}, Options{Iterations: 10})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRun(t *testing.T) {
	const n = 1024
	src := fixture.Fill(255, n*4)
	dst := make([]byte, n*3)

	strategies := pixconv.Strategies()
	results, err := Run(context.Background(), strategies, dst, src, n, Options{Warmup: 1, Iterations: 3})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != len(strategies) {
		t.Fatalf("got %d results, want %d", len(results), len(strategies))
	}
	for i, r := range results {
		if r.Name != strategies[i].Name || r.Bytes != n*4 || r.Stats.Count != 3 {
			t.Errorf("result %d = %+v", i, r)
		}
		if r.Stats.Mean > 0 && r.MBps() <= 0 {
			t.Errorf("%s: MBps = %v", r.Name, r.MBps())
		}
	}
	if !pixconv.Verify(nil, src, dst, n) {
		t.Error("benchmark buffers hold a wrong conversion")
	}
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.Iterations <= 0 || o.Warmup < 0 || o.Batch < 1 {
		t.Errorf("bad defaults %+v", o)
	}
}

// Command rgbabench validates and benchmarks the RGBA to RGB conversion
// strategies available on this machine.
//
// Usage:
//
//	rgbabench [flags]
//
// It first runs every strategy over 0..max-sweep pixels plus 800x600 and a
// width x height frame and verifies each output, then times every strategy
// converting the width x height frame. Findings are printed to stdout; the
// exit status is 0 whenever the run completes, even if a strategy failed
// validation.
//
// Examples:
//
//	rgbabench
//	rgbabench -cpuinfo -iterations 5000
//	rgbabench -skip-validate -strategy avx2x32,unrolled4
//	rgbabench -image photo.webp -width 3840 -height 2160
//	PIXCONV_NOSIMD=1 rgbabench -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-pixconv/internal/cpu"
	"github.com/cwbudde/algo-pixconv/internal/fixture"
	"github.com/cwbudde/algo-pixconv/measure/throughput"
	"github.com/cwbudde/algo-pixconv/measure/validate"
	"github.com/cwbudde/algo-pixconv/pixconv"
)

type config struct {
	width, height int
	maxSweep      int
	warmup        int
	iterations    int
	batch         int
	strategies    string
	image         string
	random        bool
	seed          int64
	list          bool
	cpuinfo       bool
	skipValidate  bool
	skipBench     bool
	verbose       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	def := throughput.DefaultOptions()

	fs := flag.NewFlagSet("rgbabench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.width, "width", 1920, "benchmark frame width in pixels")
	fs.IntVar(&cfg.height, "height", 1080, "benchmark frame height in pixels")
	fs.IntVar(&cfg.maxSweep, "max-sweep", 512, "validate every pixel count from 0 to this value")
	fs.IntVar(&cfg.warmup, "warmup", def.Warmup, "untimed calls per strategy before sampling")
	fs.IntVar(&cfg.iterations, "iterations", def.Iterations, "timed samples per strategy")
	fs.IntVar(&cfg.batch, "batch", def.Batch, "calls per timed sample")
	fs.StringVar(&cfg.strategies, "strategy", "", "comma-separated strategy names (default: all available)")
	fs.StringVar(&cfg.image, "image", "", "decode this image (png, jpeg, gif, bmp, tiff, webp) as the benchmark frame")
	fs.BoolVar(&cfg.random, "random", false, "validate with seeded random data instead of ascending bytes")
	fs.Int64Var(&cfg.seed, "seed", 1, "seed for -random")
	fs.BoolVar(&cfg.list, "list", false, "list available strategies and exit")
	fs.BoolVar(&cfg.cpuinfo, "cpuinfo", false, "print CPU information first")
	fs.BoolVar(&cfg.skipValidate, "skip-validate", false, "skip the validation sweep")
	fs.BoolVar(&cfg.skipBench, "skip-bench", false, "skip the benchmark")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rgbabench [flags]\n\n")
		fmt.Fprintf(stderr, "Validates and benchmarks RGBA to RGB conversion strategies.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment:\n")
		fmt.Fprintf(stderr, "  %s=1  use generic kernels only\n", cpu.NoSIMDEnv)
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.width < 0 || cfg.height < 0 || cfg.maxSweep < 0 {
		return cfg, errors.New("width, height and max-sweep must not be negative")
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	pixconv.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	strategies := resolveStrategies(cfg.strategies, stderr)

	if cfg.list {
		printList(stdout, strategies)
		return 0
	}

	if cfg.cpuinfo {
		if err := cpu.Report(ctx, stdout); err != nil {
			fmt.Fprintf(stderr, "error: failed to write cpu info: %v\n", err)
		}
		fmt.Fprintln(stdout)
	}

	if len(strategies) == 0 {
		fmt.Fprintf(stderr, "error: no matching strategies (use -list to see available)\n")
		return 0
	}

	if !cfg.skipValidate {
		sizes := validate.Sizes(cfg.maxSweep, 800*600, cfg.width*cfg.height)
		rep, err := validate.Run(ctx, strategies, sizes, validate.Options{
			Out:    stdout,
			Random: cfg.random,
			Seed:   cfg.seed,
		})
		if err != nil {
			fmt.Fprintf(stderr, "error: validation interrupted: %v\n", err)
			return 0
		}
		printValidationSummary(stdout, rep)
	}

	if !cfg.skipBench {
		if err := benchmark(ctx, cfg, strategies, stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "error: benchmark interrupted: %v\n", err)
		}
	}

	return 0
}

func resolveStrategies(list string, stderr io.Writer) []pixconv.Strategy {
	if strings.TrimSpace(list) == "" {
		return pixconv.Strategies()
	}

	var result []pixconv.Strategy
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		s, ok := pixconv.Lookup(name)
		if !ok {
			fmt.Fprintf(stderr, "warning: unknown or unsupported strategy %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, s)
	}
	return result
}

func printList(w io.Writer, strategies []pixconv.Strategy) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tLabel\tBlock\tSIMD\n")
	fmt.Fprintf(tw, "----\t-----\t-----\t----\n")
	for _, s := range strategies {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.Name, s.Label, s.BlockWidth, s.SIMD)
	}
	_ = tw.Flush()
}

func printValidationSummary(w io.Writer, rep validate.Report) {
	fmt.Fprintf(w, "\nValidation: %d cases, %d runs, %d failures\n", rep.Cases, rep.Runs, len(rep.Failures))
	for _, f := range rep.Failures {
		fmt.Fprintf(w, "  %v\n", f)
	}
}

// benchFrame returns the RGBA source for the benchmark: the decoded image
// when one is given and loads, otherwise an opaque white frame.
func benchFrame(cfg config, stderr io.Writer) (src []byte, n int) {
	if cfg.image != "" {
		img, err := fixture.FromImageFile(cfg.image, cfg.width, cfg.height)
		if err == nil {
			return img.Pix, img.Rect.Dx() * img.Rect.Dy()
		}
		fmt.Fprintf(stderr, "warning: %v; using a solid frame\n", err)
	}
	n = cfg.width * cfg.height
	return fixture.Fill(255, n*4), n
}

func benchmark(ctx context.Context, cfg config, strategies []pixconv.Strategy, stdout, stderr io.Writer) error {
	src, n := benchFrame(cfg, stderr)
	dst := make([]byte, n*3)

	opts := throughput.Options{Warmup: cfg.warmup, Iterations: cfg.iterations, Batch: cfg.batch}
	fmt.Fprintf(stdout, "\nRGBA to RGB: %d pixels, iterations: %d, warmup: %d\n", n, opts.Iterations, opts.Warmup)

	results, err := throughput.Run(ctx, strategies, dst, src, n, opts)
	if len(results) > 0 {
		printResults(stdout, results)
	}
	return err
}

func printResults(w io.Writer, results []throughput.Result) {
	base := results[0].Stats.Mean

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "relative\tns/op\tmedian\tmin\terr%%\tMB/s\tstrategy\t\n")
	fmt.Fprintf(tw, "--------\t-----\t------\t---\t----\t----\t--------\t\n")
	for _, r := range results {
		rel := 0.0
		if r.Stats.Mean > 0 {
			rel = base / r.Stats.Mean * 100
		}
		fmt.Fprintf(tw, "%.1f%%\t%.0f\t%.0f\t%.0f\t%.1f%%\t%.1f\t%s\t\n",
			rel,
			r.Stats.Mean,
			r.Stats.Median,
			r.Stats.Min,
			r.Stats.CV*100,
			r.MBps(),
			r.Label,
		)
	}
	_ = tw.Flush()
}

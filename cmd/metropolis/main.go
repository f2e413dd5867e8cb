// Command metropolis samples the rugged test density and prints an ASCII
// histogram of the result.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/talgya/warband/internal/entropy"
	"github.com/talgya/warband/internal/sampler"
)

const barWidth = 60

func main() {
	samples := flag.Int("samples", 100000, "number of retained samples")
	burn := flag.Int("burn", 1000, "burn-in steps discarded before retention")
	width := flag.Float64("width", 1.0, "half-width of the uniform proposal")
	seed := flag.Int64("seed", 7, "random seed")
	bins := flag.Int("bins", 40, "histogram bin count")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := sampler.Config{
		Steps:  *samples,
		BurnIn: *burn,
		Width:  *width,
	}

	res, err := sampler.Metropolis(sampler.Rugged, cfg, entropy.New(*seed))
	if err != nil {
		slog.Error("sampling failed", "error", err)
		os.Exit(1)
	}

	mean, stddev := moments(res.Samples)
	fmt.Printf("Drew %s samples (%s burn-in, width %.2f, seed %d).\n",
		humanize.Comma(int64(len(res.Samples))), humanize.Comma(int64(*burn)), *width, *seed)
	fmt.Printf("Acceptance rate %.3f, mean %.4f, stddev %.4f.\n\n",
		res.AcceptanceRate(), mean, stddev)

	printHistogram(res.Samples, *bins)
}

func moments(xs []float64) (mean, stddev float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	var variance float64
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(xs))
	return mean, math.Sqrt(variance)
}

func printHistogram(xs []float64, bins int) {
	if len(xs) == 0 || bins <= 0 {
		return
	}

	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	if hi == lo {
		hi = lo + 1
	}

	counts := make([]int, bins)
	binWidth := (hi - lo) / float64(bins)
	for _, x := range xs {
		i := int((x - lo) / binWidth)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}

	peak := 0
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}

	for i, c := range counts {
		center := lo + (float64(i)+0.5)*binWidth
		bar := strings.Repeat("#", c*barWidth/peak)
		fmt.Printf("%7.2f | %-*s %d\n", center, barWidth, bar, c)
	}
}

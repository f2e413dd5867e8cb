// Package sampler implements Metropolis accept/reject sampling over an
// unnormalized density. It is independent of the agent simulation and shares
// only the entropy source abstraction with it.
package sampler

import (
	"fmt"

	"github.com/talgya/warband/internal/entropy"
)

// Target is an unnormalized density. It must be non-negative everywhere the
// walk can reach; it does not need to integrate to 1.
type Target func(x float64) float64

// Config controls a Metropolis run.
type Config struct {
	Steps   int     // Number of retained samples
	BurnIn  int     // Steps discarded before retention starts
	Width   float64 // Half-width of the symmetric uniform proposal
	Initial float64 // Starting point of the walk
}

// Result holds the retained samples and acceptance bookkeeping.
type Result struct {
	Samples  []float64
	Accepted int // Accepted proposals across burn-in and retention
	Total    int // Total proposals made
}

// AcceptanceRate returns the fraction of proposals accepted.
func (r Result) AcceptanceRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Accepted) / float64(r.Total)
}

// Metropolis runs a random walk over target: from the current point x, propose
// x' = x + Uniform(-w, w), accept with probability min(1, target(x')/target(x)).
// Draws come from rng only, so a seeded source reproduces the walk exactly.
func Metropolis(target Target, cfg Config, rng entropy.Source) (Result, error) {
	if target == nil {
		return Result{}, fmt.Errorf("target density must not be nil")
	}
	if cfg.Steps <= 0 {
		return Result{}, fmt.Errorf("steps must be > 0, got %d", cfg.Steps)
	}
	if cfg.BurnIn < 0 {
		return Result{}, fmt.Errorf("burn-in must be >= 0, got %d", cfg.BurnIn)
	}
	if cfg.Width <= 0 {
		return Result{}, fmt.Errorf("proposal width must be > 0, got %g", cfg.Width)
	}

	x := cfg.Initial
	px := target(x)
	if px < 0 {
		return Result{}, fmt.Errorf("target density is negative at initial point %g", cfg.Initial)
	}

	res := Result{Samples: make([]float64, 0, cfg.Steps)}
	total := cfg.BurnIn + cfg.Steps

	for i := 0; i < total; i++ {
		proposal := x + (2*rng.Float64()-1)*cfg.Width
		pp := target(proposal)
		if pp < 0 {
			return Result{}, fmt.Errorf("target density is negative at %g", proposal)
		}

		res.Total++
		// Accept when the density ratio beats a uniform draw. A zero-density
		// current point accepts any proposal with positive density.
		if px == 0 || pp/px >= rng.Float64() {
			x = proposal
			px = pp
			res.Accepted++
		}

		if i >= cfg.BurnIn {
			res.Samples = append(res.Samples, x)
		}
	}

	return res, nil
}

// Test densities for the sampler.
package sampler

import "math"

// Rugged is the unnormalized multi-peaked density p(x) ∝ exp(-x²)·(2 + sin 5x
// + sin 2x). Strictly positive everywhere, concentrated on roughly [-3, 3].
func Rugged(x float64) float64 {
	return math.Exp(-x*x) * (2 + math.Sin(5*x) + math.Sin(2*x))
}

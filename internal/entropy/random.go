// Package entropy provides the seedable randomness source threaded through
// every stochastic operation in the simulation.
package entropy

import (
	crypto "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Source supplies every kind of random draw the simulation makes: uniform
// floats in [0,1) for probability checks, bounded integers for strength rolls
// and opponent picks, and permutations for activation order. *math/rand.Rand
// satisfies it directly; tests substitute scripted implementations.
type Source interface {
	Float64() float64
	Intn(n int) int
	Perm(n int) []int
}

// New returns a Source seeded with the given value. Two Sources built from the
// same seed produce identical draw streams.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewFromEntropy returns a Source seeded from crypto/rand, for runs where
// reproducibility is not wanted. Falls back to a fixed seed if the system
// entropy pool is unreadable.
func NewFromEntropy() Source {
	var buf [8]byte
	if _, err := crypto.Read(buf[:]); err != nil {
		return New(1)
	}
	return New(int64(binary.LittleEndian.Uint64(buf[:])))
}

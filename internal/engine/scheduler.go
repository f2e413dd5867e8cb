// Random-activation scheduler.
package engine

import (
	"github.com/talgya/warband/internal/agents"
	"github.com/talgya/warband/internal/entropy"
)

// Scheduler activates every warrior in a roster exactly once per tick, in a
// fresh uniformly random order each tick.
type Scheduler struct {
	rng entropy.Source
}

// NewScheduler creates a scheduler drawing its activation order from rng.
func NewScheduler(rng entropy.Source) *Scheduler {
	return &Scheduler{rng: rng}
}

// RunTick runs one tick: draws a random permutation of the roster and invokes
// act once per warrior in that order. Activation is sequential — state
// mutated by earlier activations is visible to later ones within the same
// tick; there is no tick-wide snapshot.
func (sc *Scheduler) RunTick(r *agents.Roster, act func(*agents.Warrior)) {
	for _, i := range sc.rng.Perm(r.Len()) {
		act(r.At(i))
	}
}

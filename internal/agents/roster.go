// Roster — the fixed-size ordered collection owning every warrior.
package agents

import (
	"fmt"

	"github.com/talgya/warband/internal/entropy"
)

// Roster owns all warriors in a simulation. Size is fixed at construction;
// warriors are keyed 0..n-1 in creation order and never added or removed.
type Roster struct {
	warriors []*Warrior
}

// NewRoster creates n warriors with keys 0..n-1, rolling each warrior's
// starting strength from rng in key order.
func NewRoster(n int, rng entropy.Source) (*Roster, error) {
	if n < 0 {
		return nil, fmt.Errorf("roster size must be >= 0, got %d", n)
	}
	warriors := make([]*Warrior, n)
	for i := range warriors {
		warriors[i] = NewWarrior(WarriorID(i), rng)
	}
	return &Roster{warriors: warriors}, nil
}

// Len returns the number of warriors in the roster.
func (r *Roster) Len() int {
	return len(r.warriors)
}

// At returns the warrior at position i (== key i).
func (r *Roster) At(i int) *Warrior {
	return r.warriors[i]
}

// All returns every warrior in key order. The slice is the roster's own;
// callers must not reorder it.
func (r *Roster) All() []*Warrior {
	return r.warriors
}

// PickRandom selects one warrior uniformly at random from the full roster.
// The pick is unconstrained — it may land on the caller's own warrior.
// The roster must be non-empty.
func (r *Roster) PickRandom(rng entropy.Source) *Warrior {
	return r.warriors[rng.Intn(len(r.warriors))]
}

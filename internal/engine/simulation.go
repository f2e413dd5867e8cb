// Simulation owns the roster and scheduler and advances the world one tick at
// a time.
package engine

import (
	"fmt"

	"github.com/talgya/warband/internal/agents"
	"github.com/talgya/warband/internal/entropy"
)

// Simulation holds the complete simulation state. All randomness — initial
// strength rolls, activation order, hunt and wrestle rolls, opponent picks —
// comes from the single Source supplied at construction, so runs are
// reproducible from a seed.
type Simulation struct {
	Roster   *agents.Roster
	LastTick uint64 // Most recent tick processed

	// Aggregate statistics, refreshed after every step.
	Stats SimStats

	sched *Scheduler
	rng   entropy.Source
}

// SimStats tracks aggregate roster statistics.
type SimStats struct {
	Warriors    int     `json:"warriors"`
	AvgXP       float64 `json:"avg_xp"`
	MinXP       float64 `json:"min_xp"`
	MaxXP       float64 `json:"max_xp"`
	AvgStrength float64 `json:"avg_strength"`
	MaxStrength int     `json:"max_strength"`
}

// NewSimulation builds a roster of n warriors and the scheduler driving them.
func NewSimulation(n int, rng entropy.Source) (*Simulation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("population size must be > 0, got %d", n)
	}

	roster, err := agents.NewRoster(n, rng)
	if err != nil {
		return nil, fmt.Errorf("build roster: %w", err)
	}

	sim := &Simulation{
		Roster: roster,
		sched:  NewScheduler(rng),
		rng:    rng,
	}
	sim.updateStats()
	return sim, nil
}

// Step advances the simulation by one tick: every warrior is activated
// exactly once, in a fresh random order.
func (s *Simulation) Step() {
	s.LastTick++
	s.sched.RunTick(s.Roster, func(w *agents.Warrior) {
		agents.TakeTurn(w, s.Roster, s.rng)
	})
	s.updateStats()
}

// CurrentTick returns the most recently processed tick number.
func (s *Simulation) CurrentTick() uint64 {
	return s.LastTick
}

// Results returns a value copy of every warrior's (xp, strength) state in key
// order — the read-out interface for external consumers.
func (s *Simulation) Results() []agents.Warrior {
	out := make([]agents.Warrior, 0, s.Roster.Len())
	for _, w := range s.Roster.All() {
		out = append(out, *w)
	}
	return out
}

// Strongest returns the warrior with the highest strength, ties broken by
// lower key. Nil for an empty roster.
func (s *Simulation) Strongest() *agents.Warrior {
	var best *agents.Warrior
	for _, w := range s.Roster.All() {
		if best == nil || w.Strength > best.Strength {
			best = w
		}
	}
	return best
}

func (s *Simulation) updateStats() {
	n := s.Roster.Len()
	s.Stats = SimStats{Warriors: n}
	if n == 0 {
		return
	}

	totalXP := 0.0
	totalStrength := 0
	s.Stats.MinXP = s.Roster.At(0).XP
	s.Stats.MaxXP = s.Roster.At(0).XP

	for _, w := range s.Roster.All() {
		totalXP += w.XP
		totalStrength += w.Strength
		if w.XP < s.Stats.MinXP {
			s.Stats.MinXP = w.XP
		}
		if w.XP > s.Stats.MaxXP {
			s.Stats.MaxXP = w.XP
		}
		if w.Strength > s.Stats.MaxStrength {
			s.Stats.MaxStrength = w.Strength
		}
	}

	s.Stats.AvgXP = totalXP / float64(n)
	s.Stats.AvgStrength = float64(totalStrength) / float64(n)
}

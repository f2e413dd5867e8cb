package engine

import (
	"testing"

	"github.com/talgya/warband/internal/agents"
	"github.com/talgya/warband/internal/entropy"
)

func TestRunTickActivatesEachWarriorExactlyOnce(t *testing.T) {
	rng := entropy.New(3)
	roster, err := agents.NewRoster(50, rng)
	if err != nil {
		t.Fatalf("new roster: %v", err)
	}
	sched := NewScheduler(rng)

	for tick := 0; tick < 20; tick++ {
		counts := map[agents.WarriorID]int{}
		sched.RunTick(roster, func(w *agents.Warrior) {
			counts[w.ID]++
		})

		if len(counts) != 50 {
			t.Fatalf("tick %d: %d warriors activated, want 50", tick, len(counts))
		}
		for id, c := range counts {
			if c != 1 {
				t.Fatalf("tick %d: warrior %d activated %d times", tick, id, c)
			}
		}
	}
}

func TestRunTickOrderVariesAcrossTicks(t *testing.T) {
	rng := entropy.New(5)
	roster, err := agents.NewRoster(20, rng)
	if err != nil {
		t.Fatalf("new roster: %v", err)
	}
	sched := NewScheduler(rng)

	orders := map[string]struct{}{}
	for tick := 0; tick < 10; tick++ {
		var order []byte
		sched.RunTick(roster, func(w *agents.Warrior) {
			order = append(order, byte(w.ID))
		})
		orders[string(order)] = struct{}{}
	}

	// 10 permutations of 20 warriors should essentially never coincide.
	if len(orders) < 2 {
		t.Fatalf("activation order identical across 10 ticks")
	}
}

func TestRunTickOnEmptyRoster(t *testing.T) {
	rng := entropy.New(9)
	roster, err := agents.NewRoster(0, rng)
	if err != nil {
		t.Fatalf("new roster: %v", err)
	}

	activated := 0
	NewScheduler(rng).RunTick(roster, func(*agents.Warrior) { activated++ })
	if activated != 0 {
		t.Fatalf("empty roster produced %d activations", activated)
	}
}

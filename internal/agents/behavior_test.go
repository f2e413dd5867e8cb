package agents

import "testing"

// scriptedSource replays fixed draws so tests can force specific rolls and
// opponent picks. It panics when a test script runs out of draws, which
// doubles as a check on the exact number of draws per activation.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func rosterOf(warriors ...*Warrior) *Roster {
	return &Roster{warriors: warriors}
}

func TestTakeTurnHuntOnly(t *testing.T) {
	a := &Warrior{ID: 0, XP: 1.0, Strength: 5}
	src := &scriptedSource{floats: []float64{0.9, 0.5}} // hunt succeeds, wrestle fails

	TakeTurn(a, rosterOf(a), src)

	if a.XP != 3.0 {
		t.Fatalf("xp = %v, want 3.0", a.XP)
	}
	if a.Strength != 8 {
		t.Fatalf("strength = %d, want 8", a.Strength)
	}
	if len(src.floats) != 0 || len(src.ints) != 0 {
		t.Fatalf("unexpected leftover draws: %d floats, %d ints", len(src.floats), len(src.ints))
	}
}

func TestTakeTurnQuietTurn(t *testing.T) {
	a := &Warrior{ID: 0, XP: 1.0, Strength: 5}
	src := &scriptedSource{floats: []float64{0.1, 0.5}} // both rolls fail

	TakeTurn(a, rosterOf(a), src)

	if a.XP != 1.0 || a.Strength != 5 {
		t.Fatalf("state changed on a quiet turn: xp=%v strength=%d", a.XP, a.Strength)
	}
}

func TestTakeTurnRollBoundaries(t *testing.T) {
	// Hunt succeeds at exactly 0.8; wrestle does not trigger at exactly 0.85.
	a := &Warrior{ID: 0, XP: 1.0, Strength: 5}
	src := &scriptedSource{floats: []float64{0.8, 0.85}}

	TakeTurn(a, rosterOf(a), src)

	if a.XP != 3.0 || a.Strength != 8 {
		t.Fatalf("hunt at 0.8 should succeed: xp=%v strength=%d", a.XP, a.Strength)
	}
	if len(src.ints) != 0 {
		t.Fatal("wrestle at 0.85 must not draw an opponent pick")
	}
}

func TestTakeTurnTieGoesToChallenger(t *testing.T) {
	a := &Warrior{ID: 0, XP: 1.0, Strength: 5}
	b := &Warrior{ID: 1, XP: 1.0, Strength: 5}
	src := &scriptedSource{
		floats: []float64{0.1, 0.9}, // hunt fails, wrestle triggers
		ints:   []int{1},            // pick b
	}

	TakeTurn(a, rosterOf(a, b), src)

	if a.XP != 2.0 {
		t.Fatalf("challenger xp = %v, want 2.0 (ties go to the challenger)", a.XP)
	}
	if b.XP != -1.0 {
		t.Fatalf("opponent xp = %v, want -1.0", b.XP)
	}
	if a.Strength != 5 || b.Strength != 5 {
		t.Fatal("strength must not change in a contest")
	}
}

func TestTakeTurnChallengerLoses(t *testing.T) {
	a := &Warrior{ID: 0, XP: 1.0, Strength: 3}
	b := &Warrior{ID: 1, XP: 1.0, Strength: 7}
	src := &scriptedSource{
		floats: []float64{0.1, 0.9},
		ints:   []int{1},
	}

	TakeTurn(a, rosterOf(a, b), src)

	if a.XP != -1.0 {
		t.Fatalf("challenger xp = %v, want -1.0", a.XP)
	}
	if b.XP != 2.0 {
		t.Fatalf("opponent xp = %v, want 2.0", b.XP)
	}
}

func TestTakeTurnSelfContest(t *testing.T) {
	// The pick may land on the acting warrior itself. It then "wins" under
	// the tie rule and both updates hit the same warrior: net -1.0 xp.
	a := &Warrior{ID: 0, XP: 1.0, Strength: 4}
	src := &scriptedSource{
		floats: []float64{0.1, 0.9},
		ints:   []int{0},
	}

	TakeTurn(a, rosterOf(a), src)

	if a.XP != 0.0 {
		t.Fatalf("self-contest xp = %v, want 0.0 (net -1.0)", a.XP)
	}
	if a.Strength != 4 {
		t.Fatalf("self-contest changed strength to %d", a.Strength)
	}
}

// Warrior turn logic — the hunt and wrestle phases run on each activation.
package agents

import (
	"github.com/talgya/warband/internal/entropy"
)

// Turn constants. The roll thresholds and xp deltas are fixed; downstream
// statistical behavior depends on these exact values and on the exact draw
// order in TakeTurn.
const (
	huntThreshold    = 0.8  // roll >= 0.8 → successful hunt (20% chance)
	wrestleThreshold = 0.85 // roll > 0.85 → contest happens (15% chance)

	HuntXPGain       = 2.0 // xp gained on a successful hunt
	HuntStrengthGain = 3   // strength gained on a successful hunt
	ContestWinXP     = 1.0 // xp gained by the contest winner
	ContestLossXP    = 2.0 // xp lost by the contest loser
)

// TakeTurn runs one activation for w: a hunt roll, then a wrestle roll that
// may drag a random peer into a contest. Side effects are confined to w and,
// when a contest happens, the picked opponent. Exactly one hunt roll and one
// wrestle roll are drawn per activation; the opponent pick draws only when
// the wrestle roll succeeds.
func TakeTurn(w *Warrior, peers *Roster, rng entropy.Source) {
	// Hunt phase: 20% chance of a kill.
	if rng.Float64() >= huntThreshold {
		w.XP += HuntXPGain
		w.Strength += HuntStrengthGain
	}

	// Wrestle phase: 15% chance of picking a fight.
	if rng.Float64() > wrestleThreshold {
		opponent := peers.PickRandom(rng)
		resolveContest(w, opponent)
	}
}

// resolveContest compares strength and redistributes xp. Ties go to the
// challenger. The pick may be the challenger itself; the tie rule then
// applies both updates to the same warrior for a net loss of 1.0 xp.
func resolveContest(challenger, opponent *Warrior) {
	if challenger.Strength < opponent.Strength {
		challenger.XP -= ContestLossXP
		opponent.XP += ContestWinXP
	} else {
		opponent.XP -= ContestLossXP
		challenger.XP += ContestWinXP
	}
}

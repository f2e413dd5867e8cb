// Package agents provides the warrior data model, the roster that owns every
// warrior, and the per-activation turn logic.
package agents

import (
	"github.com/talgya/warband/internal/entropy"
)

// WarriorID is a warrior's key, unique within a roster and stable for the
// roster's lifetime.
type WarriorID int

// Initial state constants.
const (
	InitialXP   = 1.0 // Every warrior starts with 1.0 xp
	MinStrength = 1   // Strength roll lower bound (inclusive)
	MaxStrength = 9   // Strength roll upper bound (inclusive)
)

// Warrior is the core entity in the simulation. XP is unbounded in both
// directions: lost contests push it below zero and nothing floors it.
// Strength only ever increases — there is no decrease path.
type Warrior struct {
	ID       WarriorID `json:"id" db:"key"`
	XP       float64   `json:"xp" db:"xp"`
	Strength int       `json:"strength" db:"strength"`
}

// NewWarrior creates a warrior with the given key, 1.0 xp, and a strength
// rolled uniformly from [1,9].
func NewWarrior(id WarriorID, rng entropy.Source) *Warrior {
	return &Warrior{
		ID:       id,
		XP:       InitialXP,
		Strength: MinStrength + rng.Intn(MaxStrength-MinStrength+1),
	}
}

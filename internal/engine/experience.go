package engine

import (
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

// LevelCap is the maximum creature level.
const LevelCap = 100

// LevelFromExp converts cumulative experience to a level using the
// cubic growth curve level = floor(cbrt(exp)), clamped to [1,100].
// Computed with integer correction so exact cubes never round down.
func LevelFromExp(exp int) int {
	if exp < 1 {
		return 1
	}
	l := 1
	for (l+1)*(l+1)*(l+1) <= exp && l < LevelCap {
		l++
	}
	return l
}

// ExpForLevel is the cumulative experience floor of a level band.
func ExpForLevel(level int) int {
	return level * level * level
}

// ApplyExperience adds experience to a single creature and handles any
// resulting level-ups: stats are re-derived and HP is fully restored,
// leveling always fully heals. Fainted creatures receive nothing.
// Returns the number of levels gained.
func ApplyExperience(c *game.Creature, amount int) int {
	if c.Fainted() || amount <= 0 {
		return 0
	}
	c.Exp += amount
	newLevel := LevelFromExp(c.Exp)
	if newLevel <= c.Level {
		return 0
	}
	gained := newLevel - c.Level
	c.Level = newLevel
	Recalculate(c)
	c.CurrentHP = c.MaxHP
	return gained
}

// ShareExperience distributes a reward amount across the party: the
// lead (slot 0) receives the full amount and every other living member
// receives half of the same source amount, applied independently.
// Fainted members are skipped. Returns the per-member levels gained,
// keyed by instance id.
func ShareExperience(party []*game.Creature, amount int) map[string]int {
	gains := make(map[string]int, len(party))
	for i, member := range party {
		if member.Fainted() {
			continue
		}
		share := amount
		if i > 0 {
			share = amount / 2
		}
		if up := ApplyExperience(member, share); up > 0 {
			gains[member.UID] = up
		}
	}
	return gains
}

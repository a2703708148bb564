package engine

import (
	"math"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

// CheckEvolution returns the first level-up evolution the creature
// qualifies for along its species' evolution edges, or nil. Only the
// level trigger is evaluated here; other trigger kinds are external
// collaborator concerns.
func CheckEvolution(c *game.Creature, sp *game.Species) *game.Evolution {
	if sp == nil {
		return nil
	}
	for i := range sp.Evolution {
		evo := &sp.Evolution[i]
		if evo.MinLevel > 0 && c.Level >= evo.MinLevel {
			return evo
		}
	}
	return nil
}

// Evolve rewrites the creature's species-owned fields (name, typing,
// base stats, sprite) from the target species and re-derives stats with
// the existing level, IVs, EVs and nature. The instance identity, known
// moves and the current HP ratio are preserved:
// newHP = floor(newMaxHP * oldRatio).
func Evolve(c *game.Creature, target *game.Species) {
	ratio := 0.0
	if c.MaxHP > 0 {
		ratio = float64(c.CurrentHP) / float64(c.MaxHP)
	}

	c.SpeciesID = target.ID
	c.Name = target.Name
	c.Types = append([]game.Type(nil), target.Types...)
	c.BaseStats = target.BaseStats
	if target.Sprite != "" {
		c.Sprite = target.Sprite
	}

	Recalculate(c)
	c.CurrentHP = int(math.Floor(float64(c.MaxHP) * ratio))
}

package engine

import (
	"math"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

// DeriveStats computes the effective stat block and max HP from base
// stats, level, IVs, EVs and nature (Gen 3+ formulas):
//
//	HP    = floor(((2*base + iv + floor(ev/4)) * level) / 100) + level + 10
//	other = floor((floor(((2*base + iv + floor(ev/4)) * level) / 100) + 5) * natureMod)
//
// Pure and deterministic; callers must invoke it after any mutation to
// level, EVs, nature or base stats so the cached stats never go stale.
func DeriveStats(base, ivs, evs game.StatBlock, level int, nature string) (game.StatBlock, int) {
	var stats game.StatBlock
	for _, key := range game.StatKeys {
		core := ((2*base.Get(key) + ivs.Get(key) + evs.Get(key)/4) * level) / 100
		if key == game.StatHP {
			stats.HP = core + level + 10
			continue
		}
		raw := float64(core + 5)
		stats.Set(key, int(math.Floor(raw*game.NatureModifier(nature, key))))
	}
	return stats, stats.HP
}

// Recalculate refreshes a creature's derived stat cache in place and
// clamps current HP to the new maximum. It is the single mutation path
// for the stats invariant.
func Recalculate(c *game.Creature) {
	stats, maxHP := DeriveStats(c.BaseStats, c.IVs, c.EVs, c.Level, c.Nature)
	c.Stats = stats
	c.MaxHP = maxHP
	if c.CurrentHP > maxHP {
		c.CurrentHP = maxHP
	}
}

package engine

import (
	"fmt"
	"math"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

// EndOfTurn applies end-of-turn effects to a creature that survived the
// turn's incoming damage, in a fixed order: held-item regen first, then
// damage-over-time status. Regen cannot rescue the creature from the
// status tick that follows. Returns display log lines and whether the
// creature fainted from its status.
func EndOfTurn(c *game.Creature) (lines []string, fainted bool) {
	if c.Fainted() {
		return nil, false
	}

	if c.HeldItem == game.ItemLeftovers && c.CurrentHP > 0 && c.CurrentHP < c.MaxHP {
		heal := c.MaxHP / 16
		c.CurrentHP += heal
		if c.CurrentHP > c.MaxHP {
			c.CurrentHP = c.MaxHP
		}
		lines = append(lines, fmt.Sprintf("%s restored HP with Leftovers!", c.Name))
	}

	if c.Status.TicksDamage() {
		dmg := c.MaxHP / 8
		c.CurrentHP -= dmg
		if c.CurrentHP < 0 {
			c.CurrentHP = 0
		}
		lines = append(lines, fmt.Sprintf("%s is hurt by its %s!", c.Name, c.Status))
		if c.CurrentHP == 0 {
			fainted = true
		}
	}
	return lines, fainted
}

// IdleRegenTick applies the out-of-battle passive regeneration to every
// party member below max HP and above 0 HP: 5% of max HP rounded up,
// boosted to 11% when holding the regen item. The caller suppresses
// this entirely while a battle is in progress.
func IdleRegenTick(party []*game.Creature) {
	for _, c := range party {
		if c.CurrentHP <= 0 || c.CurrentHP >= c.MaxHP {
			continue
		}
		rate := 0.05
		if c.HeldItem == game.ItemLeftovers {
			rate += 0.06
		}
		c.CurrentHP += int(math.Ceil(float64(c.MaxHP) * rate))
		if c.CurrentHP > c.MaxHP {
			c.CurrentHP = c.MaxHP
		}
	}
}

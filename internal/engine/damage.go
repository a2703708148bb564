package engine

import (
	"math"
	"math/rand"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

// RollDamageFactor produces the per-attack random factor: a uniform
// integer in [85,100] divided by 100, rolled once per attack.
func RollDamageFactor() float64 {
	return float64(85+rand.Intn(16)) / 100.0
}

// ComputeDamage resolves an attack of move by attacker against defender
// and returns a non-negative integer damage value. Status-category
// moves are never routed here; callers must filter them out.
func ComputeDamage(attacker, defender *game.Creature, move game.Move) int {
	return computeDamage(attacker, defender, move, RollDamageFactor())
}

// computeDamage is the deterministic core with the random factor pinned,
// shared by ComputeDamage and the tests. Application order is fixed:
// stat ratio with the item modifier folded in, base formula,
// effectiveness, STAB, random factor, then a single final floor.
// Reordering changes rounding outcomes.
func computeDamage(attacker, defender *game.Creature, move game.Move, roll float64) int {
	effect := game.Effectiveness(move.Type, defender.Types)

	stab := 1.0
	if attacker.HasType(move.Type) {
		stab = 1.5
	}

	atkMod := heldItemAttackModifier(attacker.HeldItem, move.Category)

	var ratio float64
	if move.Category == game.CategoryPhysical {
		ratio = float64(attacker.Stats.Atk) * atkMod / float64(defender.Stats.Def)
	} else {
		ratio = float64(attacker.Stats.Spa) * atkMod / float64(defender.Stats.Spd)
	}

	levelFactor := float64(2*attacker.Level)/5 + 2
	dmg := ((levelFactor*float64(move.Power)*ratio)/50 + 2) * effect * stab * roll
	if dmg < 0 {
		return 0
	}
	return int(math.Floor(dmg))
}

// heldItemAttackModifier returns the attacker-side multiplier for the
// equipped item. A choice item boosts only its matching category; the
// life orb boosts both. Modifiers do not stack; the first qualifying
// one wins.
func heldItemAttackModifier(item string, category game.MoveCategory) float64 {
	switch {
	case item == game.ItemChoiceBand && category == game.CategoryPhysical:
		return 1.5
	case item == game.ItemChoiceSpecs && category == game.CategorySpecial:
		return 1.5
	case item == game.ItemLifeOrb:
		return 1.3
	}
	return 1.0
}

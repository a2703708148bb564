package engine

import (
	"testing"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

func TestLevelFromExp_CubicBoundaries(t *testing.T) {
	for level := 1; level <= 100; level++ {
		floor := level * level * level
		if got := LevelFromExp(floor); got != level {
			t.Fatalf("expected level %d at exactly %d exp, got %d", level, floor, got)
		}
		if level < 100 {
			ceil := (level+1)*(level+1)*(level+1) - 1
			if got := LevelFromExp(ceil); got != level {
				t.Fatalf("expected level %d just below next cube (%d exp), got %d", level, ceil, got)
			}
		}
	}
	if got := LevelFromExp(0); got != 1 {
		t.Fatalf("expected minimum level 1, got %d", got)
	}
	if got := LevelFromExp(200 * 200 * 200); got != LevelCap {
		t.Fatalf("expected level capped at %d, got %d", LevelCap, got)
	}
}

func testCreature(level, hp int) *game.Creature {
	c := &game.Creature{
		UID:       "c-test",
		Name:      "Testmon",
		BaseStats: game.StatBlock{HP: 45, Atk: 49, Def: 49, Spa: 65, Spd: 65, Spe: 45},
		Nature:    "hardy",
		Level:     level,
		Exp:       level * level * level,
	}
	Recalculate(c)
	c.CurrentHP = hp
	if hp < 0 {
		c.CurrentHP = c.MaxHP
	}
	return c
}

func TestApplyExperience_FaintedGetsNothing(t *testing.T) {
	c := testCreature(10, 0)
	before := c.Exp
	if up := ApplyExperience(c, 5000); up != 0 {
		t.Fatalf("expected no level ups for a fainted creature, got %d", up)
	}
	if c.Exp != before {
		t.Fatalf("expected exp unchanged at %d, got %d", before, c.Exp)
	}
}

func TestApplyExperience_LevelUpFullyHeals(t *testing.T) {
	c := testCreature(10, -1)
	c.CurrentHP = 1

	// Enough exp to cross from level 10 into level 12.
	up := ApplyExperience(c, 12*12*12-c.Exp)
	if up != 2 {
		t.Fatalf("expected 2 level ups, got %d", up)
	}
	if c.Level != 12 {
		t.Fatalf("expected level 12, got %d", c.Level)
	}
	if c.CurrentHP != c.MaxHP {
		t.Fatalf("expected full heal on level up, got %d/%d", c.CurrentHP, c.MaxHP)
	}
}

func TestApplyExperience_NoLevelUpKeepsHP(t *testing.T) {
	c := testCreature(10, -1)
	c.CurrentHP = 3
	if up := ApplyExperience(c, 1); up != 0 {
		t.Fatalf("expected no level ups, got %d", up)
	}
	if c.CurrentHP != 3 {
		t.Fatalf("expected HP untouched, got %d", c.CurrentHP)
	}
}

func TestShareExperience_LeadFullOthersHalf(t *testing.T) {
	lead := testCreature(10, -1)
	lead.UID = "lead"
	second := testCreature(10, -1)
	second.UID = "second"
	fainted := testCreature(10, 0)
	fainted.UID = "down"

	party := []*game.Creature{lead, second, fainted}
	ShareExperience(party, 1000)

	if lead.Exp != 10*10*10+1000 {
		t.Fatalf("expected lead to receive the full amount, got %d exp", lead.Exp)
	}
	if second.Exp != 10*10*10+500 {
		t.Fatalf("expected second slot to receive half, got %d exp", second.Exp)
	}
	if fainted.Exp != 10*10*10 {
		t.Fatalf("expected fainted member to receive nothing, got %d exp", fainted.Exp)
	}
}

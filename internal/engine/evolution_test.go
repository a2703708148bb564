package engine

import (
	"testing"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

func sproutSpecies() *game.Species {
	return &game.Species{
		ID:        1,
		Name:      "sproutling",
		Types:     []game.Type{game.TypeGrass},
		BaseStats: game.StatBlock{HP: 45, Atk: 49, Def: 49, Spa: 65, Spd: 65, Spe: 45},
		Evolution: []game.Evolution{{TargetID: 2, TargetName: "bloomfang", MinLevel: 50}},
	}
}

func bloomSpecies() *game.Species {
	return &game.Species{
		ID:        2,
		Name:      "bloomfang",
		Types:     []game.Type{game.TypeGrass, game.TypePoison},
		BaseStats: game.StatBlock{HP: 60, Atk: 62, Def: 63, Spa: 80, Spd: 80, Spe: 60},
		Sprite:    "bloomfang.png",
	}
}

func TestCheckEvolution_LevelThreshold(t *testing.T) {
	sp := sproutSpecies()
	c := &game.Creature{Level: 49}
	if evo := CheckEvolution(c, sp); evo != nil {
		t.Fatalf("expected no evolution at level 49, got %+v", evo)
	}
	c.Level = 50
	evo := CheckEvolution(c, sp)
	if evo == nil || evo.TargetID != 2 {
		t.Fatalf("expected evolution to species 2 at level 50, got %+v", evo)
	}
	if evo := CheckEvolution(c, nil); evo != nil {
		t.Fatalf("expected nil species to yield no evolution")
	}
}

func TestEvolve_PreservesIdentityAndHPRatio(t *testing.T) {
	c := &game.Creature{
		UID:       "c-keep",
		SpeciesID: 1,
		Name:      "sproutling",
		Types:     []game.Type{game.TypeGrass},
		BaseStats: sproutSpecies().BaseStats,
		IVs:       game.StatBlock{HP: 20, Atk: 10, Def: 10, Spa: 10, Spd: 10, Spe: 10},
		EVs:       game.StatBlock{Atk: 40},
		Nature:    "adamant",
		Level:     50,
		Moves:     []game.Move{{Key: "vine-lash"}},
	}
	Recalculate(c)
	c.CurrentHP = c.MaxHP / 2

	oldRatio := float64(c.CurrentHP) / float64(c.MaxHP)
	Evolve(c, bloomSpecies())

	if c.UID != "c-keep" {
		t.Fatalf("expected instance id preserved, got %q", c.UID)
	}
	if c.SpeciesID != 2 || c.Name != "bloomfang" {
		t.Fatalf("expected species replaced, got %d %q", c.SpeciesID, c.Name)
	}
	if len(c.Types) != 2 || c.Types[1] != game.TypePoison {
		t.Fatalf("expected new typing, got %v", c.Types)
	}
	if c.Level != 50 || c.Nature != "adamant" || c.IVs.HP != 20 || c.EVs.Atk != 40 {
		t.Fatalf("expected level, nature, IVs and EVs preserved")
	}
	if len(c.Moves) != 1 || c.Moves[0].Key != "vine-lash" {
		t.Fatalf("expected known moves preserved, got %v", c.Moves)
	}

	wantStats, wantMax := DeriveStats(c.BaseStats, c.IVs, c.EVs, c.Level, c.Nature)
	if c.Stats != wantStats || c.MaxHP != wantMax {
		t.Fatalf("expected stats re-derived from the new base stats")
	}
	wantHP := int(float64(c.MaxHP) * oldRatio)
	if c.CurrentHP != wantHP {
		t.Fatalf("expected HP ratio preserved: want %d, got %d", wantHP, c.CurrentHP)
	}
	if c.Sprite != "bloomfang.png" {
		t.Fatalf("expected sprite replaced, got %q", c.Sprite)
	}
}

package engine

import (
	"testing"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

func wildAt(hp, maxHP int) *game.Creature {
	return &game.Creature{Name: "Wildmon", MaxHP: maxHP, CurrentHP: hp}
}

func TestCaptureChance_KnownValues(t *testing.T) {
	cases := []struct {
		hp, maxHP int
		want      float64
	}{
		{100, 100, 0.1}, // full HP bottoms out at the floor
		{50, 100, 0.5},  // half HP: (1-0.5)*0.8+0.1
		{0, 100, 0.9},   // zero HP tops out just below certainty
	}
	for _, tc := range cases {
		got := CaptureChance(wildAt(tc.hp, tc.maxHP))
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("hp %d/%d: expected chance %v, got %v", tc.hp, tc.maxHP, tc.want, got)
		}
	}
}

func TestCaptureChance_MonotoneInDamage(t *testing.T) {
	prev := CaptureChance(wildAt(100, 100))
	for hp := 99; hp >= 0; hp-- {
		cur := CaptureChance(wildAt(hp, 100))
		if cur < prev {
			t.Fatalf("expected chance to never decrease as HP drops, got %v -> %v at hp %d", prev, cur, hp)
		}
		prev = cur
	}
}

func TestCaptureChance_Bounds(t *testing.T) {
	for hp := 0; hp <= 100; hp++ {
		got := CaptureChance(wildAt(hp, 100))
		if got < 0.1 || got > 1.0 {
			t.Fatalf("expected chance within [0.1, 1.0], got %v at hp %d", got, hp)
		}
	}
	if got := CaptureChance(wildAt(0, 0)); got != 0.1 {
		t.Fatalf("expected degenerate max HP to fall back to the floor, got %v", got)
	}
}

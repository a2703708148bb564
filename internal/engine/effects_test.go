package engine

import (
	"testing"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

func TestEndOfTurn_StatusDamage(t *testing.T) {
	c := &game.Creature{Name: "Burned", MaxHP: 80, CurrentHP: 80, Status: game.StatusBurn}
	lines, fainted := EndOfTurn(c)
	if c.CurrentHP != 70 {
		t.Fatalf("expected burn to deal maxHP/8 = 10, got HP %d", c.CurrentHP)
	}
	if fainted {
		t.Fatalf("expected creature to survive the tick")
	}
	if len(lines) != 1 {
		t.Fatalf("expected one log line, got %v", lines)
	}
}

func TestEndOfTurn_StatusCanFaint(t *testing.T) {
	c := &game.Creature{Name: "Poisoned", MaxHP: 80, CurrentHP: 5, Status: game.StatusPoison}
	_, fainted := EndOfTurn(c)
	if !fainted || c.CurrentHP != 0 {
		t.Fatalf("expected faint at 0 HP, got fainted=%v HP=%d", fainted, c.CurrentHP)
	}
}

func TestEndOfTurn_RegenBeforeStatus(t *testing.T) {
	// Regen runs first: 80/16 = +5, then burn takes 80/8 = -10.
	c := &game.Creature{Name: "Holder", MaxHP: 80, CurrentHP: 40, Status: game.StatusBurn, HeldItem: game.ItemLeftovers}
	lines, fainted := EndOfTurn(c)
	if c.CurrentHP != 35 {
		t.Fatalf("expected 40+5-10 = 35 HP, got %d", c.CurrentHP)
	}
	if fainted {
		t.Fatalf("expected creature to survive")
	}
	if len(lines) != 2 {
		t.Fatalf("expected regen and status lines, got %v", lines)
	}
}

func TestEndOfTurn_RegenCannotRescueFromFatalTick(t *testing.T) {
	c := &game.Creature{Name: "Edge", MaxHP: 80, CurrentHP: 4, Status: game.StatusPoison, HeldItem: game.ItemLeftovers}
	_, fainted := EndOfTurn(c)
	if !fainted {
		t.Fatalf("expected 4+5-10 to faint, got HP %d", c.CurrentHP)
	}
}

func TestEndOfTurn_NoOpForFaintedAndStatusFree(t *testing.T) {
	down := &game.Creature{Name: "Down", MaxHP: 80, CurrentHP: 0, Status: game.StatusBurn}
	if lines, fainted := EndOfTurn(down); lines != nil || fainted {
		t.Fatalf("expected fainted creature to be skipped")
	}

	clean := &game.Creature{Name: "Clean", MaxHP: 80, CurrentHP: 50, Status: game.StatusParalysis}
	if _, fainted := EndOfTurn(clean); fainted || clean.CurrentHP != 50 {
		t.Fatalf("expected paralysis to deal no end-of-turn damage, got HP %d", clean.CurrentHP)
	}
}

func TestIdleRegenTick(t *testing.T) {
	hurt := &game.Creature{Name: "Hurt", MaxHP: 30, CurrentHP: 10}
	holder := &game.Creature{Name: "Holder", MaxHP: 30, CurrentHP: 10, HeldItem: game.ItemLeftovers}
	down := &game.Creature{Name: "Down", MaxHP: 30, CurrentHP: 0}
	full := &game.Creature{Name: "Full", MaxHP: 30, CurrentHP: 30}

	IdleRegenTick([]*game.Creature{hurt, holder, down, full})

	// ceil(30 * 0.05) = 2
	if hurt.CurrentHP != 12 {
		t.Fatalf("expected 5%% regen rounded up (+2), got HP %d", hurt.CurrentHP)
	}
	// ceil(30 * 0.11) = 4
	if holder.CurrentHP != 14 {
		t.Fatalf("expected 11%% regen with leftovers (+4), got HP %d", holder.CurrentHP)
	}
	if down.CurrentHP != 0 {
		t.Fatalf("expected fainted creature untouched, got HP %d", down.CurrentHP)
	}
	if full.CurrentHP != 30 {
		t.Fatalf("expected full creature untouched, got HP %d", full.CurrentHP)
	}
}

func TestIdleRegenTick_ClampsToMax(t *testing.T) {
	c := &game.Creature{Name: "Near", MaxHP: 30, CurrentHP: 29}
	IdleRegenTick([]*game.Creature{c})
	if c.CurrentHP != 30 {
		t.Fatalf("expected regen clamped to max HP, got %d", c.CurrentHP)
	}
}

package catalog

import (
	"testing"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

func TestMoveByKey(t *testing.T) {
	m, ok := MoveByKey("flamethrower")
	if !ok || m.Type != game.TypeFire || m.Power != 90 || m.Category != game.CategorySpecial {
		t.Fatalf("unexpected move %+v", m)
	}
	if _, ok := MoveByKey("spacequake"); ok {
		t.Fatalf("expected a miss for an unknown key")
	}
}

func TestMovesForSpecies_FilterAndCap(t *testing.T) {
	sp := &game.Species{
		Name: "flamester",
		LearnableMoves: map[string]int{
			"ember":           1,
			"flame-wheel":     12,
			"flamethrower":    30,
			"fire-blast":      45,
			"quick-attack":    5,
			"tackle":          1,
			"unknown-gesture": 3, // not in the table, ignored
		},
	}

	moves := MovesForSpecies(sp, 50)
	if len(moves) != MaxKnownMoves {
		t.Fatalf("expected the move cap of %d, got %d", MaxKnownMoves, len(moves))
	}
	// Newest learns first.
	if moves[0].Key != "fire-blast" || moves[1].Key != "flamethrower" {
		t.Fatalf("expected newest moves first, got %v", moves)
	}
	for _, m := range moves {
		if m.Key == "unknown-gesture" {
			t.Fatalf("expected unknown learnset entries ignored")
		}
	}

	// Below every learn level except the level-1 moves.
	early := MovesForSpecies(sp, 1)
	for _, m := range early {
		if m.Key != "ember" && m.Key != "tackle" {
			t.Fatalf("expected only level-1 moves at level 1, got %v", early)
		}
	}
}

func TestMovesForSpecies_FallbackToDefault(t *testing.T) {
	sp := &game.Species{Name: "voiceless", LearnableMoves: map[string]int{"unknown-gesture": 1}}
	moves := MovesForSpecies(sp, 10)
	if len(moves) != 1 || moves[0].Key != DefaultMoveKey {
		t.Fatalf("expected the default move fallback, got %v", moves)
	}

	empty := MovesForSpecies(&game.Species{Name: "blank"}, 10)
	if len(empty) != 1 || empty[0].Key != DefaultMoveKey {
		t.Fatalf("expected the default move for an empty learnset, got %v", empty)
	}
}

func TestItemTable(t *testing.T) {
	ball, ok := ItemByKey(game.ItemPokeball)
	if !ok || ball.Category != CategoryBall || ball.Price <= 0 {
		t.Fatalf("unexpected ball item %+v", ball)
	}
	potion, ok := ItemByKey("potion")
	if !ok || potion.Heal != 20 {
		t.Fatalf("unexpected potion %+v", potion)
	}
	if _, ok := ItemByKey("sword-of-dawn"); ok {
		t.Fatalf("expected a miss for an unknown item")
	}

	for _, it := range AllItems() {
		if it.Key == "" || it.Name == "" || it.Category == "" {
			t.Fatalf("item table entry incomplete: %+v", it)
		}
	}
}

func TestDropForTypes(t *testing.T) {
	if got := DropForTypes([]game.Type{game.TypeDragon}); got != "rarecandy" {
		t.Fatalf("expected the dragon-biased drop, got %q", got)
	}
	// Unmapped types fall back to a ball.
	if got := DropForTypes([]game.Type{game.TypeIce}); got != game.ItemPokeball {
		t.Fatalf("expected the fallback drop, got %q", got)
	}
	if got := DropForTypes(nil); got != game.ItemPokeball {
		t.Fatalf("expected the fallback drop for no types, got %q", got)
	}
}

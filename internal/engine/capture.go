package engine

import (
	"math/rand"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

// CaptureChance derives the catch probability from the opponent's HP
// ratio: (1 - hp/max) * 0.8 + 0.1, clamped to [0.1, 1.0]. Always at
// least 10%, approaching 90% as HP approaches 0.
func CaptureChance(opponent *game.Creature) float64 {
	if opponent.MaxHP <= 0 {
		return 0.1
	}
	chance := (1-float64(opponent.CurrentHP)/float64(opponent.MaxHP))*0.8 + 0.1
	if chance < 0.1 {
		chance = 0.1
	}
	if chance > 1 {
		chance = 1
	}
	return chance
}

// AttemptCapture resolves a probabilistic capture attempt against a
// wild opponent. The caller is responsible for rejecting the action in
// trainer battles and for consuming the capture device.
func AttemptCapture(opponent *game.Creature) bool {
	return rand.Float64() < CaptureChance(opponent)
}

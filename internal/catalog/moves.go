package catalog

import (
	"sort"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

// DefaultMoveKey is the universal fallback move every creature can use
// when nothing from its learnset is known to the move table.
const DefaultMoveKey = "tackle"

// MaxKnownMoves caps a creature's move list.
const MaxKnownMoves = 4

// moveTable is the static move catalog. Keys follow the upstream
// kebab-case move names so species learnsets can be matched directly.
var moveTable = map[string]game.Move{
	"tackle":       {Key: "tackle", Name: "Tackle", Type: game.TypeNormal, Power: 40, Accuracy: 100, Category: game.CategoryPhysical},
	"scratch":      {Key: "scratch", Name: "Scratch", Type: game.TypeNormal, Power: 40, Accuracy: 100, Category: game.CategoryPhysical},
	"quick-attack": {Key: "quick-attack", Name: "Quick Attack", Type: game.TypeNormal, Power: 40, Accuracy: 100, Priority: 1, Category: game.CategoryPhysical},
	"slam":         {Key: "slam", Name: "Slam", Type: game.TypeNormal, Power: 80, Accuracy: 75, Category: game.CategoryPhysical},
	"hyper-beam":   {Key: "hyper-beam", Name: "Hyper Beam", Type: game.TypeNormal, Power: 150, Accuracy: 90, Category: game.CategorySpecial},

	"ember":         {Key: "ember", Name: "Ember", Type: game.TypeFire, Power: 40, Accuracy: 100, Category: game.CategorySpecial},
	"flame-wheel":   {Key: "flame-wheel", Name: "Flame Wheel", Type: game.TypeFire, Power: 60, Accuracy: 100, Category: game.CategoryPhysical},
	"flamethrower":  {Key: "flamethrower", Name: "Flamethrower", Type: game.TypeFire, Power: 90, Accuracy: 100, Category: game.CategorySpecial},
	"fire-blast":    {Key: "fire-blast", Name: "Fire Blast", Type: game.TypeFire, Power: 110, Accuracy: 85, Category: game.CategorySpecial},
	"water-gun":     {Key: "water-gun", Name: "Water Gun", Type: game.TypeWater, Power: 40, Accuracy: 100, Category: game.CategorySpecial},
	"bubble-beam":   {Key: "bubble-beam", Name: "Bubble Beam", Type: game.TypeWater, Power: 65, Accuracy: 100, Category: game.CategorySpecial},
	"surf":          {Key: "surf", Name: "Surf", Type: game.TypeWater, Power: 90, Accuracy: 100, Category: game.CategorySpecial},
	"hydro-pump":    {Key: "hydro-pump", Name: "Hydro Pump", Type: game.TypeWater, Power: 110, Accuracy: 80, Category: game.CategorySpecial},
	"vine-whip":     {Key: "vine-whip", Name: "Vine Whip", Type: game.TypeGrass, Power: 45, Accuracy: 100, Category: game.CategoryPhysical},
	"razor-leaf":    {Key: "razor-leaf", Name: "Razor Leaf", Type: game.TypeGrass, Power: 55, Accuracy: 95, Category: game.CategoryPhysical},
	"energy-ball":   {Key: "energy-ball", Name: "Energy Ball", Type: game.TypeGrass, Power: 90, Accuracy: 100, Category: game.CategorySpecial},
	"thunder-shock": {Key: "thunder-shock", Name: "Thunder Shock", Type: game.TypeElectric, Power: 40, Accuracy: 100, Category: game.CategorySpecial},
	"spark":         {Key: "spark", Name: "Spark", Type: game.TypeElectric, Power: 65, Accuracy: 100, Category: game.CategoryPhysical},
	"thunderbolt":   {Key: "thunderbolt", Name: "Thunderbolt", Type: game.TypeElectric, Power: 90, Accuracy: 100, Category: game.CategorySpecial},
	"thunder":       {Key: "thunder", Name: "Thunder", Type: game.TypeElectric, Power: 110, Accuracy: 70, Category: game.CategorySpecial},

	"ice-shard":    {Key: "ice-shard", Name: "Ice Shard", Type: game.TypeIce, Power: 40, Accuracy: 100, Priority: 1, Category: game.CategoryPhysical},
	"ice-beam":     {Key: "ice-beam", Name: "Ice Beam", Type: game.TypeIce, Power: 90, Accuracy: 100, Category: game.CategorySpecial},
	"karate-chop":  {Key: "karate-chop", Name: "Karate Chop", Type: game.TypeFighting, Power: 50, Accuracy: 100, Category: game.CategoryPhysical},
	"brick-break":  {Key: "brick-break", Name: "Brick Break", Type: game.TypeFighting, Power: 75, Accuracy: 100, Category: game.CategoryPhysical},
	"poison-sting": {Key: "poison-sting", Name: "Poison Sting", Type: game.TypePoison, Power: 15, Accuracy: 100, Category: game.CategoryPhysical},
	"sludge-bomb":  {Key: "sludge-bomb", Name: "Sludge Bomb", Type: game.TypePoison, Power: 90, Accuracy: 100, Category: game.CategorySpecial},
	"mud-slap":     {Key: "mud-slap", Name: "Mud-Slap", Type: game.TypeGround, Power: 20, Accuracy: 100, Category: game.CategorySpecial},
	"earthquake":   {Key: "earthquake", Name: "Earthquake", Type: game.TypeGround, Power: 100, Accuracy: 100, Category: game.CategoryPhysical},
	"gust":         {Key: "gust", Name: "Gust", Type: game.TypeFlying, Power: 40, Accuracy: 100, Category: game.CategorySpecial},
	"wing-attack":  {Key: "wing-attack", Name: "Wing Attack", Type: game.TypeFlying, Power: 60, Accuracy: 100, Category: game.CategoryPhysical},
	"air-slash":    {Key: "air-slash", Name: "Air Slash", Type: game.TypeFlying, Power: 75, Accuracy: 95, Category: game.CategorySpecial},
	"confusion":    {Key: "confusion", Name: "Confusion", Type: game.TypePsychic, Power: 50, Accuracy: 100, Category: game.CategorySpecial},
	"psychic":      {Key: "psychic", Name: "Psychic", Type: game.TypePsychic, Power: 90, Accuracy: 100, Category: game.CategorySpecial},
	"bug-bite":     {Key: "bug-bite", Name: "Bug Bite", Type: game.TypeBug, Power: 60, Accuracy: 100, Category: game.CategoryPhysical},
	"x-scissor":    {Key: "x-scissor", Name: "X-Scissor", Type: game.TypeBug, Power: 80, Accuracy: 100, Category: game.CategoryPhysical},
	"rock-throw":   {Key: "rock-throw", Name: "Rock Throw", Type: game.TypeRock, Power: 50, Accuracy: 90, Category: game.CategoryPhysical},
	"rock-slide":   {Key: "rock-slide", Name: "Rock Slide", Type: game.TypeRock, Power: 75, Accuracy: 90, Category: game.CategoryPhysical},
	"shadow-ball":  {Key: "shadow-ball", Name: "Shadow Ball", Type: game.TypeGhost, Power: 80, Accuracy: 100, Category: game.CategorySpecial},
	"lick":         {Key: "lick", Name: "Lick", Type: game.TypeGhost, Power: 30, Accuracy: 100, Category: game.CategoryPhysical},
	"dragon-claw":  {Key: "dragon-claw", Name: "Dragon Claw", Type: game.TypeDragon, Power: 80, Accuracy: 100, Category: game.CategoryPhysical},
	"dragon-pulse": {Key: "dragon-pulse", Name: "Dragon Pulse", Type: game.TypeDragon, Power: 85, Accuracy: 100, Category: game.CategorySpecial},
	"bite":         {Key: "bite", Name: "Bite", Type: game.TypeDark, Power: 60, Accuracy: 100, Category: game.CategoryPhysical},
	"crunch":       {Key: "crunch", Name: "Crunch", Type: game.TypeDark, Power: 80, Accuracy: 100, Category: game.CategoryPhysical},
	"metal-claw":   {Key: "metal-claw", Name: "Metal Claw", Type: game.TypeSteel, Power: 50, Accuracy: 95, Category: game.CategoryPhysical},
	"iron-head":    {Key: "iron-head", Name: "Iron Head", Type: game.TypeSteel, Power: 80, Accuracy: 100, Category: game.CategoryPhysical},
	"fairy-wind":   {Key: "fairy-wind", Name: "Fairy Wind", Type: game.TypeFairy, Power: 40, Accuracy: 100, Category: game.CategorySpecial},
	"moonblast":    {Key: "moonblast", Name: "Moonblast", Type: game.TypeFairy, Power: 95, Accuracy: 100, Category: game.CategorySpecial},
}

// MoveByKey looks a move up in the static table.
func MoveByKey(key string) (game.Move, bool) {
	m, ok := moveTable[key]
	return m, ok
}

// DefaultMove returns the universal fallback move.
func DefaultMove() game.Move {
	return moveTable[DefaultMoveKey]
}

// MovesForSpecies builds a move set for a creature of the given level:
// the species' learnable moves that exist in the table and are already
// learned at that level, newest first, capped at MaxKnownMoves. An
// empty result falls back to the default move.
func MovesForSpecies(sp *game.Species, level int) []game.Move {
	type learned struct {
		move  game.Move
		level int
	}
	var candidates []learned
	for key, learnLevel := range sp.LearnableMoves {
		if learnLevel > level {
			continue
		}
		if m, ok := moveTable[key]; ok && m.Category != game.CategoryStatus {
			candidates = append(candidates, learned{move: m, level: learnLevel})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].level != candidates[j].level {
			return candidates[i].level > candidates[j].level
		}
		return candidates[i].move.Key < candidates[j].move.Key
	})

	out := make([]game.Move, 0, MaxKnownMoves)
	for _, c := range candidates {
		out = append(out, c.move)
		if len(out) == MaxKnownMoves {
			break
		}
	}
	if len(out) == 0 {
		out = append(out, DefaultMove())
	}
	return out
}

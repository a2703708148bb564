package catalog

import (
	"math/rand"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

// ItemCategory groups bag items by how they are used.
type ItemCategory string

const (
	CategoryBall     ItemCategory = "ball"
	CategoryMedicine ItemCategory = "medicine"
	CategoryHeld     ItemCategory = "held"
	CategoryVitamin  ItemCategory = "vitamin"
	CategoryBerry    ItemCategory = "berry"
	CategoryCandy    ItemCategory = "candy"
)

// Item is one bag item definition. Heal carries the flat HP restored by
// medicine (0 with FullHeal set means a status cure only); Stat names
// the EV stat a vitamin trains.
type Item struct {
	Key      string       `json:"key"`
	Name     string       `json:"name"`
	Category ItemCategory `json:"category"`
	Price    int          `json:"price"`

	Heal       int    `json:"heal,omitempty"`
	FullHeal   bool   `json:"full_heal,omitempty"`
	CureStatus bool   `json:"cure_status,omitempty"`
	Revive     bool   `json:"revive,omitempty"`
	Stat       string `json:"stat,omitempty"`
}

var itemTable = map[string]Item{
	game.ItemPokeball: {Key: game.ItemPokeball, Name: "Poké Ball", Category: CategoryBall, Price: 200},

	"potion":      {Key: "potion", Name: "Potion", Category: CategoryMedicine, Price: 300, Heal: 20},
	"superpotion": {Key: "superpotion", Name: "Super Potion", Category: CategoryMedicine, Price: 700, Heal: 50},
	"hyperpotion": {Key: "hyperpotion", Name: "Hyper Potion", Category: CategoryMedicine, Price: 1500, Heal: 200},
	"maxpotion":   {Key: "maxpotion", Name: "Max Potion", Category: CategoryMedicine, Price: 2500, FullHeal: true},
	"fullheal":    {Key: "fullheal", Name: "Full Heal", Category: CategoryMedicine, Price: 600, CureStatus: true},
	"revive":      {Key: "revive", Name: "Revive", Category: CategoryMedicine, Price: 1500, Revive: true},
	"maxrevive":   {Key: "maxrevive", Name: "Max Revive", Category: CategoryMedicine, Price: 4000, Revive: true, FullHeal: true},

	"rarecandy": {Key: "rarecandy", Name: "Rare Candy", Category: CategoryCandy, Price: 4800},

	"hpup":    {Key: "hpup", Name: "HP Up", Category: CategoryVitamin, Price: 9800, Stat: game.StatHP},
	"protein": {Key: "protein", Name: "Protein", Category: CategoryVitamin, Price: 9800, Stat: game.StatAtk},
	"iron":    {Key: "iron", Name: "Iron", Category: CategoryVitamin, Price: 9800, Stat: game.StatDef},
	"calcium": {Key: "calcium", Name: "Calcium", Category: CategoryVitamin, Price: 9800, Stat: game.StatSpa},
	"zinc":    {Key: "zinc", Name: "Zinc", Category: CategoryVitamin, Price: 9800, Stat: game.StatSpd},
	"carbos":  {Key: "carbos", Name: "Carbos", Category: CategoryVitamin, Price: 9800, Stat: game.StatSpe},

	"oranberry": {Key: "oranberry", Name: "Oran Berry", Category: CategoryBerry, Price: 100, Heal: 10},

	game.ItemLeftovers:   {Key: game.ItemLeftovers, Name: "Leftovers", Category: CategoryHeld, Price: 8000},
	game.ItemLifeOrb:     {Key: game.ItemLifeOrb, Name: "Life Orb", Category: CategoryHeld, Price: 9000},
	game.ItemChoiceBand:  {Key: game.ItemChoiceBand, Name: "Choice Band", Category: CategoryHeld, Price: 9000},
	game.ItemChoiceSpecs: {Key: game.ItemChoiceSpecs, Name: "Choice Specs", Category: CategoryHeld, Price: 9000},
}

// ItemByKey looks an item up in the static table.
func ItemByKey(key string) (Item, bool) {
	it, ok := itemTable[key]
	return it, ok
}

// AllItems returns the full shop listing.
func AllItems() []Item {
	out := make([]Item, 0, len(itemTable))
	for _, it := range itemTable {
		out = append(out, it)
	}
	return out
}

// typeDrops biases victory drops toward items thematic for the
// defeated opponent's primary type.
var typeDrops = map[game.Type]string{
	game.TypeFire:     "potion",
	game.TypeWater:    "superpotion",
	game.TypeGrass:    "oranberry",
	game.TypeElectric: "fullheal",
	game.TypePoison:   "fullheal",
	game.TypePsychic:  game.ItemChoiceSpecs,
	game.TypeFighting: game.ItemChoiceBand,
	game.TypeSteel:    "iron",
	game.TypeRock:     "protein",
	game.TypeGround:   "hpup",
	game.TypeGhost:    "revive",
	game.TypeDragon:   "rarecandy",
	game.TypeNormal:   game.ItemPokeball,
}

// DropForTypes picks the drop item for a defeated opponent: the
// type-biased entry for its primary type, falling back to a ball.
func DropForTypes(types []game.Type) string {
	for _, t := range types {
		if key, ok := typeDrops[t]; ok {
			return key
		}
	}
	return game.ItemPokeball
}

// RollDrop reports whether a victory yields an item drop at the given
// chance.
func RollDrop(chance float64) bool {
	return rand.Float64() < chance
}

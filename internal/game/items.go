package game

// Well-known item ids the engine reacts to. The full item table lives
// in the catalog; only these affect combat math directly.
const (
	ItemPokeball    = "pokeball"
	ItemLeftovers   = "leftovers"
	ItemLifeOrb     = "lifeorb"
	ItemChoiceBand  = "choiceband"
	ItemChoiceSpecs = "choicespecs"
)

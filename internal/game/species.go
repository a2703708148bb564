package game

// Species is reference data served by the species catalog: immutable
// per-species values copied into creatures at creation and on
// evolution.
type Species struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Types     []Type      `json:"types"`
	BaseStats StatBlock   `json:"base_stats"`
	Sprite    string      `json:"sprite"`
	Evolution []Evolution `json:"evolution,omitempty"`

	// LearnableMoves maps move keys to the level they are learned at.
	// The engine filters this against the move catalog and ignores
	// unknown keys.
	LearnableMoves map[string]int `json:"learnable_moves,omitempty"`
}

// Evolution is one edge of the species evolution graph: a level-up
// trigger toward a target species. Item/trade/stone triggers live with
// external collaborators and are not modeled here.
type Evolution struct {
	TargetID   int    `json:"target_id"`
	TargetName string `json:"target_name"`
	MinLevel   int    `json:"min_level"`
}

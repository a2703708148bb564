package storage

import (
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

// Repository abstracts persistence for the player profile, the roster
// and the catalog response cache. Service code depends on this
// interface only; tests substitute an in-memory implementation.
type Repository interface {
	// LoadOrCreatePlayer returns the profile with the given trainer
	// name, creating an empty one on first run.
	LoadOrCreatePlayer(name string) (*game.Player, error)
	// SavePlayer persists the profile and every owned creature.
	SavePlayer(p *game.Player) error
	// DeleteCreature removes a released or traded-away creature row.
	DeleteCreature(c *game.Creature) error

	// Catalog response cache
	GetCatalogEntry(key string) ([]byte, error)
	SaveCatalogEntry(key string, body []byte) error
}

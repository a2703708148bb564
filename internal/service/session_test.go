package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/catalog"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/engine"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
)

// mockRepo is an in-memory Repository double counting saves.
type mockRepo struct {
	saves   int
	deletes int
	cache   map[string][]byte
}

func newMockRepo() *mockRepo {
	return &mockRepo{cache: map[string][]byte{}}
}

func (m *mockRepo) LoadOrCreatePlayer(name string) (*game.Player, error) {
	return &game.Player{Name: name, Items: map[string]int{}}, nil
}

func (m *mockRepo) SavePlayer(p *game.Player) error {
	m.saves++
	return nil
}

func (m *mockRepo) DeleteCreature(c *game.Creature) error {
	m.deletes++
	return nil
}

func (m *mockRepo) GetCatalogEntry(key string) ([]byte, error) {
	return m.cache[key], nil
}

func (m *mockRepo) SaveCatalogEntry(key string, body []byte) error {
	m.cache[key] = body
	return nil
}

// staticCatalog serves species from a fixed map, no network.
type staticCatalog struct {
	species map[int]*game.Species
}

func (c *staticCatalog) SpeciesByID(_ context.Context, id int) (*game.Species, error) {
	if sp, ok := c.species[id]; ok {
		return sp, nil
	}
	return nil, fmt.Errorf("species %d not in test catalog", id)
}

func (c *staticCatalog) SpeciesByName(_ context.Context, name string) (*game.Species, error) {
	for _, sp := range c.species {
		if sp.Name == name {
			return sp, nil
		}
	}
	return nil, fmt.Errorf("species %q not in test catalog", name)
}

func testSpecies() map[int]*game.Species {
	m := map[int]*game.Species{}
	for id := 1; id <= 9; id++ {
		m[id] = &game.Species{
			ID:        id,
			Name:      fmt.Sprintf("starter-%d", id),
			Types:     []game.Type{game.TypeGrass},
			BaseStats: game.StatBlock{HP: 45, Atk: 49, Def: 49, Spa: 65, Spd: 65, Spe: 45},
		}
	}
	m[100] = &game.Species{
		ID:        100,
		Name:      "cubling",
		Types:     []game.Type{game.TypeNormal},
		BaseStats: game.StatBlock{HP: 50, Atk: 50, Def: 50, Spa: 50, Spd: 50, Spe: 50},
		Evolution: []game.Evolution{{TargetID: 101, TargetName: "cubrawler", MinLevel: 30}},
	}
	m[101] = &game.Species{
		ID:        101,
		Name:      "cubrawler",
		Types:     []game.Type{game.TypeNormal, game.TypeFighting},
		BaseStats: game.StatBlock{HP: 70, Atk: 80, Def: 70, Spa: 60, Spd: 60, Spe: 70},
	}
	return m
}

func testRegions() *catalog.RegionTable {
	return &catalog.RegionTable{Regions: []catalog.Region{{
		Name:       "testland",
		Generation: 1,
		Routes:     []catalog.Route{{ID: 1, Name: "Route 1", Species: []int{1}}},
		Gyms:       []catalog.Gym{{ID: "stone", Name: "Stone Gym", Badge: "granite", RequiredLevel: 12, Species: []int{2}}},
		League:     &catalog.League{Species: []int{3}},
	}}}
}

func partyMember(uid string, slot, level int) game.Creature {
	c := game.Creature{
		UID:       uid,
		SpeciesID: 100,
		Name:      "cubling",
		Types:     []game.Type{game.TypeNormal},
		BaseStats: game.StatBlock{HP: 50, Atk: 50, Def: 50, Spa: 50, Spd: 50, Spe: 50},
		Nature:    "hardy",
		Level:     level,
		Exp:       engine.ExpForLevel(level),
		Slot:      slot,
		Moves:     []game.Move{{Key: "tackle", Name: "Tackle", Type: game.TypeNormal, Power: 40, Accuracy: 100, Category: game.CategoryPhysical}},
	}
	engine.Recalculate(&c)
	c.CurrentHP = c.MaxHP
	return c
}

func wildOpponent(level int) *game.Creature {
	c := game.Creature{
		UID:       "wild",
		SpeciesID: 100,
		Name:      "cubling",
		Types:     []game.Type{game.TypeNormal},
		BaseStats: game.StatBlock{HP: 50, Atk: 50, Def: 50, Spa: 50, Spd: 50, Spe: 50},
		Nature:    "hardy",
		Level:     level,
		Moves:     []game.Move{{Key: "tackle", Name: "Tackle", Type: game.TypeNormal, Power: 40, Accuracy: 100, Category: game.CategoryPhysical}},
	}
	engine.Recalculate(&c)
	c.CurrentHP = c.MaxHP
	return &c
}

// newTestSession builds a session with the given party, a mock repo and
// the static catalog.
func newTestSession(members ...game.Creature) (*Session, *mockRepo) {
	repo := newMockRepo()
	player := &game.Player{
		Name:      "Tester",
		Money:     1000,
		Items:     map[string]int{},
		Creatures: members,
	}
	s := NewSession(player, repo, &staticCatalog{species: testSpecies()}, testRegions())
	return s, repo
}

// inBattle puts the session into a live wild battle against opponent.
func inBattle(s *Session, opponent *game.Creature) {
	s.battle = &game.BattleSession{
		State:     game.StateBattle,
		Encounter: game.EncounterWild,
		Opponent:  opponent,
		Turn:      1,
	}
}

func TestSnapshot_DetachedFromLiveState(t *testing.T) {
	s, _ := newTestSession(partyMember("lead", 0, 20))
	live := s.player.FindByUID("lead")
	live.CurrentHP = 5

	view := s.Snapshot()
	if err := s.HealParty(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := view.Player.FindByUID("lead")
	if snap == nil || snap.CurrentHP != 5 {
		t.Fatalf("expected the snapshot to keep the HP it was taken at")
	}

	// Writes to the copy never reach the session either.
	snap.CurrentHP = 1
	if live.CurrentHP != live.MaxHP {
		t.Fatalf("expected the live creature untouched, HP %d", live.CurrentHP)
	}
}

// Serializing a snapshot must stay safe while the regen ticker mutates
// the live party in the background.
func TestSnapshot_SafeAgainstRegenTicker(t *testing.T) {
	s, _ := newTestSession(partyMember("lead", 0, 20))
	s.player.FindByUID("lead").CurrentHP = 1

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			s.RegenTick()
		}
	}()
	for i := 0; i < 200; i++ {
		if _, err := json.Marshal(s.Snapshot()); err != nil {
			t.Errorf("failed to marshal snapshot: %v", err)
			break
		}
	}
	<-done
}

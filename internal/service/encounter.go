package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/catalog"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/constants"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/engine"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/keys"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/logging"
)

// StartSearch begins an asynchronous wild encounter search in a random
// route of the given region (empty name picks the first region). The
// state moves to searching immediately; the result lands after the
// search delay.
func (s *Session) StartSearch(regionName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.battle.State != game.StateIdle {
		return ErrBattleInProgress
	}
	if firstAble(s.player.Party()) == nil {
		return ErrNoAbleCreature
	}
	region := s.findRegion(regionName)
	route := region.RandomRoute()
	if route == nil {
		return ErrGymNotFound
	}

	s.battle = &game.BattleSession{State: game.StateSearching, Encounter: game.EncounterWild}
	s.appendLog(fmt.Sprintf("Searching %s...", route.Name))

	go s.finishSearch(region, route)
	return nil
}

// finishSearch runs off the request goroutine: it sleeps through the
// search delay, rolls the encounter and installs the opponent.
func (s *Session) finishSearch(region *catalog.Region, route *catalog.Route) {
	time.Sleep(constants.SearchDelay)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.battle.State != game.StateSearching {
		// The player fled the search screen; drop the result.
		return
	}

	if rand.Float64() < constants.NothingFoundChance {
		s.appendLog("Nothing was found.")
		s.battle.State = game.StateIdle
		return
	}

	level := wildLevel(route.ID, region.Generation)
	opponent, err := s.spawnCreature(catalog.RandomSpecies(route.Species), level)
	if err != nil {
		logging.Error("wild encounter fetch failed", err, logging.Fields{"route": route.ID})
		s.appendLog("Could not reach the wilds. Check your connection.")
		s.battle.State = game.StateIdle
		return
	}

	s.player.MarkSeen(opponent.SpeciesID)
	s.battle.State = game.StateBattle
	s.battle.Opponent = opponent
	s.battle.Turn = 1
	s.appendLog(fmt.Sprintf("A wild %s (Lv. %d) appeared!", opponent.Name, opponent.Level))
	s.save()
}

// StartGymChallenge opens a battle against the gym's boss: a species
// from the gym pool at requiredLevel+2 with boosted HP.
func (s *Session) StartGymChallenge(gymID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.battle.State != game.StateIdle {
		return ErrBattleInProgress
	}
	if firstAble(s.player.Party()) == nil {
		return ErrNoAbleCreature
	}
	_, gym := s.regions.GymByID(gymID)
	if gym == nil {
		return ErrGymNotFound
	}

	boss, err := s.spawnCreature(catalog.RandomSpecies(gym.Species), gym.RequiredLevel+constants.GymLevelBonus)
	if err != nil {
		logging.Error("gym boss fetch failed", err, logging.Fields{"gym": gymID})
		s.appendLog("Could not reach the gym. Check your connection.")
		return nil
	}
	scaleBossHP(boss, constants.GymHPScale)

	s.player.MarkSeen(boss.SpeciesID)
	s.battle = &game.BattleSession{State: game.StateBattle, Encounter: game.EncounterGym, Opponent: boss, Turn: 1, GymID: gymID}
	s.appendLog(fmt.Sprintf("Gym leader sent out %s (Lv. %d)!", boss.Name, boss.Level))
	return nil
}

// StartLeagueChallenge opens the end-game boss battle: level 75, double
// HP, holding a berry.
func (s *Session) StartLeagueChallenge(regionName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.battle.State != game.StateIdle {
		return ErrBattleInProgress
	}
	if firstAble(s.player.Party()) == nil {
		return ErrNoAbleCreature
	}
	region := s.findRegion(regionName)
	if region.League == nil {
		return ErrGymNotFound
	}

	boss, err := s.spawnCreature(catalog.RandomSpecies(region.League.Species), constants.LeagueBossLevel)
	if err != nil {
		logging.Error("league boss fetch failed", err, logging.Fields{"region": region.Name})
		s.appendLog("Could not reach the league. Check your connection.")
		return nil
	}
	scaleBossHP(boss, constants.LeagueHPScale)
	boss.HeldItem = "oranberry"

	s.player.MarkSeen(boss.SpeciesID)
	s.battle = &game.BattleSession{State: game.StateBattle, Encounter: game.EncounterLeague, Opponent: boss, Turn: 1}
	s.appendLog(fmt.Sprintf("The champion sent out %s (Lv. %d)!", boss.Name, boss.Level))
	return nil
}

// spawnCreature materializes a fresh creature of the given species and
// level with rolled IVs, a random nature and a level-appropriate move
// set. A catalog miss degrades to the fallback stub species.
func (s *Session) spawnCreature(speciesID, level int) (*game.Creature, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	sp, err := s.species.SpeciesByID(ctx, speciesID)
	if err != nil {
		if speciesID == 0 {
			sp = catalog.FallbackSpecies()
		} else {
			return nil, err
		}
	}
	return newCreature(sp, level), nil
}

func newCreature(sp *game.Species, level int) *game.Creature {
	c := &game.Creature{
		UID:       keys.NewCreatureUID(),
		SpeciesID: sp.ID,
		Name:      sp.Name,
		Types:     append([]game.Type(nil), sp.Types...),
		BaseStats: sp.BaseStats,
		IVs:       rollIVs(),
		Nature:    game.RandomNature(),
		Level:     level,
		Exp:       engine.ExpForLevel(level),
		Moves:     catalog.MovesForSpecies(sp, level),
		Sprite:    sp.Sprite,
	}
	engine.Recalculate(c)
	c.CurrentHP = c.MaxHP
	return c
}

func rollIVs() game.StatBlock {
	var ivs game.StatBlock
	for _, key := range game.StatKeys {
		ivs.Set(key, rand.Intn(32))
	}
	return ivs
}

// wildLevel scales wild levels by route number and region generation,
// with a small roll on top.
func wildLevel(routeID, generation int) int {
	level := (routeID % 25) + (generation-1)*8 + 3 + rand.Intn(5)
	if level > constants.WildLevelCap {
		level = constants.WildLevelCap
	}
	if level < 1 {
		level = 1
	}
	return level
}

func scaleBossHP(boss *game.Creature, factor float64) {
	boss.MaxHP = int(float64(boss.MaxHP) * factor)
	boss.CurrentHP = boss.MaxHP
}

func (s *Session) findRegion(name string) *catalog.Region {
	for i := range s.regions.Regions {
		if s.regions.Regions[i].Name == name {
			return &s.regions.Regions[i]
		}
	}
	return &s.regions.Regions[0]
}

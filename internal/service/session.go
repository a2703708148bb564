package service

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/catalog"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/engine"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/logging"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/storage"
)

// Service errors surfaced to the API layer. Insufficient resources
// (missing items, low funds, EV caps) are deliberately NOT errors; they
// resolve as silent no-ops.
var (
	ErrBattleInProgress   = errors.New("a battle is already in progress")
	ErrNoActiveBattle     = errors.New("no active battle")
	ErrNoAbleCreature     = errors.New("no able creature in the party")
	ErrCreatureNotFound   = errors.New("creature not found")
	ErrGymNotFound        = errors.New("gym not found")
	ErrNoPendingEvolution = errors.New("no pending evolution")
	ErrStarterOwned       = errors.New("a starter was already chosen")
	ErrPartyFull          = errors.New("party is full")
	ErrLastPartyMember    = errors.New("cannot remove the last able party member")
	ErrUnknownMove        = errors.New("unknown move")
)

// PendingEvolution is one surfaced evolution offer awaiting a player
// decision.
type PendingEvolution struct {
	CreatureUID string `json:"creature_uid"`
	FromName    string `json:"from_name"`
	TargetID    int    `json:"target_id"`
	TargetName  string `json:"target_name"`
}

// Session owns the single logical stream of play: the player profile,
// the current battle and the pending evolution offer. Every operation
// runs under the session mutex so API handlers, the search goroutine
// and the regen ticker never interleave mid-turn.
type Session struct {
	mu sync.Mutex

	player  *game.Player
	battle  *game.BattleSession
	pending *PendingEvolution

	// declined maps creature UID to the level at which an evolution
	// offer was declined; re-qualification at a higher level re-offers.
	declined map[string]int

	repo    storage.Repository
	species catalog.SpeciesCatalog
	regions *catalog.RegionTable

	// logSink receives battle log lines for the push stream; may be nil.
	logSink func(line string)

	// captureRoll supplies the capture randomness; tests pin it.
	captureRoll func() float64
}

// NewSession wires a session from its collaborators.
func NewSession(player *game.Player, repo storage.Repository, species catalog.SpeciesCatalog, regions *catalog.RegionTable) *Session {
	return &Session{
		player:      player,
		battle:      &game.BattleSession{State: game.StateIdle},
		declined:    map[string]int{},
		repo:        repo,
		species:     species,
		regions:     regions,
		captureRoll: rand.Float64,
	}
}

// SetLogSink registers the battle log push target.
func (s *Session) SetLogSink(sink func(line string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logSink = sink
}

// StateView is the full snapshot served by the state endpoint.
type StateView struct {
	Player    *game.Player        `json:"player"`
	Battle    *game.BattleSession `json:"battle"`
	Evolution *PendingEvolution   `json:"evolution,omitempty"`
}

// Snapshot returns a detached copy of the current state. Callers hold
// and serialize it after the lock is released, while the regen ticker
// and the search goroutine keep mutating the live structs.
func (s *Session) Snapshot() StateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := StateView{Player: s.player.Clone(), Battle: s.battle.Clone()}
	if s.pending != nil {
		pending := *s.pending
		view.Evolution = &pending
	}
	return view
}

// RegenTick applies the idle party regeneration. Suppressed whenever a
// battle is active so battle HP is only moved by battle rules.
func (s *Session) RegenTick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.battle.State != game.StateIdle {
		return
	}
	engine.IdleRegenTick(s.player.Party())
	s.save()
}

// appendLog records battle log lines and forwards them to the sink.
func (s *Session) appendLog(lines ...string) {
	for _, line := range lines {
		s.battle.Log = append(s.battle.Log, line)
		if s.logSink != nil {
			s.logSink(line)
		}
	}
}

// save persists the profile; persistence failures are logged, never
// propagated into gameplay.
func (s *Session) save() {
	if s.repo == nil {
		return
	}
	if err := s.repo.SavePlayer(s.player); err != nil {
		logging.Error("failed to persist player profile", err, logging.Fields{"player": s.player.Name})
	}
}

// firstAble returns the first non-fainted party member, nil when the
// whole party is down.
func firstAble(party []*game.Creature) *game.Creature {
	for _, c := range party {
		if !c.Fainted() {
			return c
		}
	}
	return nil
}

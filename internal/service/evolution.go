package service

import (
	"context"
	"fmt"
	"time"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/engine"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/logging"
)

// refreshPendingEvolution scans the party in slot order and surfaces
// the first qualifying evolution that has not been declined at the
// creature's current level. At most one offer is pending at a time.
// Callers hold the lock.
func (s *Session) refreshPendingEvolution() {
	if s.pending != nil {
		return
	}
	for _, c := range s.player.Party() {
		if declinedAt, ok := s.declined[c.UID]; ok && declinedAt == c.Level {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		sp, err := s.species.SpeciesByID(ctx, c.SpeciesID)
		cancel()
		if err != nil {
			logging.Error("evolution scan fetch failed", err, logging.Fields{"uid": c.UID, "species_id": c.SpeciesID})
			continue
		}
		if evo := engine.CheckEvolution(c, sp); evo != nil {
			s.pending = &PendingEvolution{
				CreatureUID: c.UID,
				FromName:    c.Name,
				TargetID:    evo.TargetID,
				TargetName:  evo.TargetName,
			}
			s.appendLog(fmt.Sprintf("What? %s is evolving!", c.Name))
			return
		}
	}
}

// ConfirmEvolution applies the pending evolution, then rescans the
// party so chained offers surface one at a time.
func (s *Session) ConfirmEvolution() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return ErrNoPendingEvolution
	}
	pending := s.pending
	s.pending = nil

	c := s.player.FindByUID(pending.CreatureUID)
	if c == nil {
		return ErrCreatureNotFound
	}

	defer func() {
		if r := recover(); r != nil {
			logging.Error("evolution apply panicked", fmt.Errorf("%v", r), logging.Fields{"uid": pending.CreatureUID})
		}
		s.save()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	target, err := s.species.SpeciesByID(ctx, pending.TargetID)
	cancel()
	if err != nil {
		// Keep the offer so the player can retry once the catalog is
		// reachable again.
		logging.Error("evolution target fetch failed", err, logging.Fields{"target_id": pending.TargetID})
		s.pending = pending
		s.appendLog("The evolution fizzled. Check your connection.")
		return nil
	}

	oldName := c.Name
	engine.Evolve(c, target)
	delete(s.declined, c.UID)
	s.appendLog(fmt.Sprintf("Congratulations! %s evolved into %s!", oldName, c.Name))
	s.refreshPendingEvolution()
	return nil
}

// DeclineEvolution cancels the pending offer for the creature's current
// level; gaining another level re-evaluates.
func (s *Session) DeclineEvolution() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return ErrNoPendingEvolution
	}
	if c := s.player.FindByUID(s.pending.CreatureUID); c != nil {
		s.declined[c.UID] = c.Level
		s.appendLog(fmt.Sprintf("%s stopped evolving.", c.Name))
	}
	s.pending = nil
	s.refreshPendingEvolution()
	return nil
}

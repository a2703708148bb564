package service

import (
	"fmt"
	"math/rand"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/catalog"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/constants"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/engine"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/keys"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/logging"
)

// Attack resolves one full battle turn for the given move of the active
// creature: player hit, opponent defeat check, opponent reply,
// end-of-turn effects, player faint handling.
func (s *Session) Attack(moveKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.battle.State != game.StateBattle {
		return ErrNoActiveBattle
	}
	active := s.player.Lead()
	if active == nil || active.Fainted() {
		return ErrNoAbleCreature
	}
	move, ok := findMove(active, moveKey)
	if !ok {
		return ErrUnknownMove
	}

	opponent := s.battle.Opponent
	dmg := engine.ComputeDamage(active, opponent, move)
	opponent.CurrentHP -= dmg
	if opponent.CurrentHP < 0 {
		opponent.CurrentHP = 0
	}
	s.appendLog(fmt.Sprintf("%s used %s! %d damage.", active.Name, move.Name, dmg))

	if opponent.Fainted() {
		s.finishVictory()
		return nil
	}

	s.opponentTurn(active)
	s.endOfTurnPhase()
	return nil
}

// AttemptCapture throws one ball at a wild opponent. The ball is
// consumed whether or not the throw lands; missing balls and trainer
// battles resolve as no-ops.
func (s *Session) AttemptCapture() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.battle.State != game.StateBattle {
		return ErrNoActiveBattle
	}
	if !s.battle.Encounter.Wild() {
		s.appendLog("You can't capture a trainer's creature!")
		return nil
	}
	if s.player.Items[game.ItemPokeball] <= 0 {
		s.appendLog("No balls left!")
		return nil
	}
	s.consumeItem(game.ItemPokeball, 1)

	opponent := s.battle.Opponent
	if s.captureRoll() < engine.CaptureChance(opponent) {
		s.adoptOpponent(opponent)
		s.appendLog(fmt.Sprintf("Gotcha! %s was caught!", opponent.Name))
		s.battle.State = game.StateCaptured
		s.grantRewards()
		return nil
	}

	s.appendLog(fmt.Sprintf("Oh no! %s broke free!", opponent.Name))
	active := s.player.Lead()
	if active != nil && !active.Fainted() {
		s.opponentTurn(active)
	}
	s.endOfTurnPhase()
	return nil
}

// Switch makes the party member with the given uid the active
// creature. A voluntary switch consumes the turn and the incoming
// creature takes the opponent's reply; the forced switch after a faint
// does not. Picking a fainted member rejects silently.
func (s *Session) Switch(uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.battle.State != game.StateBattle {
		return ErrNoActiveBattle
	}
	incoming := s.player.FindByUID(uid)
	if incoming == nil || incoming.Boxed {
		return ErrCreatureNotFound
	}
	if incoming.Fainted() {
		return nil
	}
	current := s.player.Lead()
	if current == incoming {
		return nil
	}

	forced := current == nil || current.Fainted()
	s.promoteToLead(incoming)
	s.appendLog(fmt.Sprintf("Go, %s!", incoming.Name))

	if !forced {
		s.opponentTurn(incoming)
		s.endOfTurnPhase()
	}
	return nil
}

// Flee abandons the current battle or search and returns to idle.
func (s *Session) Flee() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.battle.State {
	case game.StateBattle:
		s.appendLog("Got away safely!")
	case game.StateSearching:
		s.appendLog("Stopped searching.")
	default:
		return ErrNoActiveBattle
	}
	s.battle = &game.BattleSession{State: game.StateIdle}
	return nil
}

// Acknowledge dismisses a terminal battle screen and returns to idle.
func (s *Session) Acknowledge() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.battle.State.Terminal() {
		return ErrNoActiveBattle
	}
	s.battle = &game.BattleSession{State: game.StateIdle}
	s.save()
	return nil
}

// --- turn pipeline internals (callers hold the lock) ---

// opponentTurn lets the opponent strike the given target with a
// uniformly random known move.
func (s *Session) opponentTurn(target *game.Creature) {
	opponent := s.battle.Opponent
	if opponent == nil || opponent.Fainted() || len(opponent.Moves) == 0 {
		return
	}
	move := opponent.Moves[rand.Intn(len(opponent.Moves))]
	dmg := engine.ComputeDamage(opponent, target, move)
	target.CurrentHP -= dmg
	if target.CurrentHP < 0 {
		target.CurrentHP = 0
	}
	s.appendLog(fmt.Sprintf("Wild %s used %s! %d damage.", opponent.Name, move.Name, dmg))
}

// endOfTurnPhase applies end-of-turn effects to both sides, then
// resolves any resulting faints: opponent status faints count as
// victory, a downed active creature forces a switch or the defeat
// path.
func (s *Session) endOfTurnPhase() {
	if s.battle.State != game.StateBattle {
		return
	}

	if active := s.player.Lead(); active != nil {
		lines, _ := engine.EndOfTurn(active)
		s.appendLog(lines...)
	}
	if opponent := s.battle.Opponent; opponent != nil {
		lines, fainted := engine.EndOfTurn(opponent)
		s.appendLog(lines...)
		if fainted {
			s.finishVictory()
			return
		}
	}

	s.battle.Turn++

	active := s.player.Lead()
	if active == nil || !active.Fainted() {
		return
	}
	s.appendLog(fmt.Sprintf("%s fainted!", active.Name))
	if next := firstAble(s.player.Party()); next != nil {
		// Forced switch: the replacement enters without taking a hit.
		s.promoteToLead(next)
		s.appendLog(fmt.Sprintf("Go, %s!", next.Name))
		return
	}
	s.handleDefeat()
}

func (s *Session) finishVictory() {
	s.appendLog(fmt.Sprintf("%s fainted!", s.battle.Opponent.Name))
	s.battle.State = game.StateVictory
	s.grantRewards()
}

// grantRewards pays out the exp, money, badge and drop for a victory or
// capture terminal, exactly once per battle. A panic anywhere in the
// payout is contained: the session falls back to idle rather than
// wedging the battle screen.
func (s *Session) grantRewards() {
	if s.battle.RewardsGranted {
		return
	}
	s.battle.RewardsGranted = true

	defer func() {
		if r := recover(); r != nil {
			logging.Error("reward grant panicked", fmt.Errorf("%v", r), logging.Fields{"encounter": s.battle.Encounter})
			s.battle = &game.BattleSession{State: game.StateIdle}
		}
		s.save()
	}()

	opponent := s.battle.Opponent
	exp := opponent.Level * constants.ExpPerOpponentLevel
	money := opponent.Level * constants.MoneyPerLevelWild
	switch s.battle.Encounter {
	case game.EncounterGym:
		exp += constants.ExpBonusGym
		money = opponent.Level * constants.MoneyPerLevelBoss
	case game.EncounterLeague:
		exp += constants.ExpBonusLeague
		money = opponent.Level*constants.MoneyPerLevelBoss + constants.MoneyBonusLeague
	default:
		exp += constants.ExpBonusWild
	}

	gains := engine.ShareExperience(s.player.Party(), exp)
	for uid, levels := range gains {
		if c := s.player.FindByUID(uid); c != nil {
			s.appendLog(fmt.Sprintf("%s grew %d level(s) to Lv. %d!", c.Name, levels, c.Level))
		}
	}
	s.player.Money += money
	s.appendLog(fmt.Sprintf("Earned %d exp and %d money.", exp, money))

	if s.battle.Encounter == game.EncounterGym && s.battle.GymID != "" {
		s.awardBadge(s.battle.GymID)
	}

	if catalog.RollDrop(constants.ItemDropChance) {
		drop := catalog.DropForTypes(opponent.Types)
		s.player.Items[drop]++
		if it, ok := catalog.ItemByKey(drop); ok {
			s.appendLog(fmt.Sprintf("The opponent dropped a %s!", it.Name))
		}
	}

	s.refreshPendingEvolution()
}

// handleDefeat applies the defeat path: full party heal, flat money
// penalty, straight back to idle.
func (s *Session) handleDefeat() {
	s.appendLog("You blacked out!")
	for _, c := range s.player.Party() {
		c.CurrentHP = c.MaxHP
		c.Status = game.StatusNone
	}
	s.player.Money -= constants.DefeatMoneyPenalty
	if s.player.Money < 0 {
		s.player.Money = 0
	}
	s.battle = &game.BattleSession{State: game.StateIdle}
	s.save()
}

// adoptOpponent copies the captured opponent into the roster under a
// fresh instance id, keeping its level, stats and remaining HP. A full
// party sends it to the box.
func (s *Session) adoptOpponent(opponent *game.Creature) {
	caught := *opponent
	caught.ID = 0
	caught.UID = keys.NewCreatureUID()
	caught.HeldItem = ""
	if slot, ok := s.nextFreeSlot(); ok {
		caught.Slot = slot
	} else {
		caught.Boxed = true
	}
	s.player.Creatures = append(s.player.Creatures, caught)
	s.player.MarkCaught(caught.SpeciesID)
}

func (s *Session) awardBadge(gymID string) {
	_, gym := s.regions.GymByID(gymID)
	if gym == nil {
		return
	}
	for _, b := range s.player.Badges {
		if b == gym.Badge {
			return
		}
	}
	s.player.Badges = append(s.player.Badges, gym.Badge)
	s.appendLog(fmt.Sprintf("You earned the %s badge!", gym.Badge))
}

// promoteToLead swaps the creature into party slot 0.
func (s *Session) promoteToLead(incoming *game.Creature) {
	current := s.player.Lead()
	if current == incoming {
		return
	}
	slot := incoming.Slot
	if current != nil {
		current.Slot = slot
	}
	incoming.Slot = 0
}

func (s *Session) nextFreeSlot() (int, bool) {
	used := map[int]bool{}
	for i := range s.player.Creatures {
		if !s.player.Creatures[i].Boxed {
			used[s.player.Creatures[i].Slot] = true
		}
	}
	for slot := 0; slot < game.PartySize; slot++ {
		if !used[slot] {
			return slot, true
		}
	}
	return 0, false
}

func (s *Session) consumeItem(key string, n int) {
	s.player.Items[key] -= n
	if s.player.Items[key] <= 0 {
		delete(s.player.Items, key)
	}
}

func findMove(c *game.Creature, key string) (game.Move, bool) {
	for _, m := range c.Moves {
		if m.Key == key {
			return m, true
		}
	}
	return game.Move{}, false
}

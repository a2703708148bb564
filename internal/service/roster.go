package service

import (
	"math/rand"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/catalog"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/constants"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/engine"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/logging"
)

// GrantStarter gives a brand-new trainer a random starter from the
// first species ids, plus a handful of balls. Refused once any
// creature is owned.
func (s *Session) GrantStarter() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.player.Creatures) > 0 {
		return ErrStarterOwned
	}
	speciesID := 1 + rand.Intn(constants.StarterSpeciesPool)
	starter, err := s.spawnCreature(speciesID, constants.StarterLevel)
	if err != nil {
		logging.Error("starter fetch failed, using fallback", err, logging.Fields{"species_id": speciesID})
		starter = newCreature(catalog.FallbackSpecies(), constants.StarterLevel)
	}

	s.player.Creatures = append(s.player.Creatures, *starter)
	s.player.MarkSeen(starter.SpeciesID)
	s.player.MarkCaught(starter.SpeciesID)
	if s.player.Items == nil {
		s.player.Items = map[string]int{}
	}
	s.player.Items[game.ItemPokeball] += 5
	s.save()
	return nil
}

// Deposit moves a party creature to the box, outside battle only.
// Blocked when it would leave the party without any member.
func (s *Session) Deposit(uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.battle.State == game.StateBattle {
		return ErrBattleInProgress
	}
	c := s.player.FindByUID(uid)
	if c == nil || c.Boxed {
		return ErrCreatureNotFound
	}
	if len(s.player.Party()) <= 1 {
		return ErrLastPartyMember
	}
	wasLead := c.Slot == 0
	c.Boxed = true
	c.Slot = 0
	if wasLead {
		if next := firstAble(s.player.Party()); next != nil {
			s.promoteToLead(next)
		}
	}
	s.save()
	return nil
}

// Withdraw moves a boxed creature into the party. Blocked when the
// party is full.
func (s *Session) Withdraw(uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.player.FindByUID(uid)
	if c == nil || !c.Boxed {
		return ErrCreatureNotFound
	}
	slot, ok := s.nextFreeSlot()
	if !ok {
		return ErrPartyFull
	}
	c.Boxed = false
	c.Slot = slot
	s.save()
	return nil
}

// Release permanently removes a boxed creature. Party members must be
// deposited first.
func (s *Session) Release(uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.player.FindByUID(uid)
	if c == nil || !c.Boxed {
		return ErrCreatureNotFound
	}
	released := *c
	s.removeCreature(uid)
	if s.repo != nil {
		if err := s.repo.DeleteCreature(&released); err != nil {
			logging.Error("failed to delete released creature", err, logging.Fields{"uid": uid})
		}
	}
	s.save()
	return nil
}

// SwapSlots exchanges two party positions; slot 0 is the battle lead,
// so reordering is locked while a battle is live. Switch is the only
// way to change the active creature mid-battle.
func (s *Session) SwapSlots(uidA, uidB string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.battle.State == game.StateBattle {
		return ErrBattleInProgress
	}
	a := s.player.FindByUID(uidA)
	b := s.player.FindByUID(uidB)
	if a == nil || b == nil || a.Boxed || b.Boxed {
		return ErrCreatureNotFound
	}
	a.Slot, b.Slot = b.Slot, a.Slot
	s.save()
	return nil
}

// HealParty fully restores every party member outside battle.
func (s *Session) HealParty() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.battle.State == game.StateBattle {
		return ErrBattleInProgress
	}
	for _, c := range s.player.Party() {
		c.CurrentHP = c.MaxHP
		c.Status = game.StatusNone
	}
	s.save()
	return nil
}

// Trade consumes a party creature and delivers a random wild-grade one
// of similar level under a fresh instance id.
func (s *Session) Trade(uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.battle.State == game.StateBattle {
		return ErrBattleInProgress
	}
	c := s.player.FindByUID(uid)
	if c == nil || c.Boxed {
		return ErrCreatureNotFound
	}
	if len(s.player.Party()) <= 1 {
		return ErrLastPartyMember
	}

	region := &s.regions.Regions[rand.Intn(len(s.regions.Regions))]
	route := region.RandomRoute()
	incoming, err := s.spawnCreature(catalog.RandomSpecies(route.Species), c.Level)
	if err != nil {
		logging.Error("trade fetch failed", err, logging.Fields{"uid": uid})
		return nil
	}
	incoming.Slot = c.Slot
	traded := *c
	s.removeCreature(uid)
	if s.repo != nil {
		if err := s.repo.DeleteCreature(&traded); err != nil {
			logging.Error("failed to delete traded creature", err, logging.Fields{"uid": uid})
		}
	}
	s.player.Creatures = append(s.player.Creatures, *incoming)
	s.player.MarkSeen(incoming.SpeciesID)
	s.player.MarkCaught(incoming.SpeciesID)
	s.save()
	return nil
}

// Equip attaches a held item from the bag; a previously held item goes
// back to the bag. Missing items are a silent no-op.
func (s *Session) Equip(uid, itemKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.player.FindByUID(uid)
	if c == nil {
		return ErrCreatureNotFound
	}
	it, ok := catalog.ItemByKey(itemKey)
	if !ok || it.Category != catalog.CategoryHeld && it.Category != catalog.CategoryBerry {
		return nil
	}
	if s.player.Items[itemKey] <= 0 {
		return nil
	}
	s.consumeItem(itemKey, 1)
	if c.HeldItem != "" {
		s.player.Items[c.HeldItem]++
	}
	c.HeldItem = itemKey
	s.save()
	return nil
}

// Unequip returns the held item to the bag.
func (s *Session) Unequip(uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.player.FindByUID(uid)
	if c == nil {
		return ErrCreatureNotFound
	}
	if c.HeldItem == "" {
		return nil
	}
	s.player.Items[c.HeldItem]++
	c.HeldItem = ""
	s.save()
	return nil
}

// UseItem applies a consumable from the bag to an owned creature.
// Ineffective uses (full HP potion, vitamin past a cap, revive on a
// standing creature) leave the bag untouched.
func (s *Session) UseItem(uid, itemKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.player.FindByUID(uid)
	if c == nil {
		return ErrCreatureNotFound
	}
	it, ok := catalog.ItemByKey(itemKey)
	if !ok || s.player.Items[itemKey] <= 0 {
		return nil
	}
	if applyItem(c, it) {
		s.consumeItem(itemKey, 1)
		s.save()
	}
	return nil
}

// applyItem mutates the creature per the item definition and reports
// whether the item had any effect.
func applyItem(c *game.Creature, it catalog.Item) bool {
	switch it.Category {
	case catalog.CategoryMedicine, catalog.CategoryBerry:
		if it.Revive {
			if !c.Fainted() {
				return false
			}
			c.CurrentHP = c.MaxHP / 2
			if it.FullHeal {
				c.CurrentHP = c.MaxHP
			}
			return true
		}
		if c.Fainted() {
			return false
		}
		changed := false
		if it.CureStatus && c.Status != game.StatusNone {
			c.Status = game.StatusNone
			changed = true
		}
		if (it.Heal > 0 || it.FullHeal) && c.CurrentHP < c.MaxHP {
			if it.FullHeal {
				c.CurrentHP = c.MaxHP
			} else {
				c.CurrentHP += it.Heal
				if c.CurrentHP > c.MaxHP {
					c.CurrentHP = c.MaxHP
				}
			}
			changed = true
		}
		return changed
	case catalog.CategoryCandy:
		if c.Level >= engine.LevelCap {
			return false
		}
		c.Exp = engine.ExpForLevel(c.Level + 1)
		c.Level++
		engine.Recalculate(c)
		c.CurrentHP = c.MaxHP
		return true
	case catalog.CategoryVitamin:
		return applyVitamin(c, it.Stat)
	}
	return false
}

// applyVitamin trains an EV stat within the per-stat and total caps;
// anything past a cap is ineffective.
func applyVitamin(c *game.Creature, stat string) bool {
	if stat == "" {
		return false
	}
	cur := c.EVs.Get(stat)
	if cur >= constants.EVStatCap || c.EVs.Total() >= constants.EVTotalCap {
		return false
	}
	gain := constants.EVPerVitamin
	if cur+gain > constants.EVStatCap {
		gain = constants.EVStatCap - cur
	}
	if c.EVs.Total()+gain > constants.EVTotalCap {
		gain = constants.EVTotalCap - c.EVs.Total()
	}
	if gain <= 0 {
		return false
	}
	c.EVs.Set(stat, cur+gain)
	engine.Recalculate(c)
	return true
}

// ChangeNature retunes an owned creature's nature and re-derives its
// stats. Unknown nature names are a silent no-op.
func (s *Session) ChangeNature(uid, nature string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.player.FindByUID(uid)
	if c == nil {
		return ErrCreatureNotFound
	}
	if !game.ValidNature(nature) || c.Nature == nature {
		return nil
	}
	c.Nature = nature
	engine.Recalculate(c)
	s.save()
	return nil
}

// Buy purchases n of an item at list price; insufficient funds are a
// silent no-op.
func (s *Session) Buy(itemKey string, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 {
		return nil
	}
	it, ok := catalog.ItemByKey(itemKey)
	if !ok || it.Price <= 0 {
		return nil
	}
	cost := it.Price * n
	if s.player.Money < cost {
		return nil
	}
	s.player.Money -= cost
	if s.player.Items == nil {
		s.player.Items = map[string]int{}
	}
	s.player.Items[itemKey] += n
	s.save()
	return nil
}

// Sell returns n of an item for half the list price; insufficient
// quantity is a silent no-op.
func (s *Session) Sell(itemKey string, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 {
		return nil
	}
	it, ok := catalog.ItemByKey(itemKey)
	if !ok || s.player.Items[itemKey] < n {
		return nil
	}
	s.consumeItem(itemKey, n)
	s.player.Money += (it.Price / 2) * n
	s.save()
	return nil
}

// removeCreature drops an owned creature from the in-memory roster.
func (s *Session) removeCreature(uid string) {
	for i := range s.player.Creatures {
		if s.player.Creatures[i].UID == uid {
			s.player.Creatures = append(s.player.Creatures[:i], s.player.Creatures[i+1:]...)
			return
		}
	}
}

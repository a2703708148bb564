package game

import (
	"gorm.io/gorm"
)

// StatBlock groups the six combat stats. It is reused for base stats,
// IVs, EVs and derived stats so the stat calculator can treat them
// uniformly.
type StatBlock struct {
	HP  int `json:"hp"`
	Atk int `json:"atk"`
	Def int `json:"def"`
	Spa int `json:"spa"`
	Spd int `json:"spd"`
	Spe int `json:"spe"`
}

// Get returns the value for a stat key. Unknown keys return 0.
func (s StatBlock) Get(key string) int {
	switch key {
	case StatHP:
		return s.HP
	case StatAtk:
		return s.Atk
	case StatDef:
		return s.Def
	case StatSpa:
		return s.Spa
	case StatSpd:
		return s.Spd
	case StatSpe:
		return s.Spe
	}
	return 0
}

// Set assigns the value for a stat key in place.
func (s *StatBlock) Set(key string, v int) {
	switch key {
	case StatHP:
		s.HP = v
	case StatAtk:
		s.Atk = v
	case StatDef:
		s.Def = v
	case StatSpa:
		s.Spa = v
	case StatSpd:
		s.Spd = v
	case StatSpe:
		s.Spe = v
	}
}

// Total sums all six entries (used for the EV 510 cap).
func (s StatBlock) Total() int {
	return s.HP + s.Atk + s.Def + s.Spa + s.Spd + s.Spe
}

// Stat keys shared by StatBlock, the nature table and EV items.
const (
	StatHP  = "hp"
	StatAtk = "atk"
	StatDef = "def"
	StatSpa = "spa"
	StatSpd = "spd"
	StatSpe = "spe"
)

// StatKeys lists the six stat keys in canonical order.
var StatKeys = []string{StatHP, StatAtk, StatDef, StatSpa, StatSpd, StatSpe}

// MoveCategory is a closed enum for how a move deals (or does not deal)
// damage. Validated at the catalog boundary, not at point of use.
type MoveCategory string

const (
	CategoryPhysical MoveCategory = "physical"
	CategorySpecial  MoveCategory = "special"
	CategoryStatus   MoveCategory = "status"
)

// Move is a battle move as consumed by the damage engine. The move
// catalog owns the full table; creatures carry copies of up to four.
type Move struct {
	Key         string       `json:"key"`
	Name        string       `json:"name"`
	Type        Type         `json:"type"`
	Power       int          `json:"power"`
	Accuracy    int          `json:"accuracy"`
	Priority    int          `json:"priority"`
	Category    MoveCategory `json:"category"`
	Description string       `json:"description,omitempty"`
}

// StatusCondition is the single optional condition a creature may carry.
type StatusCondition string

const (
	StatusNone      StatusCondition = ""
	StatusParalysis StatusCondition = "paralysis"
	StatusPoison    StatusCondition = "poison"
	StatusSleep     StatusCondition = "sleep"
	StatusBurn      StatusCondition = "burn"
	StatusFreeze    StatusCondition = "freeze"
)

// TicksDamage reports whether the condition deals end-of-turn damage.
func (s StatusCondition) TicksDamage() bool {
	return s == StatusBurn || s == StatusPoison
}

// Creature is the mutable combatant entity. Species data (base stats,
// typing, sprite) is copied in at creation and replaced wholesale on
// evolution; IVs are fixed at creation, EVs and nature are trainable.
// Invariant: the derived Stats/MaxHP cache always equals
// engine.DeriveStats(BaseStats, Level, IVs, EVs, Nature). Every mutation
// path that touches level, EVs, nature or base stats goes through the
// engine, never through direct field writes.
type Creature struct {
	gorm.Model
	PlayerID  uint   `json:"-"`
	UID       string `json:"uid" gorm:"uniqueIndex"`
	SpeciesID int    `json:"species_id"`
	Name      string `json:"name"`

	Types []Type `json:"types" gorm:"serializer:json"`

	BaseStats StatBlock `json:"base_stats" gorm:"embedded;embeddedPrefix:base_"`
	IVs       StatBlock `json:"ivs" gorm:"embedded;embeddedPrefix:iv_"`
	EVs       StatBlock `json:"evs" gorm:"embedded;embeddedPrefix:ev_"`
	Nature    string    `json:"nature"`

	// Derived cache, never computed lazily at display time.
	Stats StatBlock `json:"stats" gorm:"embedded;embeddedPrefix:stat_"`
	MaxHP int       `json:"max_hp"`

	Level     int `json:"level"`
	Exp       int `json:"exp"`
	CurrentHP int `json:"current_hp"`

	Moves  []Move          `json:"moves" gorm:"serializer:json"`
	Status StatusCondition `json:"status,omitempty"`

	// HeldItem is the equipped item id; empty when nothing is held. The
	// item is exclusively owned while equipped and returns to the bag
	// on unequip.
	HeldItem string `json:"held_item,omitempty"`

	Sprite string `json:"sprite,omitempty"`

	// Boxed creatures live in overflow storage; party members carry a
	// slot index with slot 0 as the battle lead.
	Boxed bool `json:"boxed"`
	Slot  int  `json:"slot"`
}

// Fainted reports the zero-HP terminal condition.
func (c *Creature) Fainted() bool { return c.CurrentHP <= 0 }

// Clone returns a detached copy with its own slice backing.
func (c *Creature) Clone() *Creature {
	out := *c
	out.Types = append([]Type(nil), c.Types...)
	out.Moves = append([]Move(nil), c.Moves...)
	return &out
}

// HasType reports whether t is one of the creature's 1-2 types.
func (c *Creature) HasType(t Type) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// ExpToNextLevel is the cumulative experience at which the next level
// is reached.
func (c *Creature) ExpToNextLevel() int {
	l := c.Level + 1
	return l * l * l
}

// MaxExp is the width of the current level band.
func (c *Creature) MaxExp() int {
	return c.ExpToNextLevel() - c.Level*c.Level*c.Level
}

// BattleState tags the battle screen state machine.
type BattleState string

const (
	StateIdle      BattleState = "idle"
	StateSearching BattleState = "searching"
	StateBattle    BattleState = "battle"
	StateVictory   BattleState = "victory"
	StateDefeat    BattleState = "defeat"
	StateCaptured  BattleState = "captured"
)

// Terminal reports whether the state ends the current battle.
func (s BattleState) Terminal() bool {
	return s == StateVictory || s == StateDefeat || s == StateCaptured
}

// EncounterKind distinguishes capturable wild encounters from scripted
// trainer fights.
type EncounterKind string

const (
	EncounterWild   EncounterKind = "wild"
	EncounterGym    EncounterKind = "gym"
	EncounterLeague EncounterKind = "league"
)

// Wild reports whether the opponent is eligible for capture.
func (k EncounterKind) Wild() bool { return k == EncounterWild }

// BattleSession is the ephemeral per-battle state. Exactly one opponent
// exists at a time; it is discarded at battle end unless captured, in
// which case a copy becomes a new owned creature.
type BattleSession struct {
	State     BattleState   `json:"state"`
	Encounter EncounterKind `json:"encounter,omitempty"`
	Opponent  *Creature     `json:"opponent,omitempty"`
	Turn      int           `json:"turn"`
	Log       []string      `json:"log"`

	// GymID names the gym being challenged so victory can award its
	// badge; empty outside gym encounters.
	GymID string `json:"gym_id,omitempty"`

	// RewardsGranted guards the exactly-once reward grant for the
	// victory/captured terminals.
	RewardsGranted bool `json:"-"`
}

// Clone returns a detached copy, opponent and log included.
func (b *BattleSession) Clone() *BattleSession {
	out := *b
	if b.Opponent != nil {
		out.Opponent = b.Opponent.Clone()
	}
	out.Log = append([]string(nil), b.Log...)
	return &out
}

// Player stores the trainer profile: roster, bag, money and collection
// progress. Creatures holds both party and box; use Party/Box to split.
type Player struct {
	gorm.Model
	Name      string         `json:"name"`
	Money     int            `json:"money"`
	Items     map[string]int `json:"items" gorm:"serializer:json"`
	Seen      []int          `json:"seen" gorm:"serializer:json"`
	Caught    []int          `json:"caught" gorm:"serializer:json"`
	Badges    []string       `json:"badges" gorm:"serializer:json"`
	Creatures []Creature     `json:"creatures"`
}

// Clone returns a detached copy of the full profile.
func (p *Player) Clone() *Player {
	out := *p
	out.Items = make(map[string]int, len(p.Items))
	for k, v := range p.Items {
		out.Items[k] = v
	}
	out.Seen = append([]int(nil), p.Seen...)
	out.Caught = append([]int(nil), p.Caught...)
	out.Badges = append([]string(nil), p.Badges...)
	out.Creatures = make([]Creature, len(p.Creatures))
	for i := range p.Creatures {
		out.Creatures[i] = *p.Creatures[i].Clone()
	}
	return &out
}

// PartySize is the active party capacity; overflow goes to the box.
const PartySize = 6

// Party returns pointers to the active party ordered by slot, lead first.
func (p *Player) Party() []*Creature {
	out := make([]*Creature, 0, PartySize)
	for slot := 0; slot < PartySize; slot++ {
		for i := range p.Creatures {
			if !p.Creatures[i].Boxed && p.Creatures[i].Slot == slot {
				out = append(out, &p.Creatures[i])
			}
		}
	}
	return out
}

// Box returns pointers to the overflow storage members.
func (p *Player) Box() []*Creature {
	var out []*Creature
	for i := range p.Creatures {
		if p.Creatures[i].Boxed {
			out = append(out, &p.Creatures[i])
		}
	}
	return out
}

// Lead returns the party slot 0 creature, or nil when the party is empty.
func (p *Player) Lead() *Creature {
	for i := range p.Creatures {
		if !p.Creatures[i].Boxed && p.Creatures[i].Slot == 0 {
			return &p.Creatures[i]
		}
	}
	return nil
}

// FindByUID locates an owned creature (party or box) by instance id.
func (p *Player) FindByUID(uid string) *Creature {
	for i := range p.Creatures {
		if p.Creatures[i].UID == uid {
			return &p.Creatures[i]
		}
	}
	return nil
}

// MarkSeen records a species id in the seen list once.
func (p *Player) MarkSeen(speciesID int) {
	for _, id := range p.Seen {
		if id == speciesID {
			return
		}
	}
	p.Seen = append(p.Seen, speciesID)
}

// MarkCaught records a species id in the caught list once.
func (p *Player) MarkCaught(speciesID int) {
	for _, id := range p.Caught {
		if id == speciesID {
			return
		}
	}
	p.Caught = append(p.Caught, speciesID)
}

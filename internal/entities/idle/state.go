package idle

import (
	"slices"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// GameTime gates day rollover. It plays no part in combat.
type GameTime struct {
	Day  int    `json:"day"`
	Date string `json:"date"`
}

// GameState is the aggregate root persisted to the save store
type GameState struct {
	Player   Player   `json:"player"`
	Gates    []Gate   `json:"gates"`
	Gold     int      `json:"gold"`
	GameTime GameTime `json:"gameTime"`
	Daily    Daily    `json:"daily"`
}

// Clone returns a deep copy of the state
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	out := &GameState{
		Player:   s.Player.Clone(),
		Gates:    slices.Clone(s.Gates),
		Gold:     s.Gold,
		GameTime: s.GameTime,
		Daily:    s.Daily.Clone(),
	}
	return out
}

// AddGold adds delta to the purse, never dropping below zero
func (s *GameState) AddGold(delta int) {
	s.Gold = max(0, s.Gold+delta)
}

// Validate checks the invariants every persisted state must satisfy
func (s *GameState) Validate(minPoolSize int) error {
	vb := errors.NewValidationBuilder()
	p := &s.Player

	if p.Level < 1 {
		vb.Fieldf("player.level", "must be at least 1, got %d", p.Level)
	}
	errors.ValidatePositive("player.expNext", p.ExpNext, vb)
	if p.Exp < 0 || p.Exp >= p.ExpNext {
		vb.Fieldf("player.exp", "must be in [0, expNext), got %d/%d", p.Exp, p.ExpNext)
	}
	if p.MaxHP < 1 || p.HP < 0 || p.HP > p.MaxHP {
		vb.Fieldf("player.hp", "must be in [0, maxHp], got %d/%d", p.HP, p.MaxHP)
	}
	if p.MaxMP < 0 || p.MP < 0 || p.MP > p.MaxMP {
		vb.Fieldf("player.mp", "must be in [0, maxMp], got %d/%d", p.MP, p.MaxMP)
	}
	if p.Fatigue < 0 || p.Fatigue > MaxFatigue {
		vb.Fieldf("player.fatigue", "must be in [0, %g], got %g", MaxFatigue, p.Fatigue)
	}
	if p.StatPoints < 0 || p.Keys < 0 {
		vb.Field("player", "stat points and keys must not be negative")
	}
	for _, stat := range AllStats() {
		if p.Stats.Get(stat) < 0 {
			vb.Fieldf("player.stats", "%s must not be negative", stat)
		}
	}
	for _, ally := range p.Allies {
		if ally.Power <= 0 || !ally.Rarity.IsValid() {
			vb.Fieldf("player.allies", "ally %s is invalid", ally.ID)
		}
	}
	for _, item := range p.Inventory {
		if err := item.Validate(); err != nil {
			vb.Field("player.inventory", errors.GetMessage(err))
		}
	}
	for _, slot := range AllSlots() {
		item := p.Equipped.Get(slot)
		if item == nil {
			continue
		}
		if err := item.Validate(); err != nil {
			vb.Field("player.equipped", errors.GetMessage(err))
		} else if item.Kind != ItemEquipment || item.Equipment.Slot != slot {
			vb.Fieldf("player.equipped", "item %s does not fit slot %s", item.ID, slot)
		}
	}

	if len(s.Gates) < minPoolSize {
		vb.Fieldf("gates", "pool must hold at least %d gates, got %d", minPoolSize, len(s.Gates))
	}
	for _, gate := range s.Gates {
		if !gate.Rank.IsValid() || gate.Boss.MaxHP < 1 {
			vb.Fieldf("gates", "gate %s is invalid", gate.ID)
		}
	}
	if s.Gold < 0 {
		vb.Fieldf("gold", "must not be negative, got %d", s.Gold)
	}
	if s.GameTime.Day < 1 {
		vb.Fieldf("gameTime.day", "must be at least 1, got %d", s.GameTime.Day)
	}
	for _, q := range s.Daily.Quests {
		if q.Have < 0 || q.Have > q.Need {
			vb.Fieldf("daily.quests", "quest %s progress %d/%d out of range", q.ID, q.Have, q.Need)
		}
	}
	if s.Daily.Reputation < 0 {
		vb.Field("daily.reputation", "must not be negative")
	}

	return vb.Build()
}

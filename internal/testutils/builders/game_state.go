// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"

	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
)

// GameStateBuilder provides a fluent interface for building test GameState instances
type GameStateBuilder struct {
	state *idle.GameState
}

// NewGameStateBuilder creates a builder for a valid level 1 state with three E-rank gates
func NewGameStateBuilder() *GameStateBuilder {
	b := &GameStateBuilder{
		state: &idle.GameState{
			Player: idle.Player{
				Level:     1,
				ExpNext:   100,
				HP:        100,
				MaxHP:     100,
				MP:        50,
				MaxMP:     50,
				Stats:     idle.Stats{STR: 5, AGI: 5, INT: 5, VIT: 5, LUCK: 5},
				Allies:    []idle.Ally{},
				Inventory: []idle.Item{},
			},
			Gold:     100,
			GameTime: idle.GameTime{Day: 1, Date: "2026-10-17"},
			Daily:    idle.Daily{Date: "2026-10-17"},
		},
	}
	for i := 1; i <= 3; i++ {
		b.WithGate(Gate(fmt.Sprintf("gate_%d", i), idle.RankE))
	}
	return b
}

// Gate creates a gate with a boss sized for rank
func Gate(id string, rank idle.Rank) idle.Gate {
	base := 30 * (rank.Index() + 1)
	return idle.Gate{
		ID:               id,
		Name:             fmt.Sprintf("Test Gate %s", id),
		Rank:             rank,
		RecommendedPower: base,
		Power:            base,
		Boss: idle.Boss{
			Name:  "Test Boss",
			MaxHP: base * 8,
			HP:    base * 8,
			Atk:   base / 4,
			Def:   base * 3 / 10,
		},
	}
}

// WithLevel sets the player level and a matching exp curve position
func (b *GameStateBuilder) WithLevel(level, exp, expNext int) *GameStateBuilder {
	b.state.Player.Level = level
	b.state.Player.Exp = exp
	b.state.Player.ExpNext = expNext
	return b
}

// WithHP sets current and max hp
func (b *GameStateBuilder) WithHP(hp, maxHP int) *GameStateBuilder {
	b.state.Player.MaxHP = maxHP
	b.state.Player.HP = hp
	return b
}

// WithMP sets current and max mp
func (b *GameStateBuilder) WithMP(mp, maxMP int) *GameStateBuilder {
	b.state.Player.MaxMP = maxMP
	b.state.Player.MP = mp
	return b
}

// WithStats replaces the base stats
func (b *GameStateBuilder) WithStats(stats idle.Stats) *GameStateBuilder {
	b.state.Player.Stats = stats
	return b
}

// WithStatPoints sets the unspent stat points
func (b *GameStateBuilder) WithStatPoints(points int) *GameStateBuilder {
	b.state.Player.StatPoints = points
	return b
}

// WithFatigue sets the fatigue meter
func (b *GameStateBuilder) WithFatigue(fatigue float64) *GameStateBuilder {
	b.state.Player.Fatigue = fatigue
	return b
}

// WithGold sets the purse
func (b *GameStateBuilder) WithGold(gold int) *GameStateBuilder {
	b.state.Gold = gold
	return b
}

// WithKeys sets the key count
func (b *GameStateBuilder) WithKeys(keys int) *GameStateBuilder {
	b.state.Player.Keys = keys
	return b
}

// WithGate appends a gate to the pool
func (b *GameStateBuilder) WithGate(gate idle.Gate) *GameStateBuilder {
	b.state.Gates = append(b.state.Gates, gate)
	return b
}

// WithGates replaces the pool
func (b *GameStateBuilder) WithGates(gates ...idle.Gate) *GameStateBuilder {
	b.state.Gates = gates
	return b
}

// WithItem adds an item to the inventory
func (b *GameStateBuilder) WithItem(item idle.Item) *GameStateBuilder {
	b.state.Player.Inventory = append(b.state.Player.Inventory, item)
	return b
}

// WithEquipped places item in its slot
func (b *GameStateBuilder) WithEquipped(item idle.Item) *GameStateBuilder {
	if item.Equipment != nil {
		b.state.Player.Equipped.Set(item.Equipment.Slot, &item)
	}
	return b
}

// WithAlly binds an ally
func (b *GameStateBuilder) WithAlly(ally idle.Ally) *GameStateBuilder {
	b.state.Player.Allies = append(b.state.Player.Allies, ally)
	return b
}

// WithDaily replaces the daily quest set
func (b *GameStateBuilder) WithDaily(daily idle.Daily) *GameStateBuilder {
	b.state.Daily = daily
	return b
}

// WithDate sets the game day and calendar date
func (b *GameStateBuilder) WithDate(day int, date string) *GameStateBuilder {
	b.state.GameTime = idle.GameTime{Day: day, Date: date}
	b.state.Daily.Date = date
	return b
}

// Build returns the built state
func (b *GameStateBuilder) Build() *idle.GameState {
	return b.state
}

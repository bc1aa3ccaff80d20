// Package engine is the simulation core of the idle gate-runner: the power
// model, content and loot generation, spirit binding, progression and the
// daily quest generator. Everything here is synchronous and free of I/O;
// randomness comes from the injected rng.Source.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-idle/internal/engine Engine

import (
	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
)

// Engine provides the game formulas and generators
type Engine interface {
	// Balance returns the tuning table in use
	Balance() *Balance
	// NewGameState builds a fresh game for the calendar date
	NewGameState(date string) *idle.GameState

	// Power model
	Power(player *idle.Player) int
	RecommendedPower(rank idle.Rank) int

	// Content generation
	GenerateGate(rank idle.Rank) idle.Gate
	GeneratePool(level int) []idle.Gate
	EnsurePool(gates []idle.Gate, level int) ([]idle.Gate, bool)

	// Loot and shop
	RollLoot(rank idle.Rank) *idle.Item
	ShopPrice(kind idle.ItemKind) (int, bool)
	ShopItem(kind idle.ItemKind) (idle.Item, bool)

	// Binding
	ExtractionChance(stats idle.Stats, rank idle.Rank) float64
	AttemptBinding(input *AttemptBindingInput) *AttemptBindingOutput
	GrantAllyExp(player *idle.Player, exp int) []AllyLevelUp

	// Progression
	ApplyLevelGain(state *idle.GameState, addExp int) *LevelGainOutput

	// Daily quests
	GenerateDaily(level, reputation int, date string) idle.Daily
	ProgressQuest(state *idle.GameState, questID string, amount int) *QuestProgressOutput
	ForfeitDaily(state *idle.GameState) (int, bool)
	RollOver(state *idle.GameState, date string)
}

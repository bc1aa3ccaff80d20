package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
)

// LevelGainOutput describes what a level gain changed
type LevelGainOutput struct {
	LevelsGained    int
	Level           int
	StatPoints      int
	PoolRegenerated bool
}

// ApplyLevelGain adds exp to the player and resolves every level-up it
// causes. The loop is bounded because expNext strictly grows. On any
// level-up hp and mp are topped up to their restore floors and the gate
// pool is regenerated for the new level.
func (e *engine) ApplyLevelGain(state *idle.GameState, addExp int) *LevelGainOutput {
	b := &e.balance.Progression
	p := &state.Player
	p.Exp += max(0, addExp)

	out := &LevelGainOutput{}
	for p.Exp >= p.ExpNext {
		p.Exp -= p.ExpNext
		p.Level++
		p.ExpNext = max(p.ExpNext+1, int(math.Floor(float64(p.ExpNext)*b.ExpGrowth)))
		p.StatPoints += b.StatPointsPerLevel
		p.MaxHP += b.HPPerLevel
		p.MaxMP += b.MPPerLevel
		out.LevelsGained++
		out.StatPoints += b.StatPointsPerLevel
	}
	out.Level = p.Level

	if out.LevelsGained > 0 {
		p.SetHP(max(p.HP, int(math.Floor(float64(p.MaxHP)*b.HPRestoreRatio))))
		p.SetMP(max(p.MP, int(math.Floor(float64(p.MaxMP)*b.MPRestoreRatio))))
		state.Gates = e.GeneratePool(p.Level)
		out.PoolRegenerated = true
	}
	return out
}

// NewGameState builds a fresh game for the calendar date
func (e *engine) NewGameState(date string) *idle.GameState {
	b := &e.balance.Player
	v := b.StatValue
	state := &idle.GameState{
		Player: idle.Player{
			Level:     1,
			ExpNext:   b.ExpNext,
			HP:        b.MaxHP,
			MaxHP:     b.MaxHP,
			MP:        b.MaxMP,
			MaxMP:     b.MaxMP,
			Stats:     idle.Stats{STR: v, AGI: v, INT: v, VIT: v, LUCK: v},
			Allies:    []idle.Ally{},
			Inventory: []idle.Item{},
		},
		Gold:     b.Gold,
		GameTime: idle.GameTime{Day: 1, Date: date},
	}
	state.Gates = e.GeneratePool(state.Player.Level)
	state.Daily = e.GenerateDaily(state.Player.Level, 0, date)
	return state
}

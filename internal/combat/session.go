// Package combat resolves gate fights as an explicit state machine:
// Idle → InCombat → Victory | Defeat. A session owns its gate and boss
// snapshot and is advanced one atomic tick at a time.
package combat

import (
	"github.com/KirkDiggler/rpg-idle/internal/engine"
	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
)

// State is the phase of a combat session
type State int

// Combat states
const (
	StateIdle State = iota
	StateInCombat
	StateVictory
	StateDefeat
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInCombat:
		return "in_combat"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Session is one fight against a gate boss. The gate snapshot stays
// available after the fight ends so the result can be displayed until the
// caller dismisses it.
type Session struct {
	State   State
	Gate    idle.Gate
	EnemyHP int
	Ticks   int
	Victory *VictoryOutcome
	Defeat  *DefeatOutcome
}

// Boss returns the boss snapshot with its current hp
func (s *Session) Boss() idle.Boss {
	boss := s.Gate.Boss
	boss.HP = s.EnemyHP
	return boss
}

// Terminal reports whether the fight has ended
func (s *Session) Terminal() bool {
	return s.State == StateVictory || s.State == StateDefeat
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.Victory != nil {
		v := *s.Victory
		if v.Loot != nil {
			loot := v.Loot.Clone()
			v.Loot = &loot
		}
		if v.Binding != nil {
			b := *v.Binding
			if b.Ally != nil {
				ally := b.Ally.Clone()
				b.Ally = &ally
			}
			v.Binding = &b
		}
		out.Victory = &v
	}
	if s.Defeat != nil {
		d := *s.Defeat
		out.Defeat = &d
	}
	return &out
}

// VictoryOutcome is everything a win granted
type VictoryOutcome struct {
	Exp             int
	Gold            int
	LevelGain       *engine.LevelGainOutput
	AllyLevelUps    []engine.AllyLevelUp
	Loot            *idle.Item
	Binding         *engine.AttemptBindingOutput
	PoolRegenerated bool
}

// DefeatOutcome is what a loss cost
type DefeatOutcome struct {
	GoldLost int
	HP       int
}

// TickResult reports a single tick. Ignored is set when the session was
// already terminal and nothing changed.
type TickResult struct {
	Tick         int
	PlayerDamage int
	BossDamage   int
	Upkeep       int
	EnemyHP      int
	PlayerHP     int
	PlayerMP     int
	Fatigue      float64
	State        State
	Ignored      bool
}

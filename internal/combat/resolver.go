package combat

import (
	"math"

	"github.com/KirkDiggler/rpg-idle/internal/engine"
	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/rng"
)

// Resolver starts and advances combat sessions
type Resolver interface {
	// Start snapshots gate with a fresh boss and enters InCombat
	Start(gate idle.Gate) *Session
	// Tick runs one full tick against state. Ticking a terminal session is a no-op.
	Tick(session *Session, state *idle.GameState) *TickResult
}

// Config holds the dependencies of the resolver
type Config struct {
	Engine engine.Engine
	Random rng.Source
}

// Validate checks that all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Engine == nil {
		vb.RequiredField("engine")
	}
	if cfg.Random == nil {
		vb.RequiredField("random")
	}
	return vb.Build()
}

type resolver struct {
	engine  engine.Engine
	random  rng.Source
	balance *engine.CombatBalance
}

// New creates a combat resolver
func New(cfg *Config) (Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid combat config")
	}
	return &resolver{
		engine:  cfg.Engine,
		random:  cfg.Random,
		balance: &cfg.Engine.Balance().Combat,
	}, nil
}

func (r *resolver) Start(gate idle.Gate) *Session {
	gate.Boss.HP = gate.Boss.MaxHP
	return &Session{
		State:   StateInCombat,
		Gate:    gate,
		EnemyHP: gate.Boss.MaxHP,
	}
}

func (r *resolver) Tick(session *Session, state *idle.GameState) *TickResult {
	p := &state.Player
	if session == nil || session.State != StateInCombat {
		res := &TickResult{Ignored: true, PlayerHP: p.HP, PlayerMP: p.MP, Fatigue: p.Fatigue}
		if session != nil {
			res.Tick = session.Ticks
			res.EnemyHP = session.EnemyHP
			res.State = session.State
		}
		return res
	}

	b := r.balance
	boss := session.Gate.Boss
	session.Ticks++
	res := &TickResult{Tick: session.Ticks}

	// player strikes
	power := float64(r.engine.Power(p))
	res.PlayerDamage = max(1, int(math.Floor(
		power*b.PowerMultiplier-float64(boss.Def)*b.DefPierce+float64(r.random.IntRange(0, b.PlayerVariance)),
	)))
	session.EnemyHP = min(boss.MaxHP, max(0, session.EnemyHP-res.PlayerDamage))

	// boss strikes back
	vit := float64(p.EffectiveStats().VIT)
	res.BossDamage = max(0, int(math.Floor(
		float64(boss.Atk)*b.AtkMultiplier-vit*b.VitMitigation+float64(r.random.IntRange(0, b.BossVariance)),
	)))
	p.SetHP(p.HP - res.BossDamage)

	// ally upkeep
	res.Upkeep = int(math.Floor(float64(len(p.Allies))*b.UpkeepPerAlly + float64(p.AllyPower())*b.UpkeepPowerFactor))
	p.SetMP(p.MP - res.Upkeep)

	p.SetFatigue(p.Fatigue + b.FatiguePerTick)

	switch {
	case session.EnemyHP <= 0:
		session.State = StateVictory
		session.Victory = r.resolveVictory(session, state)
	case p.HP <= 0:
		session.State = StateDefeat
		session.Defeat = r.resolveDefeat(state)
	}

	res.EnemyHP = session.EnemyHP
	res.PlayerHP = p.HP
	res.PlayerMP = p.MP
	res.Fatigue = p.Fatigue
	res.State = session.State
	return res
}

// resolveVictory grants rewards, rolls loot and binding once against the
// defeated boss, then removes the cleared gate from the pool.
func (r *resolver) resolveVictory(session *Session, state *idle.GameState) *VictoryOutcome {
	b := r.balance
	gate := session.Gate
	recommended := float64(gate.RecommendedPower)

	out := &VictoryOutcome{
		Exp:  int(math.Floor(recommended*b.VictoryExp.Multiplier + float64(r.random.IntRange(b.VictoryExp.Min, b.VictoryExp.Max)))),
		Gold: int(math.Floor(recommended*b.VictoryGold.Multiplier + float64(r.random.IntRange(b.VictoryGold.Min, b.VictoryGold.Max)))),
	}

	state.AddGold(out.Gold)
	out.LevelGain = r.engine.ApplyLevelGain(state, out.Exp)
	out.AllyLevelUps = r.engine.GrantAllyExp(&state.Player, out.Exp)

	if out.Loot = r.engine.RollLoot(gate.Rank); out.Loot != nil {
		state.Player.AddItem(out.Loot.Clone())
	}

	out.Binding = r.engine.AttemptBinding(&engine.AttemptBindingInput{
		Gate:  gate,
		Stats: state.Player.EffectiveStats(),
	})
	if out.Binding.Bound() {
		state.Player.Allies = append(state.Player.Allies, out.Binding.Ally.Clone())
	}

	state.Gates = idle.RemoveGate(state.Gates, gate.ID)
	var regenerated bool
	state.Gates, regenerated = r.engine.EnsurePool(state.Gates, state.Player.Level)
	out.PoolRegenerated = regenerated || out.LevelGain.PoolRegenerated
	return out
}

func (r *resolver) resolveDefeat(state *idle.GameState) *DefeatOutcome {
	b := r.balance
	p := &state.Player

	before := state.Gold
	state.AddGold(-b.DefeatGoldPenalty)
	p.SetHP(max(b.DefeatMinHP, int(math.Floor(float64(p.MaxHP)*b.DefeatHPRatio))))

	return &DefeatOutcome{GoldLost: before - state.Gold, HP: p.HP}
}

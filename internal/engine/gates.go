package engine

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
)

// GenerateGate rolls a single gate of rank with a fresh boss
func (e *engine) GenerateGate(rank idle.Rank) idle.Gate {
	b := &e.balance.Gates
	recommended := RecommendedPower(b, rank)

	return idle.Gate{
		ID:               e.ids.gate.Generate(),
		Name:             fmt.Sprintf("%s (%s-Rank)", e.pick(gateNames[rank]), rank),
		Rank:             rank,
		RecommendedPower: recommended,
		Power:            max(b.MinPower, recommended+e.random.IntRange(-b.PowerVariance, b.PowerVariance)),
		Boss:             e.generateBoss(rank, recommended),
	}
}

func (e *engine) generateBoss(rank idle.Rank, recommended int) idle.Boss {
	b := &e.balance.Gates.Boss
	base := float64(recommended)

	atkMultiplier := b.AtkMultiplier
	if rank == idle.TopRank {
		atkMultiplier = b.TopAtkMultiplier
	}

	maxHP := max(1, int(math.Floor(base*b.HPMultiplier))+e.random.IntRange(-b.HPVariance, b.HPVariance))
	return idle.Boss{
		Name:  e.pick(bossNames[rank]),
		MaxHP: maxHP,
		HP:    maxHP,
		Atk:   max(0, int(math.Floor(base*atkMultiplier))+e.random.IntRange(-b.AtkVariance, b.AtkVariance)),
		Def:   max(0, int(math.Floor(base*b.DefMultiplier))+e.random.IntRange(-b.DefVariance, b.DefVariance)),
	}
}

// GeneratePool rolls a full pool for a player of level. Every tier unlocked at
// that level contributes its rolled count; a pool below the minimum size is
// topped up with bottom tier gates.
func (e *engine) GeneratePool(level int) []idle.Gate {
	b := &e.balance.Gates
	var gates []idle.Gate

	for _, tier := range b.Pool {
		if level < tier.UnlockLevel {
			continue
		}
		n := e.random.IntRange(tier.Min, tier.Max)
		for range n {
			gates = append(gates, e.GenerateGate(tier.Rank))
		}
	}

	for len(gates) < b.MinPoolSize {
		gates = append(gates, e.GenerateGate(b.Pool[0].Rank))
	}
	return gates
}

// EnsurePool regenerates the pool when it has dropped below the minimum size
func (e *engine) EnsurePool(gates []idle.Gate, level int) ([]idle.Gate, bool) {
	if len(gates) >= e.balance.Gates.MinPoolSize {
		return gates, false
	}
	return e.GeneratePool(level), true
}

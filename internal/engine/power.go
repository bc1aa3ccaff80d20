package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
)

// MinPower is the floor of the power model
const MinPower = 1

// CalculatePower is the power model: weighted effective stats plus ally power,
// scaled down by fatigue. It is never below MinPower.
func CalculatePower(b *PowerBalance, player *idle.Player) int {
	stats := player.EffectiveStats()
	raw := float64(stats.STR)*b.STR +
		float64(stats.AGI)*b.AGI +
		float64(stats.INT)*b.INT +
		float64(stats.VIT)*b.VIT +
		float64(stats.LUCK)*b.LUCK +
		float64(player.AllyPower())

	return max(MinPower, int(math.Floor(raw*FatiguePenalty(b, player.Fatigue))))
}

// FatiguePenalty returns the multiplier fatigue applies to power
func FatiguePenalty(b *PowerBalance, fatigue float64) float64 {
	return 1 - math.Min(b.MaxFatiguePenalty, math.Max(0, fatigue)/b.FatigueDivisor)
}

// RecommendedPower is the deterministic power a gate of rank is tuned for
func RecommendedPower(b *GateBalance, rank idle.Rank) int {
	curve := b.Curve
	if rank == idle.TopRank {
		curve = b.TopCurve
	}
	idx := float64(rank.Index())
	return int(math.Floor(math.Pow(curve.Base, idx)*curve.Scale + idx*curve.Offset))
}

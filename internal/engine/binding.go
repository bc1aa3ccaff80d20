package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
)

// CalculateExtractionChance is the chance of binding an ally from a boss of
// rank. The result always lies in [MinChance, MaxChance].
func CalculateExtractionChance(b *BindingBalance, stats idle.Stats, rank idle.Rank) float64 {
	chance := b.Base +
		float64(stats.INT)*b.IntFactor +
		float64(stats.LUCK)*b.LuckFactor -
		b.RankPenalty*float64(rank.Index())
	return math.Min(b.MaxChance, math.Max(b.MinChance, chance))
}

// AttemptBindingInput is the boss just defeated and the stats of the victor
type AttemptBindingInput struct {
	Gate  idle.Gate
	Stats idle.Stats
}

// AttemptBindingOutput reports the single Bernoulli trial. Ally is set only on success.
type AttemptBindingOutput struct {
	Chance float64
	Roll   float64
	Ally   *idle.Ally
}

// Bound reports whether an ally was created
func (o *AttemptBindingOutput) Bound() bool {
	return o.Ally != nil
}

// AttemptBinding rolls once against the extraction chance of the defeated gate
func (e *engine) AttemptBinding(input *AttemptBindingInput) *AttemptBindingOutput {
	b := &e.balance.Binding
	out := &AttemptBindingOutput{
		Chance: CalculateExtractionChance(b, input.Stats, input.Gate.Rank),
		Roll:   e.random.Float(),
	}
	if out.Roll >= out.Chance {
		return out
	}

	ally := e.createAlly(input.Gate)
	out.Ally = &ally
	return out
}

func (e *engine) createAlly(gate idle.Gate) idle.Ally {
	b := &e.balance.Binding
	rarity := idle.Rarity(e.weightedIndex(rowFor(b.RarityWeights, gate.Rank)))

	roles := idle.AllRoles()
	role := roles[e.random.IntRange(0, len(roles)-1)]

	multiplier := b.RarityMultipliers[len(b.RarityMultipliers)-1]
	if int(rarity) < len(b.RarityMultipliers) {
		multiplier = b.RarityMultipliers[rarity]
	}
	count := b.AbilityCounts[len(b.AbilityCounts)-1]
	if int(rarity) < len(b.AbilityCounts) {
		count = b.AbilityCounts[rarity]
	}

	return idle.Ally{
		ID:        e.ids.ally.Generate(),
		Name:      e.pick(allyNames[role]),
		Power:     max(1, int(math.Floor(float64(gate.Power)*b.PowerFactor*multiplier))),
		Rarity:    rarity,
		Role:      role,
		Abilities: e.pickAbilities(allyAbilities[role], count),
		Level:     1,
		ExpNext:   b.AllyExpNext,
	}
}

// pickAbilities selects count distinct abilities, keeping list order
func (e *engine) pickAbilities(list []string, count int) []string {
	if count >= len(list) {
		return append([]string(nil), list...)
	}

	chosen := make([]bool, len(list))
	for n := 0; n < count; {
		i := e.random.IntRange(0, len(list)-1)
		if chosen[i] {
			// linear probe keeps the loop bounded with scripted sources
			for chosen[i] {
				i = (i + 1) % len(list)
			}
		}
		chosen[i] = true
		n++
	}

	abilities := make([]string, 0, count)
	for i, ok := range chosen {
		if ok {
			abilities = append(abilities, list[i])
		}
	}
	return abilities
}

// AllyLevelUp records an ally that gained levels
type AllyLevelUp struct {
	AllyID string
	Name   string
	Level  int
}

// GrantAllyExp shares victory exp with every bound ally. Ally levels are
// tracked only; they never change ally power.
func (e *engine) GrantAllyExp(player *idle.Player, exp int) []AllyLevelUp {
	b := &e.balance.Binding
	share := int(math.Floor(float64(exp) * b.AllyExpShare))
	if share <= 0 {
		return nil
	}

	var ups []AllyLevelUp
	for i := range player.Allies {
		ally := &player.Allies[i]
		if ally.ExpNext <= 0 {
			ally.ExpNext = b.AllyExpNext
		}
		ally.Level = max(1, ally.Level)
		ally.Exp += share

		leveled := false
		for ally.Exp >= ally.ExpNext {
			ally.Exp -= ally.ExpNext
			ally.Level++
			ally.ExpNext = max(ally.ExpNext+1, int(math.Floor(float64(ally.ExpNext)*b.AllyExpGrowth)))
			leveled = true
		}
		if leveled {
			ups = append(ups, AllyLevelUp{AllyID: ally.ID, Name: ally.Name, Level: ally.Level})
		}
	}
	return ups
}

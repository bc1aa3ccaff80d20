package engine

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// Balance is the tuning table. Every constant the formulas use lives here so
// it can be adjusted from a YAML file without touching code.
type Balance struct {
	Player      PlayerBalance      `yaml:"player"`
	Power       PowerBalance       `yaml:"power"`
	Gates       GateBalance        `yaml:"gates"`
	Loot        LootBalance        `yaml:"loot"`
	Binding     BindingBalance     `yaml:"binding"`
	Combat      CombatBalance      `yaml:"combat"`
	Progression ProgressionBalance `yaml:"progression"`
	Quests      QuestBalance       `yaml:"quests"`
	Shop        ShopBalance        `yaml:"shop"`
	Rest        RestBalance        `yaml:"rest"`
}

// PlayerBalance is the fresh-game player
type PlayerBalance struct {
	ExpNext   int `yaml:"expNext"`
	MaxHP     int `yaml:"maxHp"`
	MaxMP     int `yaml:"maxMp"`
	StatValue int `yaml:"statValue"`
	Gold      int `yaml:"gold"`
}

// PowerBalance holds the stat weights of the power model
type PowerBalance struct {
	STR               float64 `yaml:"str"`
	AGI               float64 `yaml:"agi"`
	INT               float64 `yaml:"int"`
	VIT               float64 `yaml:"vit"`
	LUCK              float64 `yaml:"luck"`
	FatigueDivisor    float64 `yaml:"fatigueDivisor"`
	MaxFatiguePenalty float64 `yaml:"maxFatiguePenalty"`
}

// PowerCurve is base^rankIdx * scale + rankIdx * offset
type PowerCurve struct {
	Base   float64 `yaml:"base"`
	Scale  float64 `yaml:"scale"`
	Offset float64 `yaml:"offset"`
}

// PoolTier is one row of the gate pool table
type PoolTier struct {
	Rank        idle.Rank `yaml:"rank"`
	UnlockLevel int       `yaml:"unlockLevel"`
	Min         int       `yaml:"min"`
	Max         int       `yaml:"max"`
}

// BossBalance derives boss stats from the recommended power
type BossBalance struct {
	HPMultiplier     float64 `yaml:"hpMultiplier"`
	HPVariance       int     `yaml:"hpVariance"`
	AtkMultiplier    float64 `yaml:"atkMultiplier"`
	TopAtkMultiplier float64 `yaml:"topAtkMultiplier"`
	AtkVariance      int     `yaml:"atkVariance"`
	DefMultiplier    float64 `yaml:"defMultiplier"`
	DefVariance      int     `yaml:"defVariance"`
}

// GateBalance drives the content generator
type GateBalance struct {
	Curve         PowerCurve  `yaml:"curve"`
	TopCurve      PowerCurve  `yaml:"topCurve"`
	PowerVariance int         `yaml:"powerVariance"`
	MinPower      int         `yaml:"minPower"`
	MinPoolSize   int         `yaml:"minPoolSize"`
	Pool          []PoolTier  `yaml:"pool"`
	Boss          BossBalance `yaml:"boss"`
}

// LootBand maps the victory draw below Upper to a kind. Bands are checked in
// order; a draw past the last band drops nothing.
type LootBand struct {
	Kind  idle.ItemKind `yaml:"kind"`
	Upper float64       `yaml:"upper"`
}

// Magnitude is floor(base + quality*perQuality + rankIdx*perRank)
type Magnitude struct {
	Base       float64 `yaml:"base"`
	PerQuality float64 `yaml:"perQuality"`
	PerRank    float64 `yaml:"perRank"`
}

// LootBalance drives the loot table
type LootBalance struct {
	Bands []LootBand `yaml:"bands"`
	// RarityWeights is indexed by rank, then by rarity
	RarityWeights   [][]int   `yaml:"rarityWeights"`
	BaseQuality     []int     `yaml:"baseQuality"`
	QualityVariance int       `yaml:"qualityVariance"`
	Potion          Magnitude `yaml:"potion"`
	Rune            Magnitude `yaml:"rune"`
	Equipment       Magnitude `yaml:"equipment"`
	SellBase        float64   `yaml:"sellBase"`
	SellPerQuality  float64   `yaml:"sellPerQuality"`
}

// BindingBalance drives spirit binding and ally growth
type BindingBalance struct {
	Base        float64 `yaml:"base"`
	IntFactor   float64 `yaml:"intFactor"`
	LuckFactor  float64 `yaml:"luckFactor"`
	RankPenalty float64 `yaml:"rankPenalty"`
	MinChance   float64 `yaml:"minChance"`
	MaxChance   float64 `yaml:"maxChance"`
	PowerFactor float64 `yaml:"powerFactor"`
	// RarityWeights is indexed by rank, then by rarity
	RarityWeights     [][]int   `yaml:"rarityWeights"`
	RarityMultipliers []float64 `yaml:"rarityMultipliers"`
	AbilityCounts     []int     `yaml:"abilityCounts"`
	AllyExpShare      float64   `yaml:"allyExpShare"`
	AllyExpNext       int       `yaml:"allyExpNext"`
	AllyExpGrowth     float64   `yaml:"allyExpGrowth"`
}

// RewardRoll is floor(recommended*multiplier + uniform(min, max))
type RewardRoll struct {
	Multiplier float64 `yaml:"multiplier"`
	Min        int     `yaml:"min"`
	Max        int     `yaml:"max"`
}

// CombatBalance holds the per-tick constants
type CombatBalance struct {
	PowerMultiplier   float64    `yaml:"powerMultiplier"`
	DefPierce         float64    `yaml:"defPierce"`
	PlayerVariance    int        `yaml:"playerVariance"`
	AtkMultiplier     float64    `yaml:"atkMultiplier"`
	VitMitigation     float64    `yaml:"vitMitigation"`
	BossVariance      int        `yaml:"bossVariance"`
	UpkeepPerAlly     float64    `yaml:"upkeepPerAlly"`
	UpkeepPowerFactor float64    `yaml:"upkeepPowerFactor"`
	FatiguePerTick    float64    `yaml:"fatiguePerTick"`
	VictoryExp        RewardRoll `yaml:"victoryExp"`
	VictoryGold       RewardRoll `yaml:"victoryGold"`
	DefeatGoldPenalty int        `yaml:"defeatGoldPenalty"`
	DefeatHPRatio     float64    `yaml:"defeatHpRatio"`
	DefeatMinHP       int        `yaml:"defeatMinHp"`
}

// ProgressionBalance drives leveling
type ProgressionBalance struct {
	ExpGrowth          float64 `yaml:"expGrowth"`
	StatPointsPerLevel int     `yaml:"statPointsPerLevel"`
	HPPerLevel         int     `yaml:"hpPerLevel"`
	MPPerLevel         int     `yaml:"mpPerLevel"`
	HPRestoreRatio     float64 `yaml:"hpRestoreRatio"`
	MPRestoreRatio     float64 `yaml:"mpRestoreRatio"`
}

// QuestTypeBalance is the small per-type base of a daily quest
type QuestTypeBalance struct {
	Type     idle.QuestType `yaml:"type"`
	BaseNeed int            `yaml:"baseNeed"`
	Step     int            `yaml:"step"`
	BaseExp  int            `yaml:"baseExp"`
	BaseGold int            `yaml:"baseGold"`
}

// DifficultyBalance gates a difficulty and scales its quests
type DifficultyBalance struct {
	Difficulty    idle.Difficulty `yaml:"difficulty"`
	Multiplier    float64         `yaml:"multiplier"`
	MinLevel      int             `yaml:"minLevel"`
	MinReputation int             `yaml:"minReputation"`
	// RequireBoth unlocks only when level and reputation both qualify,
	// otherwise either is enough.
	RequireBoth bool              `yaml:"requireBoth"`
	Bonus       *idle.BonusReward `yaml:"bonus,omitempty"`
}

// QuestBalance drives the daily quest generator
type QuestBalance struct {
	PerDay            int                 `yaml:"perDay"`
	Types             []QuestTypeBalance  `yaml:"types"`
	Difficulties      []DifficultyBalance `yaml:"difficulties"`
	LevelNeedScale    float64             `yaml:"levelNeedScale"`
	LevelRewardScale  float64             `yaml:"levelRewardScale"`
	ReputationDivisor int                 `yaml:"reputationDivisor"`
	ForfeitPenalty    int                 `yaml:"forfeitPenalty"`
}

// ShopBalance holds shop prices
type ShopBalance struct {
	PotionPrice     int `yaml:"potionPrice"`
	RunePrice       int `yaml:"runePrice"`
	KeyPrice        int `yaml:"keyPrice"`
	RefreshGoldCost int `yaml:"refreshGoldCost"`
	ItemQuality     int `yaml:"itemQuality"`
}

// RestBalance drives the rest command
type RestBalance struct {
	FatigueRecovery float64 `yaml:"fatigueRecovery"`
	HealRatio       float64 `yaml:"healRatio"`
}

// DefaultBalance returns the built-in balance table
func DefaultBalance() *Balance {
	return &Balance{
		Player: PlayerBalance{ExpNext: 100, MaxHP: 100, MaxMP: 50, StatValue: 5, Gold: 100},
		Power: PowerBalance{
			STR: 3, AGI: 2, INT: 1.5, VIT: 0.5, LUCK: 0.5,
			FatigueDivisor:    250,
			MaxFatiguePenalty: 0.4,
		},
		Gates: GateBalance{
			Curve:         PowerCurve{Base: 1.8, Scale: 30, Offset: 15},
			TopCurve:      PowerCurve{Base: 1.6, Scale: 30, Offset: 40},
			PowerVariance: 20,
			MinPower:      10,
			MinPoolSize:   3,
			Pool: []PoolTier{
				{Rank: idle.RankE, UnlockLevel: 1, Min: 2, Max: 4},
				{Rank: idle.RankD, UnlockLevel: 5, Min: 2, Max: 4},
				{Rank: idle.RankC, UnlockLevel: 10, Min: 2, Max: 4},
				{Rank: idle.RankB, UnlockLevel: 18, Min: 2, Max: 4},
				{Rank: idle.RankA, UnlockLevel: 28, Min: 2, Max: 4},
				{Rank: idle.RankS, UnlockLevel: 40, Min: 1, Max: 2},
			},
			Boss: BossBalance{
				HPMultiplier: 8, HPVariance: 25,
				AtkMultiplier: 0.25, TopAtkMultiplier: 0.18, AtkVariance: 5,
				DefMultiplier: 0.3, DefVariance: 3,
			},
		},
		Loot: LootBalance{
			Bands: []LootBand{
				{Kind: idle.ItemKey, Upper: 0.08},
				{Kind: idle.ItemRune, Upper: 0.28},
				{Kind: idle.ItemPotion, Upper: 0.55},
				{Kind: idle.ItemEquipment, Upper: 0.65},
			},
			RarityWeights: [][]int{
				{70, 25, 5, 0, 0},
				{60, 28, 10, 2, 0},
				{50, 30, 15, 4, 1},
				{40, 32, 18, 8, 2},
				{30, 32, 22, 12, 4},
				{20, 30, 26, 16, 8},
			},
			BaseQuality:     []int{30, 45, 60, 75, 90},
			QualityVariance: 10,
			Potion:          Magnitude{Base: 20, PerQuality: 0.6, PerRank: 15},
			Rune:            Magnitude{Base: 1, PerQuality: 0.03, PerRank: 1},
			Equipment:       Magnitude{Base: 2, PerQuality: 0.05, PerRank: 2},
			SellBase:        5,
			SellPerQuality:  0.5,
		},
		Binding: BindingBalance{
			Base: 0.15, IntFactor: 0.01, LuckFactor: 0.015, RankPenalty: 0.03,
			MinChance: 0.05, MaxChance: 0.75,
			PowerFactor: 0.8,
			RarityWeights: [][]int{
				{80, 17, 3, 0, 0},
				{70, 22, 7, 1, 0},
				{58, 27, 11, 3, 1},
				{45, 30, 16, 7, 2},
				{35, 30, 20, 11, 4},
				{25, 28, 24, 15, 8},
			},
			RarityMultipliers: []float64{0.3, 0.45, 0.6, 0.8, 1.0},
			AbilityCounts:     []int{1, 2, 2, 3, 4},
			AllyExpShare:      0.1,
			AllyExpNext:       50,
			AllyExpGrowth:     1.3,
		},
		Combat: CombatBalance{
			PowerMultiplier: 1.2, DefPierce: 0.3, PlayerVariance: 6,
			AtkMultiplier: 0.8, VitMitigation: 0.7, BossVariance: 3,
			UpkeepPerAlly: 1, UpkeepPowerFactor: 0.02,
			FatiguePerTick:    0.5,
			VictoryExp:        RewardRoll{Multiplier: 1.1, Min: 10, Max: 40},
			VictoryGold:       RewardRoll{Multiplier: 0.8, Min: 5, Max: 25},
			DefeatGoldPenalty: 10,
			DefeatHPRatio:     0.2,
			DefeatMinHP:       5,
		},
		Progression: ProgressionBalance{
			ExpGrowth:          1.35,
			StatPointsPerLevel: 5,
			HPPerLevel:         10,
			MPPerLevel:         5,
			HPRestoreRatio:     0.6,
			MPRestoreRatio:     0.5,
		},
		Quests: QuestBalance{
			PerDay: 5,
			Types: []QuestTypeBalance{
				{Type: idle.QuestPushups, BaseNeed: 20, Step: 5, BaseExp: 30, BaseGold: 15},
				{Type: idle.QuestSitups, BaseNeed: 20, Step: 5, BaseExp: 30, BaseGold: 15},
				{Type: idle.QuestSquats, BaseNeed: 25, Step: 5, BaseExp: 30, BaseGold: 15},
				{Type: idle.QuestRunning, BaseNeed: 10, Step: 2, BaseExp: 40, BaseGold: 20},
				{Type: idle.QuestMeditation, BaseNeed: 10, Step: 2, BaseExp: 25, BaseGold: 10},
			},
			Difficulties: []DifficultyBalance{
				{Difficulty: idle.DifficultyEasy, Multiplier: 1},
				{Difficulty: idle.DifficultyMedium, Multiplier: 1.5, MinLevel: 5, MinReputation: 20},
				{
					Difficulty: idle.DifficultyHard, Multiplier: 2.2, MinLevel: 12, MinReputation: 60,
					RequireBoth: true, Bonus: &idle.BonusReward{Keys: 1},
				},
				{
					Difficulty: idle.DifficultyEpic, Multiplier: 3, MinLevel: 25, MinReputation: 150,
					RequireBoth: true, Bonus: &idle.BonusReward{Keys: 1, StatPoints: 1},
				},
			},
			LevelNeedScale:    0.05,
			LevelRewardScale:  0.1,
			ReputationDivisor: 10,
			ForfeitPenalty:    10,
		},
		Shop: ShopBalance{
			PotionPrice:     25,
			RunePrice:       120,
			KeyPrice:        60,
			RefreshGoldCost: 30,
			ItemQuality:     50,
		},
		Rest: RestBalance{FatigueRecovery: 30, HealRatio: 0.3},
	}
}

// LoadBalance overlays the YAML file at path onto the default table.
// Keys missing from the file keep their default values; lists are replaced whole.
func LoadBalance(path string) (*Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read balance file %s", path)
	}
	return ParseBalance(data)
}

// ParseBalance overlays a YAML document onto the default table
func ParseBalance(data []byte) (*Balance, error) {
	b := DefaultBalance()
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse balance table")
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate rejects tables the formulas cannot work with
func (b *Balance) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePositive("player.expNext", b.Player.ExpNext, vb)
	errors.ValidatePositive("player.maxHp", b.Player.MaxHP, vb)
	if b.Power.FatigueDivisor <= 0 {
		vb.Field("power.fatigueDivisor", "must be positive")
	}
	errors.ValidateProbability("power.maxFatiguePenalty", b.Power.MaxFatiguePenalty, vb)

	if b.Gates.MinPoolSize < 1 {
		vb.Field("gates.minPoolSize", "must be at least 1")
	}
	if len(b.Gates.Pool) == 0 {
		vb.RequiredField("gates.pool")
	} else if b.Gates.Pool[0].Rank != idle.RankE {
		vb.Field("gates.pool", "first tier must be the bottom rank")
	}
	for i, tier := range b.Gates.Pool {
		if !tier.Rank.IsValid() || tier.Min < 0 || tier.Max < tier.Min {
			vb.Fieldf("gates.pool", "tier %d is invalid", i)
		}
		if i > 0 && tier.UnlockLevel < b.Gates.Pool[i-1].UnlockLevel {
			vb.Fieldf("gates.pool", "tier %d unlocks before tier %d", i, i-1)
		}
	}

	prev := 0.0
	for i, band := range b.Loot.Bands {
		if !band.Kind.IsValid() || band.Upper <= prev || band.Upper > 1 {
			vb.Fieldf("loot.bands", "band %d must have a known kind and increasing upper bound in (0, 1]", i)
		}
		prev = band.Upper
	}
	validateWeights("loot.rarityWeights", b.Loot.RarityWeights, vb)
	if len(b.Loot.BaseQuality) != idle.RarityCount {
		vb.Fieldf("loot.baseQuality", "must have %d entries", idle.RarityCount)
	}

	errors.ValidateProbability("binding.minChance", b.Binding.MinChance, vb)
	errors.ValidateProbability("binding.maxChance", b.Binding.MaxChance, vb)
	if b.Binding.MinChance > b.Binding.MaxChance {
		vb.Field("binding", "minChance must not exceed maxChance")
	}
	validateWeights("binding.rarityWeights", b.Binding.RarityWeights, vb)
	if len(b.Binding.RarityMultipliers) != idle.RarityCount {
		vb.Fieldf("binding.rarityMultipliers", "must have %d entries", idle.RarityCount)
	}
	if len(b.Binding.AbilityCounts) != idle.RarityCount {
		vb.Fieldf("binding.abilityCounts", "must have %d entries", idle.RarityCount)
	}
	errors.ValidatePositive("binding.allyExpNext", b.Binding.AllyExpNext, vb)
	if b.Binding.AllyExpGrowth <= 1 {
		vb.Field("binding.allyExpGrowth", "must be greater than 1")
	}

	if b.Combat.VictoryExp.Max < b.Combat.VictoryExp.Min || b.Combat.VictoryGold.Max < b.Combat.VictoryGold.Min {
		vb.Field("combat", "reward roll max must not be below min")
	}
	if b.Progression.ExpGrowth <= 1 {
		vb.Field("progression.expGrowth", "must be greater than 1")
	}

	errors.ValidatePositive("quests.perDay", b.Quests.PerDay, vb)
	if len(b.Quests.Types) == 0 {
		vb.RequiredField("quests.types")
	}
	for _, qt := range b.Quests.Types {
		if qt.BaseNeed <= 0 || qt.Step <= 0 {
			vb.Fieldf("quests.types", "%s needs a positive base and step", qt.Type)
		}
	}
	if len(b.Quests.Difficulties) == 0 || b.Quests.Difficulties[0].MinLevel > 1 {
		vb.Field("quests.difficulties", "the first difficulty must always be unlocked")
	}
	errors.ValidatePositive("quests.reputationDivisor", b.Quests.ReputationDivisor, vb)

	errors.ValidateRange("shop.itemQuality", b.Shop.ItemQuality, idle.MinQuality, idle.MaxQuality, vb)

	return vb.Build()
}

func validateWeights(field string, weights [][]int, vb *errors.ValidationBuilder) {
	if len(weights) != len(idle.AllRanks()) {
		vb.Fieldf(field, "must have one row per rank")
		return
	}
	for i, row := range weights {
		total := 0
		for _, w := range row {
			if w < 0 {
				total = -1
				break
			}
			total += w
		}
		if len(row) != idle.RarityCount || total <= 0 {
			vb.Fieldf(field, "row %d must have %d non-negative weights with a positive sum", i, idle.RarityCount)
		}
	}
}

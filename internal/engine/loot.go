package engine

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
)

// RollLoot makes the single loot draw of a victory over a gate of rank.
// It returns nil when the draw lands past every band.
func (e *engine) RollLoot(rank idle.Rank) *idle.Item {
	kind, ok := e.lootKind(e.random.Float())
	if !ok {
		return nil
	}

	rarity := idle.Rarity(e.weightedIndex(rowFor(e.balance.Loot.RarityWeights, rank)))
	quality := e.rollQuality(rarity)
	item := e.buildItem(kind, rank, rarity, quality)
	return &item
}

func (e *engine) lootKind(draw float64) (idle.ItemKind, bool) {
	for _, band := range e.balance.Loot.Bands {
		if draw < band.Upper {
			return band.Kind, true
		}
	}
	return "", false
}

func (e *engine) rollQuality(rarity idle.Rarity) int {
	b := &e.balance.Loot
	base := b.BaseQuality[0]
	if int(rarity) < len(b.BaseQuality) {
		base = b.BaseQuality[rarity]
	}
	v := base + e.random.IntRange(-b.QualityVariance, b.QualityVariance)
	return min(idle.MaxQuality, max(idle.MinQuality, v))
}

// buildItem creates the variant for kind. Magnitudes scale linearly with
// quality and rank.
func (e *engine) buildItem(kind idle.ItemKind, rank idle.Rank, rarity idle.Rarity, quality int) idle.Item {
	b := &e.balance.Loot
	base := idle.ItemBase{
		ID:        e.ids.item.Generate(),
		Rarity:    rarity,
		Quality:   quality,
		SellValue: int(math.Floor((b.SellBase + float64(quality)*b.SellPerQuality) * float64(rank.Index()+1))),
	}
	label := rarityLabel(rarity)

	switch kind {
	case idle.ItemPotion:
		base.Name = label + " Healing Potion"
		return idle.NewPotion(base, magnitude(b.Potion, quality, rank))
	case idle.ItemRune:
		stat := e.randomStat()
		base.Name = fmt.Sprintf("%s Rune of %s", label, stat)
		return idle.NewRune(base, stat, magnitude(b.Rune, quality, rank))
	case idle.ItemEquipment:
		slots := idle.AllSlots()
		slot := slots[e.random.IntRange(0, len(slots)-1)]
		base.Name = label + " " + e.pick(equipmentNames[slot])
		return idle.NewEquipment(base, slot, e.randomStat(), magnitude(b.Equipment, quality, rank))
	default:
		base.Name = "Gate Key"
		return idle.NewKey(base)
	}
}

func magnitude(m Magnitude, quality int, rank idle.Rank) int {
	return int(math.Floor(m.Base + float64(quality)*m.PerQuality + float64(rank.Index())*m.PerRank))
}

func (e *engine) randomStat() idle.Stat {
	stats := idle.AllStats()
	return stats[e.random.IntRange(0, len(stats)-1)]
}

// weightedIndex draws an index with probability proportional to its weight.
// Zero weights are never drawn.
func (e *engine) weightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		total += max(0, w)
	}
	if total == 0 {
		return 0
	}

	draw := e.random.IntRange(0, total-1)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if draw < w {
			return i
		}
		draw -= w
	}
	return len(weights) - 1
}

// rowFor returns the weight row of rank, falling back to the last row
func rowFor(table [][]int, rank idle.Rank) []int {
	if len(table) == 0 {
		return nil
	}
	if rank.Index() < len(table) {
		return table[rank.Index()]
	}
	return table[len(table)-1]
}

// ShopPrice returns the gold price of kind, or false when the shop does not sell it
func (e *engine) ShopPrice(kind idle.ItemKind) (int, bool) {
	s := &e.balance.Shop
	switch kind {
	case idle.ItemPotion:
		return s.PotionPrice, true
	case idle.ItemRune:
		return s.RunePrice, true
	case idle.ItemKey:
		return s.KeyPrice, true
	default:
		return 0, false
	}
}

// ShopItem creates the common, fixed quality item the shop sells for kind
func (e *engine) ShopItem(kind idle.ItemKind) (idle.Item, bool) {
	if _, ok := e.ShopPrice(kind); !ok {
		return idle.Item{}, false
	}
	return e.buildItem(kind, idle.RankE, idle.RarityCommon, e.balance.Shop.ItemQuality), true
}

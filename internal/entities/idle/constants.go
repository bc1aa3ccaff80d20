// Package idle holds the data model of the idle gate-runner: the player, the
// gate pool, items, allies and the daily quest set.
package idle

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// Rank is the ordered difficulty tier of a gate
type Rank int

// Gate ranks, weakest first
const (
	RankE Rank = iota
	RankD
	RankC
	RankB
	RankA
	RankS
)

var rankNames = []string{"E", "D", "C", "B", "A", "S"}

// TopRank is the highest tier; it uses the gentler difficulty curve
const TopRank = RankS

// AllRanks returns every rank in ascending order
func AllRanks() []Rank {
	return []Rank{RankE, RankD, RankC, RankB, RankA, RankS}
}

// String returns the rank letter
func (r Rank) String() string { return enumName(rankNames, int(r)) }

// IsValid checks if the rank is one of the six tiers
func (r Rank) IsValid() bool { return r >= RankE && r <= RankS }

// Index returns the zero based position of the rank (E=0 ... S=5)
func (r Rank) Index() int { return int(r) }

// ParseRank converts a rank letter to a Rank
func ParseRank(s string) (Rank, bool) {
	i, ok := parseEnum(rankNames, s)
	return Rank(i), ok
}

// MarshalText encodes the rank as its letter
func (r Rank) MarshalText() ([]byte, error) { return marshalEnum("rank", rankNames, int(r)) }

// UnmarshalText decodes a rank letter
func (r *Rank) UnmarshalText(b []byte) error {
	i, err := unmarshalEnum("rank", rankNames, b)
	*r = Rank(i)
	return err
}

// Rarity is the ordered rarity tier shared by items and allies
type Rarity int

// Rarity tiers, most common first
const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = []string{"common", "uncommon", "rare", "epic", "legendary"}

// RarityCount is the number of rarity tiers
const RarityCount = 5

// AllRarities returns every rarity in ascending order
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}
}

func (r Rarity) String() string { return enumName(rarityNames, int(r)) }

// IsValid checks if the rarity is a known tier
func (r Rarity) IsValid() bool { return r >= RarityCommon && r <= RarityLegendary }

// ParseRarity converts a rarity name to a Rarity
func ParseRarity(s string) (Rarity, bool) {
	i, ok := parseEnum(rarityNames, s)
	return Rarity(i), ok
}

// MarshalText encodes the rarity by name
func (r Rarity) MarshalText() ([]byte, error) { return marshalEnum("rarity", rarityNames, int(r)) }

// UnmarshalText decodes a rarity name
func (r *Rarity) UnmarshalText(b []byte) error {
	i, err := unmarshalEnum("rarity", rarityNames, b)
	*r = Rarity(i)
	return err
}

// Difficulty is the ordered tier of a daily quest
type Difficulty int

// Quest difficulties, easiest first
const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyEpic
)

var difficultyNames = []string{"easy", "medium", "hard", "epic"}

// AllDifficulties returns every difficulty in ascending order
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyEpic}
}

func (d Difficulty) String() string { return enumName(difficultyNames, int(d)) }

// IsValid checks if the difficulty is a known tier
func (d Difficulty) IsValid() bool { return d >= DifficultyEasy && d <= DifficultyEpic }

// MarshalText encodes the difficulty by name
func (d Difficulty) MarshalText() ([]byte, error) {
	return marshalEnum("difficulty", difficultyNames, int(d))
}

// UnmarshalText decodes a difficulty name
func (d *Difficulty) UnmarshalText(b []byte) error {
	i, err := unmarshalEnum("difficulty", difficultyNames, b)
	*d = Difficulty(i)
	return err
}

// Stat is one of the five allocatable player stats
type Stat string

// Player stats
const (
	StatSTR  Stat = "STR"
	StatAGI  Stat = "AGI"
	StatINT  Stat = "INT"
	StatVIT  Stat = "VIT"
	StatLUCK Stat = "LUCK"
)

// AllStats returns the stats in display order
func AllStats() []Stat {
	return []Stat{StatSTR, StatAGI, StatINT, StatVIT, StatLUCK}
}

// IsValid checks if the stat is known
func (s Stat) IsValid() bool {
	switch s {
	case StatSTR, StatAGI, StatINT, StatVIT, StatLUCK:
		return true
	default:
		return false
	}
}

// ParseStat converts a case-insensitive stat name to a Stat
func ParseStat(s string) (Stat, bool) {
	stat := Stat(strings.ToUpper(strings.TrimSpace(s)))
	return stat, stat.IsValid()
}

// ItemKind identifies the variant an Item carries
type ItemKind string

// Item kinds
const (
	ItemPotion    ItemKind = "potion"
	ItemRune      ItemKind = "rune"
	ItemKey       ItemKind = "key"
	ItemEquipment ItemKind = "equipment"
)

// IsValid checks if the kind is known
func (k ItemKind) IsValid() bool {
	switch k {
	case ItemPotion, ItemRune, ItemKey, ItemEquipment:
		return true
	default:
		return false
	}
}

// Slot is an equipment slot
type Slot string

// Equipment slots
const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

// AllSlots returns the equipment slots in display order
func AllSlots() []Slot {
	return []Slot{SlotWeapon, SlotArmor, SlotAccessory}
}

// IsValid checks if the slot is known
func (s Slot) IsValid() bool {
	switch s {
	case SlotWeapon, SlotArmor, SlotAccessory:
		return true
	default:
		return false
	}
}

// AllyRole is the combat role of a bound ally
type AllyRole string

// Ally roles
const (
	RoleKnight   AllyRole = "knight"
	RoleArcher   AllyRole = "archer"
	RoleMage     AllyRole = "mage"
	RoleHealer   AllyRole = "healer"
	RoleAssassin AllyRole = "assassin"
)

// AllRoles returns the ally roles
func AllRoles() []AllyRole {
	return []AllyRole{RoleKnight, RoleArcher, RoleMage, RoleHealer, RoleAssassin}
}

// QuestType is the objective kind of a daily quest
type QuestType string

// Daily quest types
const (
	QuestPushups    QuestType = "pushups"
	QuestSitups     QuestType = "situps"
	QuestSquats     QuestType = "squats"
	QuestRunning    QuestType = "running"
	QuestMeditation QuestType = "meditation"
)

// AllQuestTypes returns the quest types
func AllQuestTypes() []QuestType {
	return []QuestType{QuestPushups, QuestSitups, QuestSquats, QuestRunning, QuestMeditation}
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parseEnum(names []string, s string) (int, bool) {
	s = strings.TrimSpace(s)
	for i, name := range names {
		if strings.EqualFold(name, s) {
			return i, true
		}
	}
	return 0, false
}

func marshalEnum(kind string, names []string, i int) ([]byte, error) {
	if i < 0 || i >= len(names) {
		return nil, errors.InvalidArgumentf("invalid %s %d", kind, i)
	}
	return []byte(names[i]), nil
}

func unmarshalEnum(kind string, names []string, b []byte) (int, error) {
	i, ok := parseEnum(names, string(b))
	if !ok {
		return 0, errors.InvalidArgumentf("invalid %s %q", kind, string(b))
	}
	return i, nil
}

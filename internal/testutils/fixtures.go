package testutils

import (
	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/testutils/builders"
)

// Progress stages for testing
const (
	StageFresh    = "fresh"
	StageGeared   = "geared"
	StageVeteran  = "veteran"
	StageWounded  = "wounded"
	TestSlotID    = "slot-test-001"
	TestStartDate = "2026-10-17"
)

// CreateTestGameState creates a valid level 1 game state
func CreateTestGameState() *idle.GameState {
	return builders.NewGameStateBuilder().
		WithDaily(CreateTestDaily(TestStartDate)).
		Build()
}

// CreateTestGameStateWithProgress creates a test state at various stages of a run
func CreateTestGameStateWithProgress(stage string) *idle.GameState {
	b := builders.NewGameStateBuilder().WithDaily(CreateTestDaily(TestStartDate))

	switch stage {
	case StageGeared:
		b.WithItem(CreateTestPotion("item_potion", 40)).
			WithItem(idle.NewRune(idle.ItemBase{ID: "item_rune", Name: "Rune of STR", Quality: 50}, idle.StatSTR, 2)).
			WithItem(CreateTestSword("item_sword", 3)).
			WithEquipped(idle.NewEquipment(
				idle.ItemBase{ID: "item_ring", Name: "Ring", Quality: 50}, idle.SlotAccessory, idle.StatLUCK, 2,
			)).
			WithKeys(1)

	case StageVeteran:
		b.WithLevel(12, 40, 2000).
			WithHP(150, 210).
			WithMP(80, 105).
			WithStats(idle.Stats{STR: 20, AGI: 15, INT: 12, VIT: 14, LUCK: 10}).
			WithStatPoints(3).
			WithGold(900).
			WithAlly(idle.Ally{
				ID: "ally_1", Name: "Igris", Power: 60, Rarity: idle.RarityEpic, Role: idle.RoleKnight,
				Abilities: []string{"Shield Wall", "Taunt", "Iron Skin"}, Level: 3, ExpNext: 84,
			}).
			WithGates(
				builders.Gate("gate_1", idle.RankE),
				builders.Gate("gate_2", idle.RankD),
				builders.Gate("gate_3", idle.RankC),
			)

	case StageWounded:
		b.WithHP(10, 100).WithMP(0, 50).WithFatigue(80).WithGold(5)
	}

	return b.Build()
}

// CreateTestDaily creates a two quest set for date
func CreateTestDaily(date string) idle.Daily {
	return idle.Daily{
		Date: date,
		Quests: []idle.DailyQuest{
			{
				ID: "quest_1", Type: idle.QuestPushups, Difficulty: idle.DifficultyEasy,
				Need: 20, Step: 5, RewardExp: 30, RewardGold: 15,
			},
			{
				ID: "quest_2", Type: idle.QuestRunning, Difficulty: idle.DifficultyHard,
				Need: 4, Step: 2, RewardExp: 80, RewardGold: 40, Bonus: &idle.BonusReward{Keys: 1},
			},
		},
	}
}

// CreateTestPotion creates a common potion
func CreateTestPotion(id string, heal int) idle.Item {
	return idle.NewPotion(idle.ItemBase{ID: id, Name: "Healing Potion", Quality: 50, SellValue: 30}, heal)
}

// CreateTestSword creates a weapon boosting STR
func CreateTestSword(id string, bonus int) idle.Item {
	return idle.NewEquipment(
		idle.ItemBase{ID: id, Name: "Iron Sword", Quality: 50, SellValue: 25},
		idle.SlotWeapon, idle.StatSTR, bonus,
	)
}

package game_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
)

type ParseCommandTestSuite struct {
	suite.Suite
}

func TestParseCommandSuite(t *testing.T) {
	suite.Run(t, new(ParseCommandTestSuite))
}

func (s *ParseCommandTestSuite) TestValidCommands() {
	testCases := []struct {
		name string
		args []string
		want game.Command
	}{
		{name: "start-gate", args: []string{"gate_1"}, want: game.StartGate{GateID: "gate_1"}},
		{name: "tick", want: game.ResolveTick{}},
		{name: "dismiss", want: game.DismissResult{}},
		{name: "abandon", want: game.AbandonGate{}},
		{name: "rest", want: game.Rest{}},
		{name: "allocate", args: []string{"luck"}, want: game.AllocateStat{Stat: idle.StatLUCK}},
		{name: "use", args: []string{"item_3"}, want: game.UseItem{ItemID: "item_3"}},
		{name: "equip", args: []string{"item_4"}, want: game.Equip{ItemID: "item_4"}},
		{name: "unequip", args: []string{"Weapon"}, want: game.Unequip{Slot: idle.SlotWeapon}},
		{name: "buy", args: []string{"KEY"}, want: game.BuyItem{Kind: idle.ItemKey}},
		{name: "sell", args: []string{"item_5"}, want: game.SellItem{ItemID: "item_5"}},
		{name: "refresh", want: game.RefreshGates{}},
		{name: "quest", args: []string{"quest_1"}, want: game.ProgressDailyQuest{QuestID: "quest_1"}},
		{name: "quest", args: []string{"quest_1", "12"}, want: game.ProgressDailyQuest{QuestID: "quest_1", Amount: 12}},
		{name: "forfeit", want: game.ForfeitDaily{}},
		{name: "advance-day", want: game.AdvanceDay{}},
		{name: "sync-date", args: []string{"2026-10-18"}, want: game.SyncDate{Date: "2026-10-18"}},
		{name: " REST ", want: game.Rest{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cmd, err := game.ParseCommand(tc.name, tc.args)
			s.Require().NoError(err)
			s.Equal(tc.want, cmd)
		})
	}
}

func (s *ParseCommandTestSuite) TestInvalidCommands() {
	testCases := []struct {
		desc string
		name string
		args []string
		msg  string
	}{
		{desc: "unknown command", name: "dance", msg: "unknown command"},
		{desc: "missing gate id", name: "start-gate", msg: "requires a gate id"},
		{desc: "blank item id", name: "use", args: []string{"  "}, msg: "requires an item id"},
		{desc: "unknown stat", name: "allocate", args: []string{"charisma"}, msg: "unknown stat"},
		{desc: "unknown slot", name: "unequip", args: []string{"boots"}, msg: "unknown slot"},
		{desc: "unknown kind", name: "buy", args: []string{"relic"}, msg: "unknown item kind"},
		{desc: "bad amount", name: "quest", args: []string{"quest_1", "lots"}, msg: "invalid amount"},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			cmd, err := game.ParseCommand(tc.name, tc.args)
			s.Require().Error(err)
			s.Nil(cmd)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.msg)
		})
	}
}

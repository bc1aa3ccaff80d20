package game_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-idle/internal/combat"
	"github.com/KirkDiggler/rpg-idle/internal/engine"
	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-idle/internal/testutils"
	"github.com/KirkDiggler/rpg-idle/internal/testutils/builders"
)

type ReducerTestSuite struct {
	suite.Suite
	engine  engine.Engine
	reducer *game.Reducer
}

func (s *ReducerTestSuite) SetupTest() {
	random := rng.NewSeeded(42)

	var err error
	s.engine, err = engine.New(&engine.Config{
		Balance:     engine.DefaultBalance(),
		Random:      random,
		IDGenerator: idgen.NewSequential(""),
	})
	s.Require().NoError(err)

	resolver, err := combat.New(&combat.Config{Engine: s.engine, Random: random})
	s.Require().NoError(err)

	s.reducer, err = game.NewReducer(&game.ReducerConfig{Engine: s.engine, Resolver: resolver})
	s.Require().NoError(err)
}

func (s *ReducerTestSuite) apply(state game.State, cmd game.Command) (game.State, []game.Event) {
	s.T().Helper()
	return s.reducer.Apply(state, cmd)
}

func (s *ReducerTestSuite) requireRejected(events []game.Event) {
	s.T().Helper()
	s.Require().Len(events, 1)
	s.Equal(game.EventRejected, events[0].Type, events[0].Message)
}

func (s *ReducerTestSuite) requireType(events []game.Event, eventType game.EventType) game.Event {
	s.T().Helper()
	for _, ev := range events {
		if ev.Type == eventType {
			return ev
		}
	}
	s.Failf("missing event", "no %s event in %v", eventType, events)
	return game.Event{}
}

// fight starts the first gate and ticks until the session ends
func (s *ReducerTestSuite) fight(state game.State) (game.State, []game.Event) {
	s.T().Helper()
	state, events := s.apply(state, game.StartGate{GateID: state.Game.Gates[0].ID})
	s.Require().NotNil(state.Combat)

	var all []game.Event
	all = append(all, events...)
	for range 200 {
		state, events = s.apply(state, game.ResolveTick{})
		all = append(all, events...)
		if state.Combat.Terminal() {
			return state, all
		}
	}
	s.FailNow("fight did not end")
	return state, all
}

func (s *ReducerTestSuite) TestNewReducerRequiresDependencies() {
	_, err := game.NewReducer(nil)
	s.Error(err)

	_, err = game.NewReducer(&game.ReducerConfig{Engine: s.engine})
	s.Error(err)
}

func (s *ReducerTestSuite) TestApplyDoesNotModifyInput() {
	original := game.State{Game: testutils.CreateTestGameStateWithProgress(testutils.StageWounded)}
	before := original.Game.Clone()

	next, events := s.apply(original, game.Rest{})

	s.Require().Len(events, 1)
	s.Equal(game.EventLog, events[0].Type)
	s.Equal(before, original.Game)
	s.NotEqual(before.Player.HP, next.Game.Player.HP)
}

func (s *ReducerTestSuite) TestApplyWithoutGame() {
	_, events := s.apply(game.State{}, game.Rest{})
	s.requireRejected(events)
}

func (s *ReducerTestSuite) TestStartGate() {
	state := game.State{Game: testutils.CreateTestGameState()}

	s.Run("unknown gate is rejected", func() {
		next, events := s.apply(state, game.StartGate{GateID: "gate_missing"})
		s.requireRejected(events)
		s.Nil(next.Combat)
	})

	s.Run("enters combat with a fresh boss", func() {
		next, events := s.apply(state, game.StartGate{GateID: "gate_2"})
		s.Require().Len(events, 1)
		s.Require().NotNil(next.Combat)
		s.Equal(combat.StateInCombat, next.Combat.State)
		s.Equal("gate_2", next.Combat.Gate.ID)
		s.Equal(next.Combat.Gate.Boss.MaxHP, next.Combat.EnemyHP)
	})

	s.Run("second start while fighting is a no-op", func() {
		fighting, _ := s.apply(state, game.StartGate{GateID: "gate_1"})
		next, events := s.apply(fighting, game.StartGate{GateID: "gate_2"})
		s.requireRejected(events)
		s.Contains(events[0].Message, "already fighting")
		s.Equal("gate_1", next.Combat.Gate.ID)
	})
}

func (s *ReducerTestSuite) TestSessionBlocksOtherCommands() {
	state := game.State{Game: testutils.CreateTestGameStateWithProgress(testutils.StageGeared)}
	state.Game.Player.StatPoints = 2
	fighting, _ := s.apply(state, game.StartGate{GateID: "gate_1"})

	blocked := []game.Command{
		game.Rest{},
		game.AllocateStat{Stat: idle.StatSTR},
		game.Equip{ItemID: "item_sword"},
		game.Unequip{Slot: idle.SlotAccessory},
		game.BuyItem{Kind: idle.ItemPotion},
		game.SellItem{ItemID: "item_sword"},
		game.RefreshGates{},
		game.ProgressDailyQuest{QuestID: "quest_1"},
		game.ForfeitDaily{},
		game.AdvanceDay{},
	}
	for _, cmd := range blocked {
		s.Run(cmd.Name(), func() {
			next, events := s.apply(fighting, cmd)
			s.requireRejected(events)
			s.Equal(fighting.Game, next.Game)
		})
	}

	s.Run("potions still work", func() {
		wounded := fighting.Clone()
		wounded.Game.Player.HP = 20
		next, events := s.apply(wounded, game.UseItem{ItemID: "item_potion"})
		s.Require().Len(events, 1)
		s.Equal(game.EventLog, events[0].Type)
		s.Equal(60, next.Game.Player.HP)
	})
}

func (s *ReducerTestSuite) TestResolveTick() {
	s.Run("outside a fight is rejected", func() {
		_, events := s.apply(game.State{Game: testutils.CreateTestGameState()}, game.ResolveTick{})
		s.requireRejected(events)
	})

	s.Run("fight ends in victory and keeps the result", func() {
		state, events := s.fight(game.State{Game: testutils.CreateTestGameState()})

		s.Equal(combat.StateVictory, state.Combat.State)
		s.requireType(events, game.EventDamage)
		victory := s.requireType(events, game.EventVictory)
		s.Contains(victory.Message, state.Combat.Gate.Name)

		_, stillThere := idle.FindGate(state.Game.Gates, state.Combat.Gate.ID)
		s.False(stillThere)
		s.GreaterOrEqual(len(state.Game.Gates), 3)
		s.Greater(state.Game.Gold, 100)
		s.Equal(state.Combat.Victory.Gold+100, state.Game.Gold)

		bound := len(state.Game.Player.Allies) > 0
		if bound {
			s.requireType(events, game.EventAllyBound)
		} else {
			s.requireType(events, game.EventBindingFailed)
		}
	})

	s.Run("ticking a finished fight changes nothing", func() {
		state, _ := s.fight(game.State{Game: testutils.CreateTestGameState()})

		next, events := s.apply(state, game.ResolveTick{})
		s.Require().Len(events, 1)
		s.Equal(game.EventLog, events[0].Type)
		s.Equal(state.Game, next.Game)
		s.Equal(state.Combat.Ticks, next.Combat.Ticks)
	})

	s.Run("invariants hold every tick", func() {
		state := game.State{Game: testutils.CreateTestGameStateWithProgress(testutils.StageWounded)}
		state.Game.Gates[0] = builders.Gate("gate_c", idle.RankC)
		state, _ = s.apply(state, game.StartGate{GateID: state.Game.Gates[0].ID})

		for range 200 {
			var events []game.Event
			state, events = s.apply(state, game.ResolveTick{})
			p := state.Game.Player
			s.Require().NoError(state.Game.Validate(3), "events %v", events)
			s.GreaterOrEqual(s.engine.Power(&p), 1)
			if state.Combat.Terminal() {
				break
			}
		}
		s.True(state.Combat.Terminal())
	})
}

func (s *ReducerTestSuite) TestDefeatEvents() {
	state := game.State{Game: testutils.CreateTestGameStateWithProgress(testutils.StageWounded)}
	state.Game.Player.HP = 1
	gate := state.Game.Gates[0]
	gate.Boss.Atk = 100
	gate.Boss.MaxHP = 10000
	state.Game.Gates[0] = gate

	state, _ = s.apply(state, game.StartGate{GateID: gate.ID})
	state, events := s.apply(state, game.ResolveTick{})

	s.Equal(combat.StateDefeat, state.Combat.State)
	defeat := s.requireType(events, game.EventDefeat)
	s.Contains(defeat.Message, "Lost 5 gold")
	s.Equal(0, state.Game.Gold)
	s.Equal(20, state.Game.Player.HP)
}

func (s *ReducerTestSuite) TestDismissAndAbandon() {
	state := game.State{Game: testutils.CreateTestGameState()}

	s.Run("nothing to dismiss", func() {
		_, events := s.apply(state, game.DismissResult{})
		s.requireRejected(events)
	})

	s.Run("cannot dismiss a running fight", func() {
		fighting, _ := s.apply(state, game.StartGate{GateID: "gate_1"})
		next, events := s.apply(fighting, game.DismissResult{})
		s.requireRejected(events)
		s.NotNil(next.Combat)
	})

	s.Run("dismiss returns to idle", func() {
		finished, _ := s.fight(state)
		next, events := s.apply(finished, game.DismissResult{})
		s.Require().Len(events, 1)
		s.Nil(next.Combat)
		s.Equal(finished.Game, next.Game)
	})

	s.Run("abandon discards the session without side effects", func() {
		fighting, _ := s.apply(state, game.StartGate{GateID: "gate_1"})
		fighting, _ = s.apply(fighting, game.ResolveTick{})
		s.Require().False(fighting.Combat.Terminal())

		next, events := s.apply(fighting, game.AbandonGate{})
		s.Require().Len(events, 1)
		s.Equal(game.EventLog, events[0].Type)
		s.Nil(next.Combat)
		s.Equal(fighting.Game, next.Game)
		_, ok := idle.FindGate(next.Game.Gates, "gate_1")
		s.True(ok)
	})

	s.Run("abandon outside a fight is rejected", func() {
		_, events := s.apply(state, game.AbandonGate{})
		s.requireRejected(events)
	})
}

func (s *ReducerTestSuite) TestRest() {
	s.Run("recovers fatigue hp and mp", func() {
		state := game.State{Game: testutils.CreateTestGameStateWithProgress(testutils.StageWounded)}
		next, events := s.apply(state, game.Rest{})

		s.Require().Len(events, 1)
		p := next.Game.Player
		s.Equal(40, p.HP)
		s.Equal(15, p.MP)
		s.InDelta(50.0, p.Fatigue, 0.0001)
	})

	s.Run("clamps at the caps", func() {
		state := game.State{Game: testutils.CreateTestGameState()}
		state.Game.Player.HP = 95
		state.Game.Player.Fatigue = 10
		next, _ := s.apply(state, game.Rest{})

		s.Equal(100, next.Game.Player.HP)
		s.Equal(50, next.Game.Player.MP)
		s.Zero(next.Game.Player.Fatigue)
	})

	s.Run("fully rested is a no-op", func() {
		_, events := s.apply(game.State{Game: testutils.CreateTestGameState()}, game.Rest{})
		s.requireRejected(events)
	})
}

func (s *ReducerTestSuite) TestAllocateStat() {
	veteran := game.State{Game: testutils.CreateTestGameStateWithProgress(testutils.StageVeteran)}

	s.Run("spends a point", func() {
		next, events := s.apply(veteran, game.AllocateStat{Stat: idle.StatSTR})
		s.Require().Len(events, 1)
		s.Equal(21, next.Game.Player.Stats.STR)
		s.Equal(2, next.Game.Player.StatPoints)
	})

	s.Run("unknown stat is rejected", func() {
		_, events := s.apply(veteran, game.AllocateStat{Stat: "CHA"})
		s.requireRejected(events)
	})

	s.Run("no points is rejected", func() {
		_, events := s.apply(game.State{Game: testutils.CreateTestGameState()}, game.AllocateStat{Stat: idle.StatAGI})
		s.requireRejected(events)
	})
}

func (s *ReducerTestSuite) TestUseItem() {
	geared := game.State{Game: testutils.CreateTestGameStateWithProgress(testutils.StageGeared)}

	s.Run("potion at full hp is rejected", func() {
		next, events := s.apply(geared, game.UseItem{ItemID: "item_potion"})
		s.requireRejected(events)
		_, ok := next.Game.Player.FindItem("item_potion")
		s.True(ok)
	})

	s.Run("potion heals and is consumed", func() {
		wounded := geared.Clone()
		wounded.Game.Player.HP = 70
		next, _ := s.apply(wounded, game.UseItem{ItemID: "item_potion"})
		s.Equal(100, next.Game.Player.HP)
		_, ok := next.Game.Player.FindItem("item_potion")
		s.False(ok)
	})

	s.Run("rune raises its stat", func() {
		next, events := s.apply(geared, game.UseItem{ItemID: "item_rune"})
		s.Require().Len(events, 1)
		s.Equal(7, next.Game.Player.Stats.STR)
		s.Len(next.Game.Player.Inventory, 2)
	})

	s.Run("equipment must be equipped", func() {
		_, events := s.apply(geared, game.UseItem{ItemID: "item_sword"})
		s.requireRejected(events)
	})

	s.Run("missing item", func() {
		_, events := s.apply(geared, game.UseItem{ItemID: "item_none"})
		s.requireRejected(events)
	})
}

func (s *ReducerTestSuite) TestEquipment() {
	geared := game.State{Game: testutils.CreateTestGameStateWithProgress(testutils.StageGeared)}
	basePower := s.engine.Power(&geared.Game.Player)

	s.Run("equip moves the item into its slot", func() {
		next, events := s.apply(geared, game.Equip{ItemID: "item_sword"})
		s.Require().Len(events, 1)
		s.Require().NotNil(next.Game.Player.Equipped.Weapon)
		s.Equal("item_sword", next.Game.Player.Equipped.Weapon.ID)
		_, inBag := next.Game.Player.FindItem("item_sword")
		s.False(inBag)
		s.Equal(basePower+9, s.engine.Power(&next.Game.Player))
	})

	s.Run("equip swaps the previous item back", func() {
		withSecond := geared.Clone()
		withSecond.Game.Player.AddItem(testutils.CreateTestSword("item_sword2", 1))
		next, _ := s.apply(withSecond, game.Equip{ItemID: "item_sword"})
		next, events := s.apply(next, game.Equip{ItemID: "item_sword2"})

		s.Contains(events[0].Message, "returned to the bag")
		s.Equal("item_sword2", next.Game.Player.Equipped.Weapon.ID)
		_, ok := next.Game.Player.FindItem("item_sword")
		s.True(ok)
	})

	s.Run("non equipment cannot be equipped", func() {
		_, events := s.apply(geared, game.Equip{ItemID: "item_potion"})
		s.requireRejected(events)
	})

	s.Run("unequip returns the item", func() {
		next, _ := s.apply(geared, game.Unequip{Slot: idle.SlotAccessory})
		s.Nil(next.Game.Player.Equipped.Accessory)
		_, ok := next.Game.Player.FindItem("item_ring")
		s.True(ok)
	})

	s.Run("unequip an empty slot", func() {
		_, events := s.apply(geared, game.Unequip{Slot: idle.SlotArmor})
		s.requireRejected(events)
	})
}

func (s *ReducerTestSuite) TestShop() {
	s.Run("buy potion", func() {
		next, events := s.apply(game.State{Game: testutils.CreateTestGameState()}, game.BuyItem{Kind: idle.ItemPotion})
		s.Require().Len(events, 1)
		s.Equal(75, next.Game.Gold)
		s.Require().Len(next.Game.Player.Inventory, 1)
		s.Equal(idle.ItemPotion, next.Game.Player.Inventory[0].Kind)
		s.Equal(idle.RarityCommon, next.Game.Player.Inventory[0].Rarity)
	})

	s.Run("buy key is counted", func() {
		next, _ := s.apply(game.State{Game: testutils.CreateTestGameState()}, game.BuyItem{Kind: idle.ItemKey})
		s.Equal(40, next.Game.Gold)
		s.Equal(1, next.Game.Player.Keys)
		s.Empty(next.Game.Player.Inventory)
	})

	s.Run("insufficient gold", func() {
		state := game.State{Game: testutils.CreateTestGameStateWithProgress(testutils.StageWounded)}
		next, events := s.apply(state, game.BuyItem{Kind: idle.ItemPotion})
		s.requireRejected(events)
		s.Equal(5, next.Game.Gold)
	})

	s.Run("equipment is not sold", func() {
		_, events := s.apply(game.State{Game: testutils.CreateTestGameState()}, game.BuyItem{Kind: idle.ItemEquipment})
		s.requireRejected(events)
	})

	s.Run("sell", func() {
		geared := game.State{Game: testutils.CreateTestGameStateWithProgress(testutils.StageGeared)}
		next, _ := s.apply(geared, game.SellItem{ItemID: "item_sword"})
		s.Equal(125, next.Game.Gold)

		_, events := s.apply(geared, game.SellItem{ItemID: "item_ring"})
		s.requireRejected(events)
		s.Contains(events[0].Message, "unequip")

		_, events = s.apply(geared, game.SellItem{ItemID: "item_none"})
		s.requireRejected(events)
	})
}

func (s *ReducerTestSuite) TestRefreshGates() {
	s.Run("uses a key first", func() {
		geared := game.State{Game: testutils.CreateTestGameStateWithProgress(testutils.StageGeared)}
		next, _ := s.apply(geared, game.RefreshGates{})
		s.Zero(next.Game.Player.Keys)
		s.Equal(100, next.Game.Gold)
		s.GreaterOrEqual(len(next.Game.Gates), 3)
		s.NotEqual(geared.Game.Gates, next.Game.Gates)
	})

	s.Run("falls back to gold", func() {
		next, _ := s.apply(game.State{Game: testutils.CreateTestGameState()}, game.RefreshGates{})
		s.Equal(70, next.Game.Gold)
	})

	s.Run("no key and no gold", func() {
		state := game.State{Game: testutils.CreateTestGameStateWithProgress(testutils.StageWounded)}
		next, events := s.apply(state, game.RefreshGates{})
		s.requireRejected(events)
		s.Equal(state.Game.Gates, next.Game.Gates)
	})
}

func (s *ReducerTestSuite) TestDailyQuests() {
	state := game.State{Game: testutils.CreateTestGameState()}

	s.Run("default amount is the step", func() {
		next, events := s.apply(state, game.ProgressDailyQuest{QuestID: "quest_1"})
		s.Require().Len(events, 1)
		s.Equal(game.EventQuestProgress, events[0].Type)
		s.Equal(5, next.Game.Daily.Quests[0].Have)
	})

	s.Run("completing every quest completes the day", func() {
		next, events := s.apply(state, game.ProgressDailyQuest{QuestID: "quest_1", Amount: 100})
		s.requireType(events, game.EventQuestComplete)
		s.Equal(115, next.Game.Gold)
		s.Equal(30, next.Game.Player.Exp)

		next, events = s.apply(next, game.ProgressDailyQuest{QuestID: "quest_2", Amount: 4})
		s.requireType(events, game.EventQuestComplete)
		s.requireType(events, game.EventLevelUp)
		s.requireType(events, game.EventDailyComplete)
		s.Equal(1, next.Game.Player.Keys)
		s.Equal(2, next.Game.Player.Level)
		s.Equal(11, next.Game.Daily.Reputation)
		s.True(next.Game.Daily.Completed)

		_, events = s.apply(next, game.ProgressDailyQuest{QuestID: "quest_2"})
		s.requireRejected(events)
	})

	s.Run("unknown quest", func() {
		_, events := s.apply(state, game.ProgressDailyQuest{QuestID: "quest_9"})
		s.requireRejected(events)
	})

	s.Run("forfeit blocks progress", func() {
		reputable := state.Clone()
		reputable.Game.Daily.Reputation = 25

		next, events := s.apply(reputable, game.ForfeitDaily{})
		s.Require().Len(events, 1)
		s.Equal(15, next.Game.Daily.Reputation)
		s.True(next.Game.Daily.Forfeited)

		_, events = s.apply(next, game.ProgressDailyQuest{QuestID: "quest_1"})
		s.requireRejected(events)
		_, events = s.apply(next, game.ForfeitDaily{})
		s.requireRejected(events)
	})
}

func (s *ReducerTestSuite) TestDayRollover() {
	state := game.State{Game: testutils.CreateTestGameState()}
	state.Game.Daily.Reputation = 30

	s.Run("advance day", func() {
		next, events := s.apply(state, game.AdvanceDay{})
		s.Require().Len(events, 1)
		s.Equal(game.EventDayRollover, events[0].Type)
		s.Equal(2, next.Game.GameTime.Day)
		s.Equal("2026-10-18", next.Game.GameTime.Date)
		s.Len(next.Game.Daily.Quests, 5)
		s.Equal(30, next.Game.Daily.Reputation)
		s.False(next.Game.Daily.Completed)
	})

	s.Run("sync to a later date rolls over", func() {
		next, events := s.apply(state, game.SyncDate{Date: "2026-10-20"})
		s.Require().Len(events, 1)
		s.Equal(2, next.Game.GameTime.Day)
		s.Equal("2026-10-20", next.Game.Daily.Date)
	})

	s.Run("sync to the same or an earlier date is silent", func() {
		for _, date := range []string{testutils.TestStartDate, "2026-10-01"} {
			next, events := s.apply(state, game.SyncDate{Date: date})
			s.Empty(events)
			s.Equal(state.Game, next.Game)
		}
	})

	s.Run("sync with a bad date is rejected", func() {
		_, events := s.apply(state, game.SyncDate{Date: "tomorrow"})
		s.requireRejected(events)
	})

	s.Run("sync works mid fight", func() {
		fighting, _ := s.apply(state, game.StartGate{GateID: "gate_1"})
		next, events := s.apply(fighting, game.SyncDate{Date: "2026-10-18"})
		s.Require().Len(events, 1)
		s.NotNil(next.Combat)
		s.Equal(2, next.Game.GameTime.Day)
	})
}

func TestReducerTestSuite(t *testing.T) {
	suite.Run(t, new(ReducerTestSuite))
}

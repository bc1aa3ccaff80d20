package engine_test

import (
	"github.com/KirkDiggler/rpg-idle/internal/engine"
	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/rng"
)

func (s *EngineTestSuite) TestUnlockedDifficulties() {
	b := &engine.DefaultBalance().Quests
	testCases := []struct {
		name       string
		level      int
		reputation int
		want       []idle.Difficulty
	}{
		{"fresh player", 1, 0, []idle.Difficulty{idle.DifficultyEasy}},
		{"medium by level", 5, 0, []idle.Difficulty{idle.DifficultyEasy, idle.DifficultyMedium}},
		{"medium by reputation", 1, 20, []idle.Difficulty{idle.DifficultyEasy, idle.DifficultyMedium}},
		{"hard needs both", 12, 59, []idle.Difficulty{idle.DifficultyEasy, idle.DifficultyMedium}},
		{"hard unlocked", 12, 60, []idle.Difficulty{idle.DifficultyEasy, idle.DifficultyMedium, idle.DifficultyHard}},
		{"everything", 25, 150, idle.AllDifficulties()},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var got []idle.Difficulty
			for _, d := range engine.UnlockedDifficulties(b, tc.level, tc.reputation) {
				got = append(got, d.Difficulty)
			}
			s.Equal(tc.want, got)
		})
	}
}

func (s *EngineTestSuite) TestGenerateDaily() {
	s.Run("five easy quests at level one", func() {
		daily := s.engine.GenerateDaily(1, 7, "2026-10-17")
		s.Equal("2026-10-17", daily.Date)
		s.Equal(7, daily.Reputation)
		s.Require().Len(daily.Quests, 5)

		first := daily.Quests[0]
		s.Equal(idle.QuestPushups, first.Type)
		s.Equal(idle.DifficultyEasy, first.Difficulty)
		s.Equal(20, first.Need)
		s.Equal(5, first.Step)
		s.Equal(30, first.RewardExp)
		s.Equal(15, first.RewardGold)
		s.Nil(first.Bonus)
	})

	s.Run("scales with level and difficulty", func() {
		// type pushups, difficulty index 2 (hard)
		s.random.PushInts(0, 2)
		daily := s.engine.GenerateDaily(21, 100, "2026-10-17")
		q := daily.Quests[0]
		s.Equal(idle.DifficultyHard, q.Difficulty)
		s.Equal(88, q.Need)
		s.Equal(198, q.RewardExp)
		s.Equal(99, q.RewardGold)
		s.Require().NotNil(q.Bonus)
		s.Equal(1, q.Bonus.Keys)
	})

	s.Run("no immediate repeats", func() {
		e, err := engine.New(&engine.Config{
			Balance:     engine.DefaultBalance(),
			Random:      rng.NewSeeded(3),
			IDGenerator: idgen.NewSequential(""),
		})
		s.Require().NoError(err)
		for range 100 {
			daily := e.GenerateDaily(30, 200, "2026-10-17")
			s.Len(daily.Quests, 5)
			for i := 1; i < len(daily.Quests); i++ {
				s.NotEqual(daily.Quests[i-1].Type, daily.Quests[i].Type)
			}
		}
	})
}

func (s *EngineTestSuite) dailyState() *idle.GameState {
	state := s.engine.NewGameState("2026-10-17")
	state.Daily = idle.Daily{
		Date: "2026-10-17",
		Quests: []idle.DailyQuest{
			{ID: "quest_a", Type: idle.QuestPushups, Need: 10, Step: 5, RewardExp: 60, RewardGold: 20},
			{ID: "quest_b", Type: idle.QuestRunning, Need: 4, Step: 2, RewardExp: 50, RewardGold: 10,
				Bonus: &idle.BonusReward{Keys: 1, StatPoints: 1}},
		},
		Reputation: 3,
	}
	return state
}

func (s *EngineTestSuite) TestProgressQuest() {
	s.Run("default step and clamp at need", func() {
		state := s.dailyState()
		out := s.engine.ProgressQuest(state, "quest_a", 0)
		s.Empty(out.Rejected)
		s.Equal(5, out.Added)
		s.False(out.Completed)

		out = s.engine.ProgressQuest(state, "quest_a", 50)
		s.Equal(5, out.Added)
		s.True(out.Completed)
		s.Equal(10, state.Daily.Quests[0].Have)
		s.Equal(120, state.Gold)
		s.Equal(60, state.Player.Exp)
		s.False(out.DayComplete)
	})

	s.Run("bonus bundle and day completion", func() {
		state := s.dailyState()
		s.engine.ProgressQuest(state, "quest_a", 10)
		out := s.engine.ProgressQuest(state, "quest_b", 4)

		s.True(out.Completed)
		s.True(out.DayComplete)
		s.Equal(11, out.DayBonus)
		s.Equal(14, state.Daily.Reputation)
		s.True(state.Daily.Completed)
		s.Equal(1, state.Player.Keys)
		s.Require().NotNil(out.LevelGain)
		s.Equal(1, out.LevelGain.LevelsGained)
		// one stat point from the bundle plus five from the level-up
		s.Equal(6, state.Player.StatPoints)
	})

	s.Run("rejections change nothing", func() {
		state := s.dailyState()
		s.NotEmpty(s.engine.ProgressQuest(state, "missing", 1).Rejected)

		s.engine.ProgressQuest(state, "quest_a", 10)
		out := s.engine.ProgressQuest(state, "quest_a", 1)
		s.NotEmpty(out.Rejected)
		s.Equal(10, state.Daily.Quests[0].Have)
	})

	s.Run("forfeit blocks progress and costs reputation", func() {
		state := s.dailyState()
		lost, ok := s.engine.ForfeitDaily(state)
		s.True(ok)
		s.Equal(3, lost)
		s.Zero(state.Daily.Reputation)

		_, ok = s.engine.ForfeitDaily(state)
		s.False(ok)
		s.NotEmpty(s.engine.ProgressQuest(state, "quest_a", 1).Rejected)
	})
}

func (s *EngineTestSuite) TestRollOver() {
	state := s.dailyState()
	state.Daily.Quests[0].Have = 4
	state.Daily.Forfeited = true

	s.engine.RollOver(state, "2026-10-18")
	s.Equal(2, state.GameTime.Day)
	s.Equal("2026-10-18", state.GameTime.Date)
	s.Equal("2026-10-18", state.Daily.Date)
	s.Equal(3, state.Daily.Reputation)
	s.False(state.Daily.Forfeited)
	s.Len(state.Daily.Quests, 5)
	for _, q := range state.Daily.Quests {
		s.Zero(q.Have)
		s.False(q.Completed)
	}
}

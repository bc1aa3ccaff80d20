package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
)

// UnlockedDifficulties returns the difficulties available at level and reputation
func UnlockedDifficulties(b *QuestBalance, level, reputation int) []DifficultyBalance {
	var unlocked []DifficultyBalance
	for _, d := range b.Difficulties {
		levelOK := level >= d.MinLevel
		repOK := reputation >= d.MinReputation
		if (d.RequireBoth && levelOK && repOK) || (!d.RequireBoth && (levelOK || repOK)) {
			unlocked = append(unlocked, d)
		}
	}
	return unlocked
}

// GenerateDaily builds the quest set for date. Reputation is carried into the new set.
func (e *engine) GenerateDaily(level, reputation int, date string) idle.Daily {
	b := &e.balance.Quests
	difficulties := UnlockedDifficulties(b, level, reputation)
	if len(difficulties) == 0 {
		difficulties = b.Difficulties[:1]
	}

	daily := idle.Daily{
		Date:       date,
		Quests:     make([]idle.DailyQuest, 0, b.PerDay),
		Reputation: reputation,
	}

	prev := -1
	for range b.PerDay {
		t := e.random.IntRange(0, len(b.Types)-1)
		if t == prev && len(b.Types) > 1 {
			// shift into the remaining types so the draw stays uniform over them
			t = (prev + 1 + e.random.IntRange(0, len(b.Types)-2)) % len(b.Types)
		}
		prev = t

		d := difficulties[e.random.IntRange(0, len(difficulties)-1)]
		daily.Quests = append(daily.Quests, e.buildQuest(b.Types[t], d, level))
	}
	return daily
}

func (e *engine) buildQuest(qt QuestTypeBalance, d DifficultyBalance, level int) idle.DailyQuest {
	b := &e.balance.Quests
	levels := float64(max(0, level-1))
	needScale := d.Multiplier * (1 + levels*b.LevelNeedScale)
	rewardScale := d.Multiplier * (1 + levels*b.LevelRewardScale)

	quest := idle.DailyQuest{
		ID:         e.ids.quest.Generate(),
		Type:       qt.Type,
		Difficulty: d.Difficulty,
		Need:       max(1, int(math.Floor(float64(qt.BaseNeed)*needScale))),
		Step:       qt.Step,
		RewardExp:  int(math.Floor(float64(qt.BaseExp) * rewardScale)),
		RewardGold: int(math.Floor(float64(qt.BaseGold) * rewardScale)),
	}
	if d.Bonus != nil {
		bonus := *d.Bonus
		quest.Bonus = &bonus
	}
	return quest
}

// QuestProgressOutput describes the effect of progressing a quest. Rejected
// is set, and nothing changed, when progress was not possible.
type QuestProgressOutput struct {
	Rejected    string
	Quest       idle.DailyQuest
	Added       int
	Completed   bool
	LevelGain   *LevelGainOutput
	DayBonus    int
	DayComplete bool
}

// ProgressQuest adds amount to the quest, or the quest's step when amount is
// not positive. A quest reaching its target grants its reward immediately;
// completing the whole set grants the reputation bonus.
func (e *engine) ProgressQuest(state *idle.GameState, questID string, amount int) *QuestProgressOutput {
	daily := &state.Daily
	if daily.Forfeited {
		return &QuestProgressOutput{Rejected: "today's quests were forfeited"}
	}
	i, ok := daily.FindQuest(questID)
	if !ok {
		return &QuestProgressOutput{Rejected: "no quest " + questID}
	}
	q := &daily.Quests[i]
	if q.Completed {
		return &QuestProgressOutput{Rejected: "quest already completed", Quest: *q}
	}

	if amount <= 0 {
		amount = max(1, q.Step)
	}
	before := q.Have
	q.Have = min(q.Need, q.Have+amount)
	out := &QuestProgressOutput{Added: q.Have - before}

	if q.Have >= q.Need {
		q.Completed = true
		out.Completed = true
		state.AddGold(q.RewardGold)
		if q.Bonus != nil {
			state.Player.Keys += q.Bonus.Keys
			state.Player.StatPoints += q.Bonus.StatPoints
		}
		daily.ExpAwarded += q.RewardExp
		out.LevelGain = e.ApplyLevelGain(state, q.RewardExp)

		if !daily.Completed && daily.AllCompleted() {
			daily.Completed = true
			out.DayComplete = true
			out.DayBonus = daily.ExpAwarded / e.balance.Quests.ReputationDivisor
			daily.Reputation += out.DayBonus
		}
	}
	out.Quest = *q
	return out
}

// ForfeitDaily gives up the day's remaining quests for a reputation penalty.
// It returns the reputation lost, or false when the day is already settled.
func (e *engine) ForfeitDaily(state *idle.GameState) (int, bool) {
	daily := &state.Daily
	if daily.Forfeited || daily.Completed {
		return 0, false
	}
	before := daily.Reputation
	daily.Forfeited = true
	daily.Reputation = max(0, daily.Reputation-e.balance.Quests.ForfeitPenalty)
	return before - daily.Reputation, true
}

// RollOver advances the game to the next day: the counter moves on, the
// quest set is fully replaced and reputation persists.
func (e *engine) RollOver(state *idle.GameState, date string) {
	state.GameTime.Day++
	state.GameTime.Date = date
	state.Daily = e.GenerateDaily(state.Player.Level, state.Daily.Reputation, date)
}

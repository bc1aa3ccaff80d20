package idle

import "slices"

// BonusReward is the optional extra bundle on harder quests
type BonusReward struct {
	Keys       int `json:"keys,omitempty" yaml:"keys,omitempty"`
	StatPoints int `json:"statPoints,omitempty" yaml:"statPoints,omitempty"`
}

// DailyQuest is a single objective in the day's set. Have never exceeds Need.
type DailyQuest struct {
	ID         string       `json:"id"`
	Type       QuestType    `json:"type"`
	Difficulty Difficulty   `json:"difficulty"`
	Have       int          `json:"have"`
	Need       int          `json:"need"`
	Step       int          `json:"step"`
	RewardExp  int          `json:"rewardExp"`
	RewardGold int          `json:"rewardGold"`
	Bonus      *BonusReward `json:"bonus,omitempty"`
	Completed  bool         `json:"completed"`
}

// Daily is the day's quest set plus the reputation carried across days
type Daily struct {
	Date       string       `json:"date"`
	Quests     []DailyQuest `json:"quests"`
	Completed  bool         `json:"completed"`
	Forfeited  bool         `json:"forfeited"`
	ExpAwarded int          `json:"expAwarded"`
	Reputation int          `json:"reputation"`
}

// FindQuest returns the index of the quest with id
func (d *Daily) FindQuest(id string) (int, bool) {
	for i, q := range d.Quests {
		if q.ID == id {
			return i, true
		}
	}
	return -1, false
}

// AllCompleted reports whether every quest of the day is complete
func (d *Daily) AllCompleted() bool {
	if len(d.Quests) == 0 {
		return false
	}
	for _, q := range d.Quests {
		if !q.Completed {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the daily set
func (d Daily) Clone() Daily {
	out := d
	out.Quests = slices.Clone(d.Quests)
	for i, q := range out.Quests {
		if q.Bonus != nil {
			b := *q.Bonus
			out.Quests[i].Bonus = &b
		}
	}
	return out
}

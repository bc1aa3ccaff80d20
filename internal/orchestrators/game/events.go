package game

import "fmt"

// EventType classifies an emitted event
type EventType string

// Event types
const (
	EventLog           EventType = "log"
	EventRejected      EventType = "rejected"
	EventDamage        EventType = "damage"
	EventVictory       EventType = "victory"
	EventDefeat        EventType = "defeat"
	EventLoot          EventType = "loot"
	EventAllyBound     EventType = "ally_bound"
	EventBindingFailed EventType = "binding_failed"
	EventLevelUp       EventType = "level_up"
	EventQuestProgress EventType = "quest_progress"
	EventQuestComplete EventType = "quest_complete"
	EventDailyComplete EventType = "daily_complete"
	EventDayRollover   EventType = "day_rollover"
)

// AllEventTypes lists every event type in declaration order
func AllEventTypes() []EventType {
	return []EventType{
		EventLog, EventRejected, EventDamage, EventVictory, EventDefeat, EventLoot,
		EventAllyBound, EventBindingFailed, EventLevelUp, EventQuestProgress,
		EventQuestComplete, EventDailyComplete, EventDayRollover,
	}
}

// Topic is the event bus topic events of this type are published on
func (t EventType) Topic() string {
	return "idle." + string(t)
}

// Event is a single user-visible outcome of a command
type Event struct {
	Type    EventType
	Message string
}

// String returns the log line
func (e Event) String() string {
	return e.Message
}

func newEvent(t EventType, format string, args ...any) Event {
	return Event{Type: t, Message: fmt.Sprintf(format, args...)}
}

func logf(format string, args ...any) Event {
	return newEvent(EventLog, format, args...)
}

func rejectf(format string, args ...any) Event {
	return newEvent(EventRejected, format, args...)
}

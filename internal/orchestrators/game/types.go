package game

import (
	"github.com/KirkDiggler/rpg-idle/internal/combat"
	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
)

// NewGameInput defines the request for starting over in a slot
type NewGameInput struct {
	SlotID string
}

// NewGameOutput defines the response for starting over
type NewGameOutput struct {
	State *idle.GameState
}

// LoadGameInput defines the request for loading a slot
type LoadGameInput struct {
	SlotID string
}

// LoadGameOutput defines the response for loading a slot. Fresh is set
// when nothing usable was stored and a new game was started instead;
// Corrupted additionally marks that a stored save had to be discarded.
type LoadGameOutput struct {
	State     *idle.GameState
	Fresh     bool
	Corrupted bool
	Events    []Event
}

// DispatchInput defines the request for applying a command
type DispatchInput struct {
	SlotID  string
	Command Command
}

// DispatchOutput defines the response for applying a command
type DispatchOutput struct {
	State  *idle.GameState
	Combat *combat.Session
	Events []Event
}

// SaveGameInput defines the request for persisting a slot
type SaveGameInput struct {
	SlotID string
}

// SaveGameOutput defines the response for persisting a slot
type SaveGameOutput struct {
	Bytes int
}

// GetStateInput defines the request for reading a slot
type GetStateInput struct {
	SlotID string
}

// GetStateOutput is a snapshot of a loaded slot
type GetStateOutput struct {
	State  *idle.GameState
	Combat *combat.Session
	Power  int
}

// CloseGameInput defines the request for unloading a slot
type CloseGameInput struct {
	SlotID string
	Save   bool
}

// CloseGameOutput defines the response for unloading a slot
type CloseGameOutput struct {
	Saved bool
}

// DeleteGameInput defines the request for erasing a slot
type DeleteGameInput struct {
	SlotID string
}

// DeleteGameOutput defines the response for erasing a slot
type DeleteGameOutput struct {
	Deleted bool
}

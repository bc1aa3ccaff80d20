// Package savegame persists serialized game state by save slot. The store is
// a plain key-value contract: save a JSON blob, load it back, or report it
// absent. Blobs that cannot be decoded or that break the state invariants are
// reported as CorruptSave so callers can fall back to a fresh game.
package savegame

import (
	"context"

	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=savegamemock github.com/KirkDiggler/rpg-idle/internal/repositories/savegame Repository

const (
	// Key pattern: savegame:{slot_id}
	keyPrefix = "savegame:"

	errSlotIDEmpty = "slot ID cannot be empty"
	errStateNil    = "state cannot be nil"
)

// SaveInput contains the state to persist
type SaveInput struct {
	SlotID string
	State  *idle.GameState
}

// SaveOutput contains the result of a save
type SaveOutput struct {
	Bytes int
}

// LoadInput identifies the slot to load
type LoadInput struct {
	SlotID string
}

// LoadOutput contains the decoded state
type LoadOutput struct {
	State *idle.GameState
}

// DeleteInput identifies the slot to delete
type DeleteInput struct {
	SlotID string
}

// DeleteOutput reports whether anything was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the save slot storage operations
type Repository interface {
	// Save serializes and stores the state, replacing any previous save
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Load returns the stored state. Absent slots return NotFound, malformed
	// saves return CorruptSave.
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Delete removes the slot
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

func slotKey(slotID string) string {
	return keyPrefix + slotID
}

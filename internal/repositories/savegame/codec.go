package savegame

import (
	"bytes"
	"encoding/json"

	"github.com/KirkDiggler/rpg-idle/internal/entities/idle"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// DefaultMinPoolSize is the smallest gate pool a valid save may hold
const DefaultMinPoolSize = 3

// Codec converts game state to and from the persisted JSON document
// {player, gates, gold, gameTime, daily}
type Codec struct {
	minPoolSize int
}

// NewCodec creates a codec that validates pools against minPoolSize
func NewCodec(minPoolSize int) *Codec {
	if minPoolSize <= 0 {
		minPoolSize = DefaultMinPoolSize
	}
	return &Codec{minPoolSize: minPoolSize}
}

// Encode serializes state
func (c *Codec) Encode(state *idle.GameState) ([]byte, error) {
	if state == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	data, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal game state")
	}
	return data, nil
}

// Decode parses and validates a persisted document. Any failure is a CorruptSave.
func (c *Codec) Decode(data []byte) (*idle.GameState, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.CorruptSave("save is empty")
	}

	var state idle.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCorruptSave, "failed to decode save")
	}
	if err := state.Validate(c.minPoolSize); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCorruptSave, "save violates state invariants")
	}
	return &state, nil
}

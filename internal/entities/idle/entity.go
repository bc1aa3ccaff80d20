package idle

import "github.com/KirkDiggler/rpg-toolkit/core"

// Entity types used as event sources and targets
const (
	EntityTypePlayer = "player"
	EntityTypeGate   = "gate"
)

// PlayerEntity identifies the player of a save slot
type PlayerEntity struct {
	SlotID string
}

// GetID returns the save slot the player lives in
func (p *PlayerEntity) GetID() string { return p.SlotID }

// GetType returns the entity type
func (p *PlayerEntity) GetType() string { return EntityTypePlayer }

// GetID returns the gate id
func (g *Gate) GetID() string { return g.ID }

// GetType returns the entity type
func (g *Gate) GetType() string { return EntityTypeGate }

var (
	_ core.Entity = (*PlayerEntity)(nil)
	_ core.Entity = (*Gate)(nil)
)

package idle

import "slices"

// Ally is a spirit bound after a victory. Allies add their power to the
// player and cost MP upkeep every combat tick. They are never lost.
type Ally struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Power     int      `json:"power"`
	Rarity    Rarity   `json:"rarity"`
	Role      AllyRole `json:"role"`
	Abilities []string `json:"abilities"`
	Level     int      `json:"level"`
	Exp       int      `json:"exp"`
	ExpNext   int      `json:"expNext"`
}

// Clone returns a deep copy of the ally
func (a Ally) Clone() Ally {
	out := a
	out.Abilities = slices.Clone(a.Abilities)
	return out
}

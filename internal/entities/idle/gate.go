package idle

// Boss guards a gate. Its stats derive from the gate rank and only HP
// changes, and only inside a combat snapshot.
type Boss struct {
	Name  string `json:"name"`
	MaxHP int    `json:"maxHp"`
	HP    int    `json:"hp"`
	Atk   int    `json:"atk"`
	Def   int    `json:"def"`
}

// Gate is an encounter node in the pool
type Gate struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Rank             Rank   `json:"rank"`
	RecommendedPower int    `json:"recommendedPower"`
	Power            int    `json:"power"`
	Boss             Boss   `json:"boss"`
}

// FindGate returns the index of the gate with id
func FindGate(gates []Gate, id string) (int, bool) {
	for i, gate := range gates {
		if gate.ID == id {
			return i, true
		}
	}
	return -1, false
}

// RemoveGate returns gates without the gate with id
func RemoveGate(gates []Gate, id string) []Gate {
	out := make([]Gate, 0, len(gates))
	for _, gate := range gates {
		if gate.ID != id {
			out = append(out, gate)
		}
	}
	return out
}

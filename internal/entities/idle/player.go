package idle

// MaxFatigue caps the fatigue meter
const MaxFatigue = 100.0

// Stats holds the five allocatable stats
type Stats struct {
	STR  int `json:"STR"`
	AGI  int `json:"AGI"`
	INT  int `json:"INT"`
	VIT  int `json:"VIT"`
	LUCK int `json:"LUCK"`
}

// Get returns the value of stat
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatSTR:
		return s.STR
	case StatAGI:
		return s.AGI
	case StatINT:
		return s.INT
	case StatVIT:
		return s.VIT
	case StatLUCK:
		return s.LUCK
	default:
		return 0
	}
}

// Add raises stat by n, never dropping below zero
func (s *Stats) Add(stat Stat, n int) {
	switch stat {
	case StatSTR:
		s.STR = max(0, s.STR+n)
	case StatAGI:
		s.AGI = max(0, s.AGI+n)
	case StatINT:
		s.INT = max(0, s.INT+n)
	case StatVIT:
		s.VIT = max(0, s.VIT+n)
	case StatLUCK:
		s.LUCK = max(0, s.LUCK+n)
	}
}

// Player is the character the game revolves around. It is owned by
// GameState and only mutated through engine operations.
type Player struct {
	Level      int       `json:"level"`
	Exp        int       `json:"exp"`
	ExpNext    int       `json:"expNext"`
	HP         int       `json:"hp"`
	MaxHP      int       `json:"maxHp"`
	MP         int       `json:"mp"`
	MaxMP      int       `json:"maxMp"`
	Fatigue    float64   `json:"fatigue"`
	StatPoints int       `json:"statPoints"`
	Stats      Stats     `json:"stats"`
	Allies     []Ally    `json:"allies"`
	Inventory  []Item    `json:"inventory"`
	Equipped   Equipment `json:"equipped"`
	Keys       int       `json:"keys"`
}

// EffectiveStats returns base stats plus bonuses of equipped items
func (p *Player) EffectiveStats() Stats {
	stats := p.Stats
	for _, item := range p.Equipped.Items() {
		for stat, bonus := range item.StatBonuses() {
			stats.Add(stat, bonus)
		}
	}
	return stats
}

// AllyPower sums the power of every bound ally
func (p *Player) AllyPower() int {
	total := 0
	for _, ally := range p.Allies {
		total += ally.Power
	}
	return total
}

// SetHP assigns hp clamped to [0, MaxHP]
func (p *Player) SetHP(hp int) {
	p.HP = clampInt(hp, 0, p.MaxHP)
}

// SetMP assigns mp clamped to [0, MaxMP]
func (p *Player) SetMP(mp int) {
	p.MP = clampInt(mp, 0, p.MaxMP)
}

// SetFatigue assigns fatigue clamped to [0, MaxFatigue]
func (p *Player) SetFatigue(f float64) {
	switch {
	case f < 0:
		p.Fatigue = 0
	case f > MaxFatigue:
		p.Fatigue = MaxFatigue
	default:
		p.Fatigue = f
	}
}

// FindItem returns the inventory index of the item with id
func (p *Player) FindItem(id string) (int, bool) {
	for i, item := range p.Inventory {
		if item.ID == id {
			return i, true
		}
	}
	return -1, false
}

// RemoveItem takes the item with id out of the inventory
func (p *Player) RemoveItem(id string) (Item, bool) {
	i, ok := p.FindItem(id)
	if !ok {
		return Item{}, false
	}
	item := p.Inventory[i]
	p.Inventory = append(p.Inventory[:i:i], p.Inventory[i+1:]...)
	return item, true
}

// AddItem stores an item. Keys are counted rather than stored.
func (p *Player) AddItem(item Item) {
	if item.Kind == ItemKey {
		p.Keys++
		return
	}
	p.Inventory = append(p.Inventory, item)
}

// Clone returns a deep copy of the player
func (p Player) Clone() Player {
	out := p
	if p.Allies != nil {
		out.Allies = make([]Ally, len(p.Allies))
		for i, ally := range p.Allies {
			out.Allies[i] = ally.Clone()
		}
	}
	if p.Inventory != nil {
		out.Inventory = make([]Item, len(p.Inventory))
		for i, item := range p.Inventory {
			out.Inventory[i] = item.Clone()
		}
	}
	out.Equipped = p.Equipped.Clone()
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

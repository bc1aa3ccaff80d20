package idle

import "github.com/KirkDiggler/rpg-idle/internal/errors"

// PotionEffect restores hit points when consumed
type PotionEffect struct {
	Heal int `json:"heal"`
}

// RuneEffect permanently raises a stat when consumed
type RuneEffect struct {
	Stat  Stat `json:"stat"`
	Bonus int  `json:"bonus"`
}

// EquipmentEffect raises a primary stat while the item is equipped
type EquipmentEffect struct {
	Slot  Slot `json:"slot"`
	Stat  Stat `json:"stat"`
	Bonus int  `json:"bonus"`
}

// Item is a tagged variant: exactly the payload matching Kind is set.
// The variant is decided when the item is created and never re-derived
// from its display name.
type Item struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Kind      ItemKind         `json:"kind"`
	Rarity    Rarity           `json:"rarity"`
	Quality   int              `json:"quality"`
	SellValue int              `json:"sellValue"`
	Potion    *PotionEffect    `json:"potion,omitempty"`
	Rune      *RuneEffect      `json:"rune,omitempty"`
	Equipment *EquipmentEffect `json:"equipment,omitempty"`
}

// MinQuality and MaxQuality bound item quality
const (
	MinQuality = 1
	MaxQuality = 100
)

// ItemBase carries the fields common to every variant
type ItemBase struct {
	ID        string
	Name      string
	Rarity    Rarity
	Quality   int
	SellValue int
}

func (b ItemBase) item(kind ItemKind) Item {
	return Item{
		ID:        b.ID,
		Name:      b.Name,
		Kind:      kind,
		Rarity:    b.Rarity,
		Quality:   clampInt(b.Quality, MinQuality, MaxQuality),
		SellValue: max(0, b.SellValue),
	}
}

// NewPotion creates a potion item
func NewPotion(base ItemBase, heal int) Item {
	item := base.item(ItemPotion)
	item.Potion = &PotionEffect{Heal: max(1, heal)}
	return item
}

// NewRune creates a rune item
func NewRune(base ItemBase, stat Stat, bonus int) Item {
	item := base.item(ItemRune)
	item.Rune = &RuneEffect{Stat: stat, Bonus: max(1, bonus)}
	return item
}

// NewKey creates a gate key item
func NewKey(base ItemBase) Item {
	return base.item(ItemKey)
}

// NewEquipment creates an equipment item for slot boosting stat
func NewEquipment(base ItemBase, slot Slot, stat Stat, bonus int) Item {
	item := base.item(ItemEquipment)
	item.Equipment = &EquipmentEffect{Slot: slot, Stat: stat, Bonus: max(1, bonus)}
	return item
}

// IsConsumable reports whether the item is used up by useItem
func (i Item) IsConsumable() bool {
	return i.Kind == ItemPotion || i.Kind == ItemRune
}

// StatBonuses returns the stat bonuses the item grants while equipped
func (i Item) StatBonuses() map[Stat]int {
	if i.Equipment == nil {
		return nil
	}
	return map[Stat]int{i.Equipment.Stat: i.Equipment.Bonus}
}

// Validate checks that the payload matches the kind
func (i Item) Validate() error {
	if i.ID == "" {
		return errors.InvalidArgumentf("item has no id")
	}
	if i.Quality < MinQuality || i.Quality > MaxQuality {
		return errors.InvalidArgumentf("item %s quality %d out of range", i.ID, i.Quality)
	}
	if !i.Rarity.IsValid() {
		return errors.InvalidArgumentf("item %s has invalid rarity", i.ID)
	}

	payloads := 0
	for _, set := range []bool{i.Potion != nil, i.Rune != nil, i.Equipment != nil} {
		if set {
			payloads++
		}
	}

	switch i.Kind {
	case ItemPotion:
		if i.Potion == nil || payloads != 1 {
			return errors.InvalidArgumentf("potion %s must carry only a potion effect", i.ID)
		}
	case ItemRune:
		if i.Rune == nil || payloads != 1 || !i.Rune.Stat.IsValid() {
			return errors.InvalidArgumentf("rune %s must carry only a valid rune effect", i.ID)
		}
	case ItemEquipment:
		if i.Equipment == nil || payloads != 1 || !i.Equipment.Slot.IsValid() || !i.Equipment.Stat.IsValid() {
			return errors.InvalidArgumentf("equipment %s must carry only a valid equipment effect", i.ID)
		}
	case ItemKey:
		if payloads != 0 {
			return errors.InvalidArgumentf("key %s must not carry an effect", i.ID)
		}
	default:
		return errors.InvalidArgumentf("item %s has unknown kind %q", i.ID, i.Kind)
	}
	return nil
}

// Clone returns a deep copy of the item
func (i Item) Clone() Item {
	out := i
	if i.Potion != nil {
		p := *i.Potion
		out.Potion = &p
	}
	if i.Rune != nil {
		r := *i.Rune
		out.Rune = &r
	}
	if i.Equipment != nil {
		e := *i.Equipment
		out.Equipment = &e
	}
	return out
}

// Equipment holds at most one item per slot
type Equipment struct {
	Weapon    *Item `json:"weapon,omitempty"`
	Armor     *Item `json:"armor,omitempty"`
	Accessory *Item `json:"accessory,omitempty"`
}

// Get returns the item in slot, or nil
func (e *Equipment) Get(slot Slot) *Item {
	switch slot {
	case SlotWeapon:
		return e.Weapon
	case SlotArmor:
		return e.Armor
	case SlotAccessory:
		return e.Accessory
	default:
		return nil
	}
}

// Set places item in slot and returns the previously equipped item
func (e *Equipment) Set(slot Slot, item *Item) *Item {
	prev := e.Get(slot)
	switch slot {
	case SlotWeapon:
		e.Weapon = item
	case SlotArmor:
		e.Armor = item
	case SlotAccessory:
		e.Accessory = item
	}
	return prev
}

// Items returns the equipped items in slot order
func (e *Equipment) Items() []Item {
	var items []Item
	for _, slot := range AllSlots() {
		if item := e.Get(slot); item != nil {
			items = append(items, *item)
		}
	}
	return items
}

// Clone returns a deep copy of the equipment
func (e Equipment) Clone() Equipment {
	var out Equipment
	for _, slot := range AllSlots() {
		if item := e.Get(slot); item != nil {
			c := item.Clone()
			out.Set(slot, &c)
		}
	}
	return out
}

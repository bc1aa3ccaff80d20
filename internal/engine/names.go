package engine

import "github.com/KirkDiggler/rpg-idle/internal/entities/idle"

var gateNames = map[idle.Rank][]string{
	idle.RankE: {"Goblin Warren", "Sunken Cellar", "Rat King's Nest", "Mossy Grotto"},
	idle.RankD: {"Hollow Mine", "Wolf Den", "Bandit Hideout", "Drowned Chapel"},
	idle.RankC: {"Frost Cavern", "Cursed Library", "Orc Stronghold", "Spider Hollow"},
	idle.RankB: {"Ashen Keep", "Naga Temple", "Iron Labyrinth", "Blood Marsh"},
	idle.RankA: {"Demon Castle", "Sky Citadel", "Abyssal Rift", "Giant's Throne"},
	idle.RankS: {"Monarch's Domain", "Gate of Ruin", "Eclipse Sanctum"},
}

var bossNames = map[idle.Rank][]string{
	idle.RankE: {"Goblin Chieftain", "Giant Rat", "Slime Lord"},
	idle.RankD: {"Alpha Wolf", "Bandit Captain", "Kobold Shaman"},
	idle.RankC: {"Ice Elf Archer", "Orc Warlord", "Arachne"},
	idle.RankB: {"Naga Queen", "Iron Golem", "Blood Wraith"},
	idle.RankA: {"Demon Baron", "Wyvern Rider", "Frost Giant"},
	idle.RankS: {"Dragon Monarch", "Beast Sovereign", "King of Shadows"},
}

var allyNames = map[idle.AllyRole][]string{
	idle.RoleKnight:   {"Igris", "Iron", "Tank"},
	idle.RoleArcher:   {"Greed", "Kaisel", "Hawk"},
	idle.RoleMage:     {"Tusk", "Esil", "Cinder"},
	idle.RoleHealer:   {"Sera", "Lumen", "Mira"},
	idle.RoleAssassin: {"Beru", "Bellion", "Shade"},
}

// abilities are ordered so that lower rarities get the first entries
var allyAbilities = map[idle.AllyRole][]string{
	idle.RoleKnight:   {"Shield Wall", "Taunt", "Iron Skin", "Royal Guard"},
	idle.RoleArcher:   {"Piercing Shot", "Volley", "Eagle Eye", "Rain of Arrows"},
	idle.RoleMage:     {"Fireball", "Frost Nova", "Mana Shield", "Meteor"},
	idle.RoleHealer:   {"Mend", "Purify", "Regeneration", "Resurrection"},
	idle.RoleAssassin: {"Backstab", "Shadow Step", "Poison Blade", "Death Mark"},
}

var rarityLabels = []string{"Common", "Uncommon", "Rare", "Epic", "Legendary"}

var equipmentNames = map[idle.Slot][]string{
	idle.SlotWeapon:    {"Dagger", "Longsword", "War Axe", "Spear"},
	idle.SlotArmor:     {"Leather Vest", "Chain Mail", "Plate Armor", "Cloak"},
	idle.SlotAccessory: {"Ring", "Amulet", "Bracelet", "Earring"},
}

func rarityLabel(r idle.Rarity) string {
	if !r.IsValid() {
		return rarityLabels[0]
	}
	return rarityLabels[r]
}

func (e *engine) pick(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[e.random.IntRange(0, len(names)-1)]
}

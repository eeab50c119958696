// Package assets holds the static content tables for the Hollow Barrow:
// items, enemies, and flavor text.
package assets

import "soulbound-mud/internal/item"

// Equipment templates. All equipment is unique gear (MaxStack 1) and
// therefore eligible for soulbinding. Lore lines ship with some pieces so
// binding has prior text to preserve.
var Equipment = []item.Item{
	{
		Name: "Shard Blade", Glyph: "🗡️", Slot: item.SlotOneHand, MaxStack: 1,
		BonusATK: 3,
		Lore:     []string{"Forged in the Barrow.", "It hums faintly."},
	},
	{
		Name: "Grave Maul", Glyph: "🔨", Slot: item.SlotTwoHand, MaxStack: 1,
		BonusATK: 6,
	},
	{
		Name: "Wight Cleaver", Glyph: "🪓", Slot: item.SlotOneHand, MaxStack: 1,
		BonusATK: 4, BonusMaxHP: -2,
		Lore: []string{"Still cold to the touch."},
	},
	{
		Name: "Pallbearer Helm", Glyph: "🪖", Slot: item.SlotHead, MaxStack: 1,
		BonusDEF: 2,
	},
	{
		Name: "Mourner's Shroud", Glyph: "🧥", Slot: item.SlotBody, MaxStack: 1,
		BonusDEF: 3, BonusMaxHP: 4,
		Lore: []string{"Woven for a funeral that never came."},
	},
	{
		Name: "Cairn Boots", Glyph: "🥾", Slot: item.SlotFeet, MaxStack: 1,
		BonusDEF: 1, BonusMaxHP: 2,
	},
	{
		Name: "Bone Ward", Glyph: "🛡️", Slot: item.SlotOffHand, MaxStack: 1,
		BonusDEF: 3,
	},
}

// Consumables stack, which makes them ineligible for soulbinding.
var Consumables = []item.Item{
	{Name: "Hyperflask", Glyph: "🧪", Slot: item.SlotConsumable, MaxStack: 5, HealHP: 12},
	{Name: "Grave Moss", Glyph: "🌿", Slot: item.SlotConsumable, MaxStack: 8, HealHP: 5},
	{Name: "Ember Draught", Glyph: "🍶", Slot: item.SlotConsumable, MaxStack: 5, HealHP: 20},
}

// ItemByName returns the template with the given name, or an empty item.
func ItemByName(name string) item.Item {
	for _, it := range Equipment {
		if it.Name == name {
			return it
		}
	}
	for _, it := range Consumables {
		if it.Name == name {
			return it
		}
	}
	return item.Item{}
}

// GroundItemTable is the scatter table for dungeon generation.
func GroundItemTable() []item.Item {
	out := make([]item.Item, 0, len(Equipment)+len(Consumables))
	out = append(out, Equipment...)
	out = append(out, Consumables...)
	return out
}

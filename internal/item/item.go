// Package item defines the plain value type for everything a player can
// carry: equipment, consumables, and the lore lines attached to them.
// Items are passed by value between the world, inventories, and the
// soulbound rules — there is no shared item object to alias.
package item

// Slot categorises where an item can be equipped (or whether it is consumable).
type Slot uint8

const (
	SlotConsumable Slot = iota // 0 — single-use consumable
	SlotHead                   // 1
	SlotBody                   // 2
	SlotFeet                   // 3
	SlotOneHand                // 4 — allows an off-hand item
	SlotTwoHand                // 5 — blocks the off-hand slot
	SlotOffHand                // 6
)

// Item is one carryable object. The zero value is an empty slot.
type Item struct {
	Name       string
	Glyph      string
	Slot       Slot
	MaxStack   int // 1 for equipment; > 1 for stackable consumables
	BonusATK   int
	BonusDEF   int
	BonusMaxHP int
	HealHP     int // consumables only

	// Lore holds the display text lines attached to the item. The first
	// line doubles as marker storage for the soulbound rules.
	Lore []string
}

// IsEmpty returns true when this Item is the zero value (empty slot).
func (i Item) IsEmpty() bool { return i.Name == "" }

// Stackable reports whether more than one of this item fits in a slot.
func (i Item) Stackable() bool { return i.MaxStack > 1 }

package component

import (
	"soulbound-mud/internal/ecs"
	"soulbound-mud/internal/item"
)

// Inventory holds a player's items by value: five equipment slots plus a
// bounded backpack. Stored as a component and written back whole after
// every mutation.
type Inventory struct {
	Head     item.Item
	Body     item.Item
	Feet     item.Item
	MainHand item.Item
	OffHand  item.Item

	Backpack []item.Item
	Capacity int
}

func (Inventory) Type() ecs.ComponentType { return CInventory }

// Contents returns every non-empty item the inventory holds, equipment
// first, in a fresh slice.
func (inv Inventory) Contents() []item.Item {
	out := make([]item.Item, 0, 5+len(inv.Backpack))
	for _, it := range [5]item.Item{inv.Head, inv.Body, inv.Feet, inv.MainHand, inv.OffHand} {
		if !it.IsEmpty() {
			out = append(out, it)
		}
	}
	for _, it := range inv.Backpack {
		if !it.IsEmpty() {
			out = append(out, it)
		}
	}
	return out
}

// Slots returns pointers to all inventory positions, equipment slots first
// then backpack entries, so a caller can clear or replace items in place.
func (inv *Inventory) Slots() []*item.Item {
	out := make([]*item.Item, 0, 5+len(inv.Backpack))
	out = append(out, &inv.Head, &inv.Body, &inv.Feet, &inv.MainHand, &inv.OffHand)
	for i := range inv.Backpack {
		out = append(out, &inv.Backpack[i])
	}
	return out
}

// CompactBackpack removes empty entries left behind by cleared slots.
func (inv *Inventory) CompactBackpack() {
	n := 0
	for i := range inv.Backpack {
		if !inv.Backpack[i].IsEmpty() {
			inv.Backpack[n] = inv.Backpack[i]
			n++
		}
	}
	inv.Backpack = inv.Backpack[:n]
}

// BonusATK sums the attack bonus of all equipped items.
func (inv Inventory) BonusATK() int {
	return inv.Head.BonusATK + inv.Body.BonusATK + inv.Feet.BonusATK +
		inv.MainHand.BonusATK + inv.OffHand.BonusATK
}

// BonusDEF sums the defense bonus of all equipped items.
func (inv Inventory) BonusDEF() int {
	return inv.Head.BonusDEF + inv.Body.BonusDEF + inv.Feet.BonusDEF +
		inv.MainHand.BonusDEF + inv.OffHand.BonusDEF
}

// BonusMaxHP sums the max-HP bonus of all equipped items.
func (inv Inventory) BonusMaxHP() int {
	return inv.Head.BonusMaxHP + inv.Body.BonusMaxHP + inv.Feet.BonusMaxHP +
		inv.MainHand.BonusMaxHP + inv.OffHand.BonusMaxHP
}

// Package soulbound implements the rule that bound items do not survive
// leaving their owner: a soulbound item is destroyed when dropped into the
// world and when its holder dies, instead of persisting like a normal item.
//
// The package is deliberately host-free. It operates on plain item values
// and returns plain outcomes (mutations to apply, message to show); the MUD
// server is just one adapter that feeds it events. The marker lives entirely
// inside the item's existing lore lines: an item is soulbound iff its first
// lore line is exactly "Soulbound". That encoding — sentinel text, index 0,
// case-sensitive — is a compatibility contract with previously bound items
// and must not change.
package soulbound

import "soulbound-mud/internal/item"

// Marker is the sentinel lore line. Line zero equal to this string, compared
// exactly, is what makes an item soulbound.
const Marker = "Soulbound"

// IsSoulbound reports whether the item carries the marker. Empty items and
// items without lore are never soulbound. Pure query, no side effects.
func IsSoulbound(it item.Item) bool {
	if it.IsEmpty() || len(it.Lore) == 0 {
		return false
	}
	return it.Lore[0] == Marker
}

// Bind returns the item with the marker prepended as its first lore line.
// Prior lore is kept beneath a single blank separator line, in its original
// order. The caller is responsible for rejecting already-bound items first;
// Bind itself never fails.
func Bind(it item.Item) item.Item {
	lore := make([]string, 0, len(it.Lore)+2)
	lore = append(lore, Marker)
	if len(it.Lore) > 0 {
		lore = append(lore, "")
		lore = append(lore, it.Lore...)
	}
	it.Lore = lore
	return it
}

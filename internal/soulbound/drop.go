package soulbound

import "soulbound-mud/internal/item"

// MsgDropDestroyed is shown to a player whose dropped soulbound item was
// annihilated instead of hitting the ground.
const MsgDropDestroyed = "🔮 Destroyed that soulbound item!"

// DropEvent describes one item about to leave a player's inventory and
// become a free-standing world entity.
type DropEvent struct {
	Item   item.Item
	Player string // display name of the dropping player
}

// DropOutcome tells the host what to do with a dropped item.
type DropOutcome struct {
	// Destroy means the item must be annihilated: never spawned into the
	// world and never returned to the inventory.
	Destroy bool
	// Message, when non-empty, is delivered to the dropping player.
	Message string
}

// EnforceDrop applies the drop rule: soulbound items are destroyed with a
// notice to the dropper, anything else passes through untouched.
func EnforceDrop(ev DropEvent) DropOutcome {
	if !IsSoulbound(ev.Item) {
		return DropOutcome{}
	}
	return DropOutcome{Destroy: true, Message: MsgDropDestroyed}
}

package soulbound

import (
	"fmt"

	"soulbound-mud/internal/item"
)

// Death is the tagged union of the two ways a host can present a player
// death. The two variants have deliberately distinct side effects — clearing
// retained inventory slots versus pruning a pending drop list — so they are
// separate types rather than a boolean flag.
type Death interface {
	isDeath()
}

// KeepInventoryDeath is a death under a host configured to retain the
// victim's inventory. Slots is the inventory contents; soulbound entries are
// zeroed in place (true deletion, not a drop).
type KeepInventoryDeath struct {
	Slots []item.Item
}

func (KeepInventoryDeath) isDeath() {}

// DropInventoryDeath is a death where the victim's inventory is about to be
// converted into world drops. Drops is that pending list; soulbound entries
// are zeroed in place so they never reach the ground.
type DropInventoryDeath struct {
	Drops []item.Item
}

func (DropInventoryDeath) isDeath() {}

// DeathOutcome summarises the enforcement of one death.
type DeathOutcome struct {
	Destroyed int    // number of soulbound items removed
	Message   string // summary notice for the victim; always set
}

// EnforceDeath removes every soulbound item from the death's item list,
// mutating the slice the variant carries. It returns the destroyed count and
// the victim's summary notice. The notice is sent even when the count is
// zero — the victim always hears what the grave kept.
func EnforceDeath(d Death) DeathOutcome {
	var items []item.Item
	switch v := d.(type) {
	case KeepInventoryDeath:
		items = v.Slots
	case DropInventoryDeath:
		items = v.Drops
	}

	destroyed := 0
	for i := range items {
		if IsSoulbound(items[i]) {
			items[i] = item.Item{}
			destroyed++
		}
	}
	return DeathOutcome{
		Destroyed: destroyed,
		Message:   fmt.Sprintf("🔮 Destroyed %d soulbound items!", destroyed),
	}
}

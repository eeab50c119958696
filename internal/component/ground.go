package component

import (
	"soulbound-mud/internal/ecs"
	"soulbound-mud/internal/item"
)

// GroundItem wraps an item lying on the dungeon floor. The wrapped value is
// copied into an Inventory on pickup and the entity destroyed.
type GroundItem struct{ item.Item }

func (GroundItem) Type() ecs.ComponentType { return CGroundItem }

// LootEntry is one possible drop with a percentage chance.
type LootEntry struct {
	ItemName string
	Chance   int // 0–100
}

// Loot holds an enemy's drop table.
type Loot struct {
	Drops []LootEntry
}

func (Loot) Type() ecs.ComponentType { return CLoot }

// Package factory builds fully-wired entities from templates.
package factory

import (
	"soulbound-mud/internal/component"
	"soulbound-mud/internal/ecs"
	"soulbound-mud/internal/generate"
	"soulbound-mud/internal/item"

	"github.com/gdamore/tcell/v2"
)

// Player stat baseline. Every adventurer enters the Barrow the same way;
// gear makes the difference.
const (
	PlayerMaxHP    = 24
	PlayerAttack   = 3
	PlayerDefense  = 1
	PlayerCapacity = 10
)

// NewPlayer creates a player entity at (x, y).
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.Create()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Health{Current: PlayerMaxHP, Max: PlayerMaxHP})
	w.Add(id, component.Renderable{Glyph: "🧙", FGColor: tcell.ColorYellow, RenderOrder: 10})
	w.Add(id, component.Combat{Attack: PlayerAttack, Defense: PlayerDefense})
	w.Add(id, component.Inventory{Capacity: PlayerCapacity})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewEnemy creates an enemy entity from a spawn entry.
func NewEnemy(w *ecs.World, entry generate.EnemySpawnEntry, x, y int) ecs.EntityID {
	id := w.Create()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Health{Current: entry.MaxHP, Max: entry.MaxHP})
	w.Add(id, component.Renderable{Glyph: entry.Glyph, FGColor: tcell.ColorRed, RenderOrder: 5})
	w.Add(id, component.Combat{Attack: entry.Attack, Defense: entry.Defense})
	w.Add(id, component.AI{Behavior: component.BehaviorChase, SightRange: entry.SightRange})
	w.Add(id, component.TagBlocking{})
	if len(entry.Loot) > 0 {
		drops := make([]component.LootEntry, len(entry.Loot))
		for i, d := range entry.Loot {
			drops[i] = component.LootEntry{ItemName: d.ItemName, Chance: d.Chance}
		}
		w.Add(id, component.Loot{Drops: drops})
	}
	return id
}

// NewGroundItem creates a floor entity carrying the given item.
func NewGroundItem(w *ecs.World, it item.Item, x, y int) ecs.EntityID {
	id := w.Create()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: it.Glyph, FGColor: tcell.ColorGreen, RenderOrder: 2})
	w.Add(id, component.GroundItem{Item: it})
	return id
}

// Package system implements the per-tick rules that act on the world:
// movement, combat, and enemy AI.
package system

import (
	"soulbound-mud/internal/component"
	"soulbound-mud/internal/ecs"
	"soulbound-mud/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or out-of-bounds
	MoveAttack                    // bumped a blocking entity
)

// TryMove attempts to move entity id by (dx, dy) on m.
// Returns the outcome and (for MoveAttack) the bumped entity.
func TryMove(w *ecs.World, m *gamemap.GameMap, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked, ecs.NilEntity
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	// Blocking entity at destination wins over the tile check.
	for _, other := range w.Query(component.CTagBlock, component.CPosition) {
		if other == id {
			continue
		}
		otherPos := w.Get(other, component.CPosition).(component.Position)
		if otherPos.X == nx && otherPos.Y == ny {
			return MoveAttack, other
		}
	}

	if !m.IsWalkable(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK, ecs.NilEntity
}

// TryMoveSimple is a convenience wrapper that discards the bumped entity.
func TryMoveSimple(w *ecs.World, m *gamemap.GameMap, id ecs.EntityID, dx, dy int) MoveResult {
	r, _ := TryMove(w, m, id, dx, dy)
	return r
}

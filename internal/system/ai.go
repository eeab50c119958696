package system

import (
	"math"
	"math/rand"

	"soulbound-mud/internal/component"
	"soulbound-mud/internal/ecs"
	"soulbound-mud/internal/gamemap"
)

// EnemyHitResult holds information about an enemy attack on a player.
type EnemyHitResult struct {
	EnemyGlyph string
	AttackerID ecs.EntityID
	VictimID   ecs.EntityID
	Damage     int
}

// ProcessAI runs one tick of AI for all AI-controlled entities and returns
// the results of any attacks made against players.
func ProcessAI(w *ecs.World, m *gamemap.GameMap, playerIDs []ecs.EntityID, rng *rand.Rand) []EnemyHitResult {
	if len(playerIDs) == 0 {
		return nil
	}

	var hits []EnemyHitResult
	for _, id := range w.Query(component.CAI, component.CPosition) {
		ai := w.Get(id, component.CAI).(component.AI)
		pos := w.Get(id, component.CPosition).(component.Position)

		targetPos, inRange := nearestPlayer(w, playerIDs, pos, ai.SightRange)
		if !inRange {
			continue
		}
		if ai.Behavior == component.BehaviorStationary &&
			(abs(targetPos.X-pos.X) > 1 || abs(targetPos.Y-pos.Y) > 1) {
			continue // stationary enemies only strike adjacent targets
		}

		if hit, attacked := chaseMove(w, m, rng, id, pos, targetPos); attacked {
			hits = append(hits, hit)
		}
	}
	return hits
}

// chaseMove takes one greedy step toward the target — horizontal first,
// vertical as fallback, no pathfinding — and attacks any player it bumps.
func chaseMove(w *ecs.World, m *gamemap.GameMap, rng *rand.Rand, id ecs.EntityID,
	pos, targetPos component.Position) (EnemyHitResult, bool) {

	stepX := sign(targetPos.X - pos.X)
	stepY := sign(targetPos.Y - pos.Y)

	result, bumped := TryMove(w, m, id, stepX, 0)
	if result == MoveAttack && w.Has(bumped, component.CTagPlayer) {
		return attackPlayer(w, rng, id, bumped), true
	}
	if result == MoveOK {
		return EnemyHitResult{}, false
	}

	result, bumped = TryMove(w, m, id, 0, stepY)
	if result == MoveAttack && w.Has(bumped, component.CTagPlayer) {
		return attackPlayer(w, rng, id, bumped), true
	}
	return EnemyHitResult{}, false
}

func attackPlayer(w *ecs.World, rng *rand.Rand, attackerID, victimID ecs.EntityID) EnemyHitResult {
	glyph := "?"
	if c := w.Get(attackerID, component.CRenderable); c != nil {
		glyph = c.(component.Renderable).Glyph
	}
	res := Attack(w, rng, attackerID, victimID)
	return EnemyHitResult{
		EnemyGlyph: glyph,
		AttackerID: attackerID,
		VictimID:   victimID,
		Damage:     res.Damage,
	}
}

// nearestPlayer returns the position of the closest live player within
// sightRange of pos, and whether one exists.
func nearestPlayer(w *ecs.World, playerIDs []ecs.EntityID, pos component.Position, sightRange int) (component.Position, bool) {
	var bestPos component.Position
	bestDist := math.MaxFloat64
	found := false
	for _, pid := range playerIDs {
		if pid == ecs.NilEntity {
			continue
		}
		pc := w.Get(pid, component.CPosition)
		if pc == nil {
			continue
		}
		p := pc.(component.Position)
		dx, dy := float64(p.X-pos.X), float64(p.Y-pos.Y)
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist <= float64(sightRange) && dist < bestDist {
			bestPos, bestDist, found = p, dist, true
		}
	}
	return bestPos, found
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

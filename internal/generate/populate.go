package generate

import (
	"math/rand"

	"soulbound-mud/internal/gamemap"
	"soulbound-mud/internal/item"
)

// EnemySpawn places one enemy template at a map position.
type EnemySpawn struct {
	Entry EnemySpawnEntry
	X, Y  int
}

// ItemSpawn places one ground item at a map position.
type ItemSpawn struct {
	Item item.Item
	X, Y int
}

// Population is everything Populate decided to place.
type Population struct {
	Enemies []EnemySpawn
	Items   []ItemSpawn
}

// Populate spends the enemy budget and item count across the generated
// rooms. The first room is the player spawn and stays clear of enemies.
func Populate(m *gamemap.GameMap, cfg *Config) Population {
	var pop Population
	rng := cfg.Rand

	rooms := m.Rooms
	if len(rooms) > 1 {
		rooms = rooms[1:]
	}

	if len(cfg.EnemyTable) > 0 {
		budget := cfg.EnemyBudget
		for attempts := 0; budget > 0 && attempts < 100; attempts++ {
			entry := cfg.EnemyTable[rng.Intn(len(cfg.EnemyTable))]
			if entry.ThreatCost > budget {
				continue
			}
			x, y := randomFloorIn(rooms[rng.Intn(len(rooms))], rng)
			pop.Enemies = append(pop.Enemies, EnemySpawn{Entry: entry, X: x, Y: y})
			budget -= entry.ThreatCost
		}
	}

	if len(cfg.ItemTable) > 0 {
		for i := 0; i < cfg.ItemCount; i++ {
			it := cfg.ItemTable[rng.Intn(len(cfg.ItemTable))]
			x, y := randomFloorIn(m.Rooms[rng.Intn(len(m.Rooms))], rng)
			pop.Items = append(pop.Items, ItemSpawn{Item: it, X: x, Y: y})
		}
	}

	return pop
}

func randomFloorIn(r gamemap.Rect, rng *rand.Rand) (int, int) {
	x := r.X1 + rng.Intn(r.X2-r.X1+1)
	y := r.Y1 + rng.Intn(r.Y2-r.Y1+1)
	return x, y
}

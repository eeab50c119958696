// Package generate builds the dungeon map and decides where enemies and
// items start.
package generate

import (
	"math/rand"

	"soulbound-mud/internal/gamemap"
	"soulbound-mud/internal/item"
)

// Config drives one dungeon generation.
type Config struct {
	MapWidth     int
	MapHeight    int
	RoomAttempts int // placement attempts; rejected overlaps are skipped
	MinRoomSize  int
	MaxRoomSize  int

	EnemyBudget int // total ThreatCost worth of enemies to place
	ItemCount   int // ground items to scatter

	EnemyTable []EnemySpawnEntry
	ItemTable  []item.Item

	Rand *rand.Rand
}

// EnemySpawnEntry is one enemy template available to the spawner.
type EnemySpawnEntry struct {
	Glyph      string
	Name       string
	MaxHP      int
	Attack     int
	Defense    int
	SightRange int
	ThreatCost int
	Loot       []LootDrop
}

// LootDrop names an item from the item table with a drop chance.
type LootDrop struct {
	ItemName string
	Chance   int // 0–100
}

// Generate carves a room-and-corridor dungeon and returns the map plus the
// player spawn point (center of the first room).
func Generate(cfg *Config) (*gamemap.GameMap, int, int) {
	m := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	rng := cfg.Rand

	for i := 0; i < cfg.RoomAttempts; i++ {
		w := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		h := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		x := 1 + rng.Intn(cfg.MapWidth-w-2)
		y := 1 + rng.Intn(cfg.MapHeight-h-2)
		room := gamemap.Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}

		// Reject overlaps, with a 1-tile margin so rooms keep their walls.
		padded := gamemap.Rect{X1: room.X1 - 1, Y1: room.Y1 - 1, X2: room.X2 + 1, Y2: room.Y2 + 1}
		overlaps := false
		for _, other := range m.Rooms {
			if padded.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(m, room)
		if len(m.Rooms) > 0 {
			// Corridor to the previous room, L-shaped, corner order random.
			px, py := m.Rooms[len(m.Rooms)-1].Center()
			cx, cy := room.Center()
			if rng.Intn(2) == 0 {
				carveHTunnel(m, px, cx, py)
				carveVTunnel(m, py, cy, cx)
			} else {
				carveVTunnel(m, py, cy, px)
				carveHTunnel(m, px, cx, cy)
			}
		}
		m.Rooms = append(m.Rooms, room)
	}

	if len(m.Rooms) == 0 {
		// Degenerate config — carve a fallback cell so the player can stand.
		m.Set(1, 1, gamemap.MakeFloor())
		m.Rooms = append(m.Rooms, gamemap.Rect{X1: 1, Y1: 1, X2: 1, Y2: 1})
	}

	sx, sy := m.Rooms[0].Center()
	return m, sx, sy
}

func carveRoom(m *gamemap.GameMap, r gamemap.Rect) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
}

func carveHTunnel(m *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if m.InBounds(x, y) {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
}

func carveVTunnel(m *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if m.InBounds(x, y) {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
}

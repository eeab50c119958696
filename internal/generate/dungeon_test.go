package generate

import (
	"math/rand"
	"testing"

	"soulbound-mud/internal/item"
)

func testConfig(seed int64) *Config {
	return &Config{
		MapWidth:     60,
		MapHeight:    30,
		RoomAttempts: 30,
		MinRoomSize:  4,
		MaxRoomSize:  8,
		EnemyBudget:  10,
		ItemCount:    4,
		EnemyTable: []EnemySpawnEntry{
			{Glyph: "🕷️", Name: "Barrow Spider", MaxHP: 6, Attack: 2, SightRange: 6, ThreatCost: 2},
			{Glyph: "💀", Name: "Hollow Shade", MaxHP: 10, Attack: 4, SightRange: 8, ThreatCost: 5},
		},
		ItemTable: []item.Item{
			{Name: "Shard Blade", Glyph: "🗡️", Slot: item.SlotOneHand, MaxStack: 1, BonusATK: 3},
		},
		Rand: rand.New(rand.NewSource(seed)),
	}
}

func TestGenerateRoomsConnected(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		cfg := testConfig(seed)
		m, sx, sy := Generate(cfg)

		if len(m.Rooms) == 0 {
			t.Fatalf("seed %d: no rooms generated", seed)
		}
		if !m.IsWalkable(sx, sy) {
			t.Fatalf("seed %d: spawn (%d,%d) not walkable", seed, sx, sy)
		}

		// Flood fill from spawn; every room center must be reachable.
		reachable := floodFill(m, sx, sy)
		for i, room := range m.Rooms {
			cx, cy := room.Center()
			if !reachable[[2]int{cx, cy}] {
				t.Errorf("seed %d: room %d center (%d,%d) unreachable from spawn", seed, i, cx, cy)
			}
		}
	}
}

func TestGenerateKeepsBorderWalls(t *testing.T) {
	cfg := testConfig(1)
	m, _, _ := Generate(cfg)
	for x := 0; x < m.Width; x++ {
		if m.IsWalkable(x, 0) || m.IsWalkable(x, m.Height-1) {
			t.Fatalf("border breached at column %d", x)
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.IsWalkable(0, y) || m.IsWalkable(m.Width-1, y) {
			t.Fatalf("border breached at row %d", y)
		}
	}
}

func TestPopulateKeepsSpawnRoomClear(t *testing.T) {
	cfg := testConfig(7)
	m, _, _ := Generate(cfg)
	if len(m.Rooms) < 2 {
		t.Skip("generation produced a single room")
	}
	pop := Populate(m, cfg)

	spawnRoom := m.Rooms[0]
	for _, e := range pop.Enemies {
		if e.X >= spawnRoom.X1 && e.X <= spawnRoom.X2 && e.Y >= spawnRoom.Y1 && e.Y <= spawnRoom.Y2 {
			t.Errorf("enemy %s placed in spawn room at (%d,%d)", e.Entry.Name, e.X, e.Y)
		}
	}
}

func TestPopulateRespectsEnemyBudget(t *testing.T) {
	cfg := testConfig(3)
	m, _, _ := Generate(cfg)
	pop := Populate(m, cfg)

	spent := 0
	for _, e := range pop.Enemies {
		spent += e.Entry.ThreatCost
	}
	if spent > cfg.EnemyBudget {
		t.Errorf("spent %d threat, budget %d", spent, cfg.EnemyBudget)
	}
	if len(pop.Items) != cfg.ItemCount {
		t.Errorf("placed %d items, want %d", len(pop.Items), cfg.ItemCount)
	}
}

func floodFill(m interface {
	IsWalkable(x, y int) bool
}, sx, sy int) map[[2]int]bool {
	seen := map[[2]int]bool{{sx, sy}: true}
	queue := [][2]int{{sx, sy}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := [2]int{p[0] + d[0], p[1] + d[1]}
			if !seen[n] && m.IsWalkable(n[0], n[1]) {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

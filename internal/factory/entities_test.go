package factory

import (
	"testing"

	"soulbound-mud/internal/component"
	"soulbound-mud/internal/ecs"
	"soulbound-mud/internal/generate"
	"soulbound-mud/internal/item"
)

func TestNewPlayerHasAllComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewPlayer(w, 3, 4)

	for _, ct := range []ecs.ComponentType{
		component.CPosition, component.CHealth, component.CRenderable,
		component.CCombat, component.CInventory, component.CTagPlayer, component.CTagBlock,
	} {
		if !w.Has(id, ct) {
			t.Errorf("player missing component type %d", ct)
		}
	}
	hp := w.Get(id, component.CHealth).(component.Health)
	if hp.Current != PlayerMaxHP || hp.Max != PlayerMaxHP {
		t.Errorf("hp = %d/%d, want %d/%d", hp.Current, hp.Max, PlayerMaxHP, PlayerMaxHP)
	}
	pos := w.Get(id, component.CPosition).(component.Position)
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("position = (%d,%d), want (3,4)", pos.X, pos.Y)
	}
}

func TestNewEnemyCarriesLootTable(t *testing.T) {
	w := ecs.NewWorld()
	entry := generate.EnemySpawnEntry{
		Glyph: "💀", Name: "Hollow Shade", MaxHP: 10, Attack: 4, SightRange: 8,
		Loot: []generate.LootDrop{{ItemName: "Shard Blade", Chance: 30}},
	}
	id := NewEnemy(w, entry, 1, 1)

	loot := w.Get(id, component.CLoot)
	if loot == nil {
		t.Fatal("enemy with loot entries must carry a Loot component")
	}
	drops := loot.(component.Loot).Drops
	if len(drops) != 1 || drops[0].ItemName != "Shard Blade" || drops[0].Chance != 30 {
		t.Errorf("unexpected drops: %+v", drops)
	}
}

func TestNewEnemyWithoutLootHasNoLootComponent(t *testing.T) {
	w := ecs.NewWorld()
	id := NewEnemy(w, generate.EnemySpawnEntry{Glyph: "🕷️", Name: "Barrow Spider", MaxHP: 6}, 1, 1)
	if w.Has(id, component.CLoot) {
		t.Error("lootless enemy must not carry a Loot component")
	}
}

func TestNewGroundItemWrapsItemValue(t *testing.T) {
	w := ecs.NewWorld()
	it := item.Item{Name: "Shard Blade", Glyph: "🗡️", Slot: item.SlotOneHand, MaxStack: 1, BonusATK: 3}
	id := NewGroundItem(w, it, 2, 2)

	gi := w.Get(id, component.CGroundItem)
	if gi == nil {
		t.Fatal("ground item entity missing GroundItem component")
	}
	if got := gi.(component.GroundItem).Item; got.Name != "Shard Blade" || got.BonusATK != 3 {
		t.Errorf("wrapped item = %+v", got)
	}
}

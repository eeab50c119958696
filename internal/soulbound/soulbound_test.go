package soulbound

import (
	"reflect"
	"testing"

	"soulbound-mud/internal/item"
)

func sword(lore ...string) item.Item {
	return item.Item{Name: "Shard Blade", Glyph: "🗡️", Slot: item.SlotOneHand, MaxStack: 1, Lore: lore}
}

// ─── IsSoulbound ──────────────────────────────────────────────────────────────

func TestIsSoulboundEmptyItem(t *testing.T) {
	if IsSoulbound(item.Item{}) {
		t.Error("zero-value item must not be soulbound")
	}
}

func TestIsSoulboundNoLore(t *testing.T) {
	if IsSoulbound(sword()) {
		t.Error("item without lore must not be soulbound")
	}
}

func TestIsSoulboundFirstLineOnly(t *testing.T) {
	cases := []struct {
		name string
		lore []string
		want bool
	}{
		{"marker at index 0", []string{"Soulbound"}, true},
		{"marker with trailing lore", []string{"Soulbound", "", "An old blade."}, true},
		{"marker at index 1", []string{"An old blade.", "Soulbound"}, false},
		{"case mismatch", []string{"soulbound"}, false},
		{"whitespace padding", []string{" Soulbound"}, false},
		{"empty first line", []string{""}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSoulbound(sword(tc.lore...)); got != tc.want {
				t.Errorf("IsSoulbound(lore=%q) = %v, want %v", tc.lore, got, tc.want)
			}
		})
	}
}

// ─── Bind ─────────────────────────────────────────────────────────────────────

func TestBindMarksItem(t *testing.T) {
	bound := Bind(sword())
	if !IsSoulbound(bound) {
		t.Fatal("item must be soulbound after Bind")
	}
	if want := []string{"Soulbound"}; !reflect.DeepEqual(bound.Lore, want) {
		t.Errorf("lore = %q, want %q", bound.Lore, want)
	}
}

func TestBindPreservesPriorLoreOrder(t *testing.T) {
	bound := Bind(sword("Forged in the Barrow.", "It hums faintly."))
	want := []string{"Soulbound", "", "Forged in the Barrow.", "It hums faintly."}
	if !reflect.DeepEqual(bound.Lore, want) {
		t.Errorf("lore = %q, want %q", bound.Lore, want)
	}
}

func TestBindDoesNotAliasInput(t *testing.T) {
	orig := sword("Forged in the Barrow.")
	_ = Bind(orig)
	if want := []string{"Forged in the Barrow."}; !reflect.DeepEqual(orig.Lore, want) {
		t.Errorf("input lore mutated to %q", orig.Lore)
	}
}

// ─── EnforceDrop ──────────────────────────────────────────────────────────────

func TestEnforceDropDestroysBoundItem(t *testing.T) {
	out := EnforceDrop(DropEvent{Item: Bind(sword()), Player: "ayla"})
	if !out.Destroy {
		t.Error("soulbound drop must be destroyed")
	}
	if out.Message != MsgDropDestroyed {
		t.Errorf("message = %q, want %q", out.Message, MsgDropDestroyed)
	}
}

func TestEnforceDropIgnoresUnboundItem(t *testing.T) {
	out := EnforceDrop(DropEvent{Item: sword("It hums faintly."), Player: "ayla"})
	if out.Destroy || out.Message != "" {
		t.Errorf("unbound drop must be a no-op, got %+v", out)
	}
}

// ─── EnforceDeath ─────────────────────────────────────────────────────────────

func TestEnforceDeathKeepInventoryClearsBoundSlot(t *testing.T) {
	slots := []item.Item{
		sword("It hums faintly."),
		Bind(sword()),
		{Name: "Hyperflask", Glyph: "🧪", MaxStack: 5},
	}
	out := EnforceDeath(KeepInventoryDeath{Slots: slots})

	if out.Destroyed != 1 {
		t.Fatalf("destroyed = %d, want 1", out.Destroyed)
	}
	if !slots[1].IsEmpty() {
		t.Error("bound slot must be cleared to empty")
	}
	if slots[0].IsEmpty() || slots[2].IsEmpty() {
		t.Error("unbound slots must survive")
	}
	if out.Message != "🔮 Destroyed 1 soulbound items!" {
		t.Errorf("unexpected summary: %q", out.Message)
	}
}

func TestEnforceDeathDropInventoryPrunesDropList(t *testing.T) {
	drops := []item.Item{Bind(sword()), sword("It hums faintly."), Bind(sword("Twice-marked."))}
	out := EnforceDeath(DropInventoryDeath{Drops: drops})

	if out.Destroyed != 2 {
		t.Fatalf("destroyed = %d, want 2", out.Destroyed)
	}
	if !drops[0].IsEmpty() || !drops[2].IsEmpty() {
		t.Error("bound entries must be removed from the drop list")
	}
	if drops[1].IsEmpty() {
		t.Error("unbound entry must remain")
	}
}

func TestEnforceDeathZeroCountStillReports(t *testing.T) {
	out := EnforceDeath(DropInventoryDeath{Drops: []item.Item{sword()}})
	if out.Destroyed != 0 {
		t.Fatalf("destroyed = %d, want 0", out.Destroyed)
	}
	if out.Message == "" {
		t.Error("summary notice must be sent even for count 0")
	}
}

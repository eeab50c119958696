package soulbound

import (
	"testing"

	"soulbound-mud/internal/item"
)

func TestEvaluateBindSuccess(t *testing.T) {
	held := sword("It hums faintly.")
	out := EvaluateBind(BindRequest{SenderIsPlayer: true, HasPermission: true, Held: held})

	if !out.Bound {
		t.Fatalf("expected success, got message %q", out.Message)
	}
	if !IsSoulbound(out.Item) {
		t.Error("returned item must carry the marker")
	}
	if out.Message != MsgBound {
		t.Errorf("message = %q, want %q", out.Message, MsgBound)
	}
}

func TestEvaluateBindRejections(t *testing.T) {
	cases := []struct {
		name string
		req  BindRequest
		want string
	}{
		{
			"non-player sender",
			BindRequest{SenderIsPlayer: false, HasPermission: true, Held: sword()},
			MsgNotPlayer,
		},
		{
			"non-player sender outranks permission",
			BindRequest{SenderIsPlayer: false, HasPermission: false, Held: sword()},
			MsgNotPlayer,
		},
		{
			"missing permission",
			BindRequest{SenderIsPlayer: true, HasPermission: false, Held: sword()},
			MsgNoPermission,
		},
		{
			"empty hand",
			BindRequest{SenderIsPlayer: true, HasPermission: true},
			MsgCannotBind,
		},
		{
			"stackable item",
			BindRequest{SenderIsPlayer: true, HasPermission: true,
				Held: item.Item{Name: "Hyperflask", Glyph: "🧪", MaxStack: 5}},
			MsgCannotBind,
		},
		{
			"already soulbound",
			BindRequest{SenderIsPlayer: true, HasPermission: true, Held: Bind(sword())},
			MsgAlreadyBound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := EvaluateBind(tc.req)
			if out.Bound {
				t.Fatal("expected rejection")
			}
			if out.Message != tc.want {
				t.Errorf("message = %q, want %q", out.Message, tc.want)
			}
		})
	}
}

// Double-binding must be rejected before any mutation: the lore of an
// already-bound item comes back byte-for-byte unchanged.
func TestEvaluateBindDoubleBindLeavesLoreUntouched(t *testing.T) {
	held := Bind(sword("Forged in the Barrow."))
	before := append([]string(nil), held.Lore...)

	out := EvaluateBind(BindRequest{SenderIsPlayer: true, HasPermission: true, Held: held})
	if out.Bound {
		t.Fatal("double bind must be rejected")
	}
	if len(out.Item.Lore) != len(before) {
		t.Fatalf("lore length changed: %d → %d", len(before), len(out.Item.Lore))
	}
	for i := range before {
		if out.Item.Lore[i] != before[i] {
			t.Errorf("lore[%d] = %q, want %q", i, out.Item.Lore[i], before[i])
		}
	}
}

// A stackable item is rejected regardless of permission or prior state.
func TestEvaluateBindStackableAlwaysRejected(t *testing.T) {
	flask := item.Item{Name: "Hyperflask", Glyph: "🧪", MaxStack: 5}
	for _, perm := range []bool{true, false} {
		out := EvaluateBind(BindRequest{SenderIsPlayer: true, HasPermission: perm, Held: flask})
		if out.Bound {
			t.Errorf("stackable item bound with permission=%v", perm)
		}
	}
}

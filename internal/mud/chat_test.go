package mud

import (
	"strings"
	"testing"

	"soulbound-mud/internal/component"
)

// ─── chebyshev ────────────────────────────────────────────────────────────────

func TestChebyshev(t *testing.T) {
	cases := []struct {
		name           string
		x1, y1, x2, y2 int
		expect         int
	}{
		{"same point", 5, 5, 5, 5, 0},
		{"horizontal", 0, 0, 7, 0, 7},
		{"vertical", 0, 0, 0, 4, 4},
		{"diagonal", 0, 0, 3, 3, 3},
		{"mixed", 2, 2, 8, 5, 6},
		{"negative direction", 8, 5, 2, 2, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := chebyshev(tc.x1, tc.y1, tc.x2, tc.y2)
			if got != tc.expect {
				t.Errorf("chebyshev(%d,%d,%d,%d) = %d, want %d",
					tc.x1, tc.y1, tc.x2, tc.y2, got, tc.expect)
			}
		})
	}
}

// ─── chat delivery ────────────────────────────────────────────────────────────

func TestBroadcastChatDeliversInRange(t *testing.T) {
	srv := newTestServer(t, testConfig())
	alice := newTestSession(srv, "alice")
	bob := newTestSession(srv, "bob")
	srv.AddSession(alice)
	srv.AddSession(bob)
	defer srv.RemoveSession(alice)
	defer srv.RemoveSession(bob)

	// Both spawn in the same room, well within earshot.
	srv.mu.Lock()
	srv.broadcastChatLocked(alice, "hello barrow")
	srv.mu.Unlock()

	if got := lastMessage(alice); got != "You say: \"hello barrow\"" {
		t.Errorf("sender echo = %q", got)
	}
	if got := lastMessage(bob); got != "alice says: \"hello barrow\"" {
		t.Errorf("receiver message = %q", got)
	}
}

func TestBroadcastChatSkipsDistantPlayers(t *testing.T) {
	srv := newTestServer(t, testConfig())
	alice := newTestSession(srv, "alice")
	bob := newTestSession(srv, "bob")
	srv.AddSession(alice)
	srv.AddSession(bob)
	defer srv.RemoveSession(alice)
	defer srv.RemoveSession(bob)

	// Move bob far outside ChatRange.
	srv.mu.Lock()
	pos := srv.world.Get(alice.PlayerID, component.CPosition).(component.Position)
	srv.world.Add(bob.PlayerID, component.Position{X: pos.X + ChatRange + 5, Y: pos.Y})
	before := len(bob.Messages)
	srv.broadcastChatLocked(alice, "can you hear me")
	after := len(bob.Messages)
	srv.mu.Unlock()

	if after != before {
		t.Error("players beyond ChatRange must not receive spoken messages")
	}
}

// ─── slash commands ───────────────────────────────────────────────────────────

func TestRunCommandWho(t *testing.T) {
	srv := newTestServer(t, testConfig())
	alice := newTestSession(srv, "alice")
	bob := newTestSession(srv, "bob")
	srv.AddSession(alice)
	srv.AddSession(bob)
	defer srv.RemoveSession(alice)
	defer srv.RemoveSession(bob)

	srv.mu.Lock()
	srv.runCommandLocked(alice, "/who")
	srv.mu.Unlock()

	got := lastMessage(alice)
	if !strings.Contains(got, "alice") || !strings.Contains(got, "bob") {
		t.Errorf("/who output %q should list both players", got)
	}
	if !strings.Contains(got, "(2)") {
		t.Errorf("/who output %q should show the player count", got)
	}
}

func TestRunCommandUnknown(t *testing.T) {
	srv := newTestServer(t, testConfig())
	sess := newTestSession(srv, "alice")
	srv.AddSession(sess)
	defer srv.RemoveSession(sess)

	srv.mu.Lock()
	srv.runCommandLocked(sess, "/dance hard")
	srv.mu.Unlock()

	if got := lastMessage(sess); got != "Unknown command: /dance" {
		t.Errorf("message = %q", got)
	}
}

func TestRunCommandSoulboundAlias(t *testing.T) {
	srv := newTestServer(t, testConfig())
	sess := newTestSession(srv, "alice")
	srv.AddSession(sess)
	defer srv.RemoveSession(sess)

	inv := srv.playerInventory(sess)
	inv.MainHand = plainSword()
	srv.setPlayerInventory(sess, inv)

	srv.mu.Lock()
	srv.runCommandLocked(sess, "/sb")
	srv.mu.Unlock()

	got := srv.playerInventory(sess)
	if got.MainHand.Lore == nil {
		t.Error("/sb should bind the main-hand item")
	}
}

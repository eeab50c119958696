package mud

import (
	"sync"
	"sync/atomic"

	"soulbound-mud/internal/component"
	"soulbound-mud/internal/ecs"
	"soulbound-mud/internal/render"

	"github.com/gdamore/tcell/v2"
)

// playerColors is the round-robin palette for distinguishing players visually.
var playerColors = []tcell.Color{
	tcell.ColorYellow,
	tcell.ColorFuchsia,
	tcell.ColorAqua,
	tcell.ColorLime,
	tcell.ColorOrange,
	tcell.ColorSilver,
	tcell.ColorWhite,
}

// Session holds all per-player state for one SSH connection.
type Session struct {
	ID    int
	Name  string // sanitized SSH username; cmd/server substitutes a fallback when blank
	Color tcell.Color

	// CanBind caches the binding permission from the server config,
	// resolved once at connect time from the SSH username.
	CanBind bool

	// PlayerID is the session's entity; NilEntity while dead.
	PlayerID ecs.EntityID

	// I/O
	Screen   tcell.Screen
	Renderer *render.Renderer

	// Pending action (last key wins).
	actionMu sync.Mutex
	pending  Action

	// Messages is the session's scrolling log, capped at 50 entries.
	Messages []string

	// DiscoveredEnemies tracks first kills for lore messages.
	DiscoveredEnemies map[string]bool

	// keptInventory carries a keep-inventory-mode corpse's items across the
	// respawn gap, after soulbound enforcement has already run on it.
	keptInventory *component.Inventory

	// RenderCh: the ticker sends here; the session goroutine drains and renders.
	RenderCh chan struct{}

	// deathCountdown > 0 means the player is dead and waiting to respawn.
	// The tick goroutine writes under the server mutex; the session
	// goroutine reads it lock-free for UI gating.
	deathCountdown atomic.Int32
}

// NewSession allocates a Session for a newly-connected player.
func NewSession(id int, name string, color tcell.Color, screen tcell.Screen) *Session {
	return &Session{
		ID:                id,
		Name:              name,
		Color:             color,
		Screen:            screen,
		DiscoveredEnemies: make(map[string]bool),
		RenderCh:          make(chan struct{}, 1),
	}
}

// GetDeathCountdown returns the current death countdown value.
// Safe to call from any goroutine.
func (s *Session) GetDeathCountdown() int { return int(s.deathCountdown.Load()) }

// SetDeathCountdown sets the death countdown.
func (s *Session) SetDeathCountdown(v int) { s.deathCountdown.Store(int32(v)) }

// DecrDeathCountdown atomically decrements and returns the new value.
func (s *Session) DecrDeathCountdown() int { return int(s.deathCountdown.Add(-1)) }

// SetAction stores the player's most recent key action (last key wins).
func (s *Session) SetAction(a Action) {
	s.actionMu.Lock()
	s.pending = a
	s.actionMu.Unlock()
}

// TakeAction atomically retrieves and clears the pending action.
func (s *Session) TakeAction() Action {
	s.actionMu.Lock()
	a := s.pending
	s.pending = ActionNone
	s.actionMu.Unlock()
	return a
}

// AddMessage appends a message to the session's log, capping at 50 entries.
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)
	if len(s.Messages) > 50 {
		s.Messages = s.Messages[len(s.Messages)-50:]
	}
}

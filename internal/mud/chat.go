package mud

import (
	"fmt"
	"strings"

	"soulbound-mud/internal/component"
	"soulbound-mud/internal/ecs"
	"soulbound-mud/internal/soulbound"

	"github.com/gdamore/tcell/v2"
)

// Chat constants.
const (
	ChatRange     = 12 // Chebyshev distance for spoken message delivery
	MaxChatLength = 60 // max runes a player can type
)

// chebyshev returns the Chebyshev (chessboard) distance between two points.
func chebyshev(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}

// RunChat handles the chat input modal. The world keeps ticking and rendering
// while the player types. On Enter the input is dispatched: lines starting
// with "/" run as commands, anything else is spoken to nearby players.
func (s *Server) RunChat(sess *Session, eventCh <-chan tcell.Event) {
	var buf []rune

	redraw := func() {
		s.mu.Lock()
		s.RenderSession(sess)
		s.drawChatInput(sess, buf)
		s.mu.Unlock()
		sess.Screen.Show()
	}

	for {
		redraw()

		select {
		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				sess.Screen.Sync()
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEnter:
					text := strings.TrimSpace(string(buf))
					if text == "" {
						return
					}
					s.mu.Lock()
					if strings.HasPrefix(text, "/") {
						s.runCommandLocked(sess, text)
					} else {
						s.broadcastChatLocked(sess, text)
					}
					s.mu.Unlock()
					return
				case tcell.KeyEscape:
					return
				case tcell.KeyBackspace, tcell.KeyBackspace2:
					if len(buf) > 0 {
						buf = buf[:len(buf)-1]
					}
				case tcell.KeyRune:
					if len(buf) < MaxChatLength {
						buf = append(buf, ev.Rune())
					}
				}
			}

		case <-sess.RenderCh:
			// World ticked while typing; redraw happens at loop top.
		}
	}
}

// drawChatInput renders the "Say: text_" prompt on the bottom row of the HUD.
func (s *Server) drawChatInput(sess *Session, buf []rune) {
	_, sh := sess.Screen.Size()
	prompt := "Say: " + string(buf) + "_"
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	putText(sess.Screen, 0, sh-1, prompt, style)
}

// broadcastChatLocked delivers a spoken message to players within earshot.
// Caller must hold s.mu.
func (s *Server) broadcastChatLocked(sender *Session, text string) {
	sender.AddMessage(fmt.Sprintf("You say: \"%s\"", text))

	posComp := s.world.Get(sender.PlayerID, component.CPosition)
	if posComp == nil {
		return
	}
	senderPos := posComp.(component.Position)

	for _, sess := range s.sessions {
		if sess == sender || sess.PlayerID == ecs.NilEntity {
			continue
		}
		rposComp := s.world.Get(sess.PlayerID, component.CPosition)
		if rposComp == nil {
			continue
		}
		rpos := rposComp.(component.Position)
		if chebyshev(senderPos.X, senderPos.Y, rpos.X, rpos.Y) <= ChatRange {
			sess.AddMessage(fmt.Sprintf("%s says: \"%s\"", sender.Name, text))
		}
	}
}

// runCommandLocked dispatches a slash command. Caller must hold s.mu.
func (s *Server) runCommandLocked(sess *Session, text string) {
	cmd := strings.Fields(text)[0]
	switch cmd {
	case "/soulbound", "/sb":
		s.bindHeldItemLocked(sess)
	case "/who":
		names := make([]string, 0, len(s.sessions))
		for _, other := range s.sessions {
			names = append(names, other.Name)
		}
		sess.AddMessage(fmt.Sprintf("Online (%d): %s", len(names), strings.Join(names, ", ")))
	case "/help":
		sess.AddMessage("/soulbound  bind the item in your main hand")
		sess.AddMessage("/who  list connected players")
	default:
		sess.AddMessage(fmt.Sprintf("Unknown command: %s", cmd))
	}
}

// bindHeldItemLocked runs the bind command against the main-hand item.
// Caller must hold s.mu.
func (s *Server) bindHeldItemLocked(sess *Session) {
	invComp := s.world.Get(sess.PlayerID, component.CInventory)
	if invComp == nil {
		sess.AddMessage(soulbound.MsgNotPlayer)
		return
	}
	inv := invComp.(component.Inventory)

	out := soulbound.EvaluateBind(soulbound.BindRequest{
		SenderIsPlayer: true,
		HasPermission:  sess.CanBind,
		Held:           inv.MainHand,
	})
	if out.Bound {
		inv.MainHand = out.Item
		s.world.Add(sess.PlayerID, inv)
		s.audit.Record(EventBound, sess.Name, out.Item.Name)
	}
	sess.AddMessage(out.Message)
}

package mud

import (
	"github.com/gdamore/tcell/v2"
)

// RunLoop is the per-session goroutine. It reads input, triggers renders, and
// handles modal screens (inventory, chat, help). Blocks until the player
// disconnects.
func (s *Server) RunLoop(sess *Session) {
	// Start an async input reader goroutine.
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := sess.Screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	rerender := func() {
		select {
		case sess.RenderCh <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return // screen closed / disconnected
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				sess.Screen.Sync()
				rerender()
			case *tcell.EventKey:
				action := keyToAction(ev)
				switch action {
				case ActionQuit:
					if confirmQuit(sess, eventCh) {
						return
					}
					rerender()
				case ActionInventory:
					if sess.GetDeathCountdown() == 0 {
						s.RunInventory(sess, eventCh)
						rerender()
					}
				case ActionChat:
					if sess.GetDeathCountdown() == 0 {
						s.RunChat(sess, eventCh)
						rerender()
					}
				case ActionHelp:
					if sess.GetDeathCountdown() == 0 {
						runHelp(sess, eventCh)
						rerender()
					}
				default:
					sess.SetAction(action)
				}
			}

		case <-sess.RenderCh:
			s.mu.Lock()
			s.RenderSession(sess)
			s.mu.Unlock()
			sess.Screen.Show()
		}
	}
}

// runHelp shows a keybinding reference overlay. Any key dismisses it.
func runHelp(sess *Session, eventCh <-chan tcell.Event) {
	lines := []string{
		"── Movement ──────────────────────────",
		"  Arrow keys / hjkl   Cardinal",
		"  yubn                Diagonal",
		"  5 / .               Wait a turn",
		"",
		"── Actions ───────────────────────────",
		"  g / ,               Pick up item",
		"  i                   Inventory",
		"  t / /               Chat & commands",
		"",
		"── Chat commands ─────────────────────",
		"  /soulbound          Bind held item",
		"  /who                List players",
		"",
		"── Game ──────────────────────────────",
		"  q / Esc             Disconnect",
		"  ?                   This help",
		"",
		"  [any key to close]",
	}

	header := " Controls "
	width := 42
	hdrStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	bodyStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	draw := func() {
		sess.Screen.Clear()
		sw, sh := sess.Screen.Size()
		boxH := len(lines) + 3
		x0 := (sw - width) / 2
		y0 := (sh - boxH) / 2

		drawBox(sess.Screen, x0, y0, width, boxH, borderStyle)

		hx := x0 + (width-len([]rune(header)))/2
		for i, r := range header {
			sess.Screen.SetContent(hx+i, y0, r, nil, hdrStyle)
		}
		for i, line := range lines {
			putText(sess.Screen, x0+2, y0+1+i, line, bodyStyle)
		}
		sess.Screen.Show()
	}

	for {
		draw()
		ev, ok := <-eventCh
		if !ok {
			return
		}
		switch ev.(type) {
		case *tcell.EventResize:
			sess.Screen.Sync()
		case *tcell.EventKey:
			return
		}
	}
}

// confirmQuit shows a "Really disconnect? (y/n)" prompt. Returns true if
// confirmed.
func confirmQuit(sess *Session, eventCh <-chan tcell.Event) bool {
	prompt := " Really disconnect? (y/n) "
	width := len([]rune(prompt)) + 4
	hdrStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	draw := func() {
		sess.Screen.Clear()
		sw, sh := sess.Screen.Size()
		boxH := 3
		x0 := (sw - width) / 2
		y0 := (sh - boxH) / 2

		drawBox(sess.Screen, x0, y0, width, boxH, borderStyle)
		putText(sess.Screen, x0+2, y0+1, prompt, hdrStyle)
		sess.Screen.Show()
	}

	for {
		draw()
		ev, ok := <-eventCh
		if !ok {
			return true // disconnected
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			sess.Screen.Sync()
		case *tcell.EventKey:
			switch ev.Rune() {
			case 'y', 'Y':
				return true
			default:
				return false
			}
		}
	}
}

// drawBox draws a single-line box border.
func drawBox(scr tcell.Screen, x0, y0, w, h int, style tcell.Style) {
	for col := x0; col < x0+w; col++ {
		scr.SetContent(col, y0, '─', nil, style)
		scr.SetContent(col, y0+h-1, '─', nil, style)
	}
	for row := y0; row < y0+h; row++ {
		scr.SetContent(x0, row, '│', nil, style)
		scr.SetContent(x0+w-1, row, '│', nil, style)
	}
	scr.SetContent(x0, y0, '┌', nil, style)
	scr.SetContent(x0+w-1, y0, '┐', nil, style)
	scr.SetContent(x0, y0+h-1, '└', nil, style)
	scr.SetContent(x0+w-1, y0+h-1, '┘', nil, style)
}

package mud

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// putText writes a string to the screen starting at (x, y), one rune per
// column. It stops at the right edge of the screen to avoid overflow.
func putText(scr tcell.Screen, x, y int, s string, st tcell.Style) {
	sw, _ := scr.Size()
	for _, r := range s {
		if x >= sw {
			break
		}
		scr.SetContent(x, y, r, nil, st)
		x++
	}
}

// drawDeathScreen renders the "You have fallen" overlay with the respawn
// countdown and the last few log lines, so the player still sees the
// soulbound destruction notice while dead.
func drawDeathScreen(sess *Session, ticksLeft int) {
	sess.Screen.Clear()
	w, h := sess.Screen.Size()
	red := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	purple := tcell.StyleDefault.Foreground(tcell.ColorPurple)

	msgs := []string{
		"💀 You have fallen! 💀",
		fmt.Sprintf("Respawning in %d...", ticksLeft),
	}
	for i, msg := range msgs {
		x := (w - len([]rune(msg))) / 2
		y := h/2 - 2 + i
		if x < 0 {
			x = 0
		}
		st := red
		if i > 0 {
			st = dim
		}
		putText(sess.Screen, x, y, msg, st)
	}

	// Last two log lines, centered below the countdown.
	start := len(sess.Messages) - 2
	if start < 0 {
		start = 0
	}
	for i, msg := range sess.Messages[start:] {
		x := (w - len([]rune(msg))) / 2
		if x < 0 {
			x = 0
		}
		putText(sess.Screen, x, h/2+1+i, msg, purple)
	}
	sess.Screen.Show()
}

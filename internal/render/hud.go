package render

import (
	"fmt"

	"soulbound-mud/internal/component"
	"soulbound-mud/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(w *ecs.World, playerID ecs.EntityID, playerName string, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)

	hpText := "HP: ?"
	if c := w.Get(playerID, component.CHealth); c != nil {
		hp := c.(component.Health)
		hpText = fmt.Sprintf("HP: %d/%d", hp.Current, hp.Max)
	}
	atkText := ""
	if c := w.Get(playerID, component.CCombat); c != nil {
		cb := c.(component.Combat)
		bonusATK, bonusDEF := 0, 0
		if ic := w.Get(playerID, component.CInventory); ic != nil {
			inv := ic.(component.Inventory)
			bonusATK, bonusDEF = inv.BonusATK(), inv.BonusDEF()
		}
		atkText = fmt.Sprintf("  ATK:%d(+%d) DEF:%d(+%d)", cb.Attack, bonusATK, cb.Defense, bonusDEF)
	}
	statusLine := fmt.Sprintf("[%s]  %s%s  The Hollow Barrow", playerName, hpText, atkText)
	r.drawText(0, hudY+1, statusLine, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Message log (last 3 messages).
	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	col := x
	for _, ch := range text {
		if col >= w {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}

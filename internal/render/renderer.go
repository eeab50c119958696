// Package render draws the dungeon onto a tcell screen.
package render

import (
	"sort"

	"soulbound-mud/internal/component"
	"soulbound-mud/internal/ecs"
	"soulbound-mud/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Barrow tile glyphs.
const (
	glyphWall  = "🪨"
	glyphFloor = "·"
)

// HUDRows is the number of bottom screen rows reserved for the HUD.
const HUDRows = 5

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-HUDRows),
	}
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// DrawFrame renders the map and all entities.
func (r *Renderer) DrawFrame(w *ecs.World, m *gamemap.GameMap) {
	r.screen.Clear()
	r.drawMap(m)
	r.drawEntities(w)
}

func (r *Renderer) drawMap(m *gamemap.GameMap) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	dim := style.Foreground(tcell.ColorGray)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			switch m.At(x, y).Kind {
			case gamemap.TileWall:
				r.putGlyph(sx, sy, glyphWall, style)
			default:
				r.putGlyph(sx, sy, glyphFloor, dim)
			}
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order int
	pos   component.Position
	rend  component.Renderable
}

// drawEntities renders all entities with Renderable + Position, ordered by
// RenderOrder (lower = drawn first / behind).
func (r *Renderer) drawEntities(w *ecs.World) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		entities = append(entities, renderableEntity{
			order: w.Get(id, component.CRenderable).(component.Renderable).RenderOrder,
			pos:   w.Get(id, component.CPosition).(component.Position),
			rend:  w.Get(id, component.CRenderable).(component.Renderable),
		})
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i].order < entities[j].order })

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.FGColor).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

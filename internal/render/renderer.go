// Package render draws the game onto a tcell screen.
package render

import (
	"sort"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/gamemap"
	"delve-roguelike/internal/palette"
	"delve-roguelike/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDHeight is the number of rows below the map reserved for the status
// panel and message log.
const HUDHeight = 7

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	arena  *EffectArena
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(1, h-HUDHeight)),
		arena:  &EffectArena{},
	}
}

// Effects returns the arena that actions emit into.
func (r *Renderer) Effects() *EffectArena { return r.arena }

// Resize adapts the viewport after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(1, h-HUDHeight)
}

// ScreenToWorld converts a screen cell to a map tile.
func (r *Renderer) ScreenToWorld(sx, sy int) (int, int) {
	return r.camera.ScreenToWorld(sx, sy)
}

// DrawFrame renders the map, entities and effects, and spends one effect
// frame. The caller draws the HUD and overlays and then calls Show.
func (r *Renderer) DrawFrame(s *world.State) {
	r.screen.Clear()
	if pos, ok := s.Position(s.Player); ok {
		r.camera.Fit(pos.X, pos.Y, s.Map.Width, s.Map.Height)
	}
	r.drawMap(s.Map)
	r.drawEntities(s.World, s.Map)
	r.drawEffects()
	r.arena.Tick()
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// drawMap renders every visible or remembered tile.
func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	gmap.ForEach(func(x, y int, tile *gamemap.Tile) {
		if !tile.Visible && !tile.Explored {
			return
		}
		if sx, sy, ok := r.camera.WorldToScreen(x, y); ok {
			glyph, style := tileStyle(tile)
			r.screen.SetContent(sx, sy, glyph, nil, style)
		}
	})
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	pos  component.Position
	rend component.Renderable
}

// drawEntities renders all entities with Renderable + Position on visible
// tiles, lower RenderOrder first so actors end up on top of corpses.
func (r *Renderer) drawEntities(w *ecs.World, gmap *gamemap.GameMap) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))

	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !gmap.IsVisible(pos.X, pos.Y) {
			continue
		}
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		entities = append(entities, renderableEntity{pos: pos, rend: rend})
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].rend.RenderOrder < entities[j].rend.RenderOrder
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		_, bg, _ := r.cellStyle(sx, sy).Decompose()
		style := tcell.StyleDefault.Foreground(e.rend.FGColor).Background(bg)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

func (r *Renderer) drawEffects() {
	for _, e := range r.arena.Active() {
		var tiles []gamemap.Point
		switch e.Kind {
		case world.EffectLine:
			tiles = linePoints(e.From, e.To)
		case world.EffectArea:
			tiles = e.Tiles
		}
		for _, p := range tiles {
			sx, sy, onScreen := r.camera.WorldToScreen(p.X, p.Y)
			if !onScreen {
				continue
			}
			r.tint(sx, sy, e.Color)
		}
	}
}

// tint replaces the background of a screen cell, keeping its glyph.
func (r *Renderer) tint(sx, sy int, bg tcell.Color) {
	mainc, combc, style, _ := r.screen.GetContent(sx, sy)
	if mainc == 0 {
		mainc = ' '
	}
	r.screen.SetContent(sx, sy, mainc, combc, style.Background(bg).Foreground(palette.Black))
}

func (r *Renderer) cellStyle(sx, sy int) tcell.Style {
	_, _, style, _ := r.screen.GetContent(sx, sy)
	return style
}

// putGlyph draws a single glyph at screen position (x, y). Wide glyphs get
// their second column filled to avoid rendering artifacts.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

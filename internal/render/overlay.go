package render

import (
	"delve-roguelike/internal/action"
	"delve-roguelike/internal/gamemap"
	"delve-roguelike/internal/palette"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// WorldToScreen converts a map tile to a screen cell.
func (r *Renderer) WorldToScreen(wx, wy int) (int, int, bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// DrawCursor highlights the targeted tile and, for area targeting, every
// tile within radius of it.
func (r *Renderer) DrawCursor(gmap *gamemap.GameMap, cursor gamemap.Point, radius int) {
	if radius > 0 {
		for _, p := range action.DiscTiles(gmap, cursor.X, cursor.Y, radius) {
			if sx, sy, ok := r.camera.WorldToScreen(p.X, p.Y); ok {
				r.tint(sx, sy, palette.Radius)
			}
		}
	}
	if sx, sy, ok := r.camera.WorldToScreen(cursor.X, cursor.Y); ok {
		r.tint(sx, sy, palette.Cursor)
	}
}

// DrawMenu draws a bordered box with a title and lettered options.
// An empty option list shows "(Empty)".
func (r *Renderer) DrawMenu(title string, options []string) {
	lines := make([]string, 0, len(options))
	for i, opt := range options {
		lines = append(lines, "("+string(rune('a'+i))+") "+opt)
	}
	if len(lines) == 0 {
		lines = append(lines, "(Empty)")
	}
	r.drawBox(title, lines)
}

// DrawMessageBox draws a bordered box with free-form lines.
func (r *Renderer) DrawMessageBox(title string, lines []string) {
	r.drawBox(title, lines)
}

func (r *Renderer) drawBox(title string, lines []string) {
	screenW, _ := r.screen.Size()
	width := runewidth.StringWidth(title) + 4
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l)+4)
	}
	height := len(lines) + 2
	x := max(0, (screenW-width)/2)
	y := 1

	border := tcell.StyleDefault.Foreground(palette.White).Background(palette.Black)
	for dy := range height {
		for dx := range width {
			ch := ' '
			switch {
			case (dy == 0 || dy == height-1) && (dx == 0 || dx == width-1):
				ch = '+'
			case dy == 0 || dy == height-1:
				ch = '-'
			case dx == 0 || dx == width-1:
				ch = '|'
			}
			r.screen.SetContent(x+dx, y+dy, ch, nil, border)
		}
	}
	r.drawText(x+2, y, title, border.Foreground(palette.WelcomeText))
	for i, l := range lines {
		r.drawText(x+2, y+1+i, l, border)
	}
}

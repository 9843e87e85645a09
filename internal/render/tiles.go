package render

import (
	"delve-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// tileLook is how one tile kind is drawn, lit and remembered.
type tileLook struct {
	glyph  rune
	fg, bg tcell.Color
	darkFG tcell.Color
	darkBG tcell.Color
}

var tileLooks = map[gamemap.TileKind]tileLook{
	gamemap.TileFloor: {
		glyph:  ' ',
		fg:     tcell.ColorWhite,
		bg:     tcell.NewRGBColor(200, 180, 50),
		darkFG: tcell.ColorWhite,
		darkBG: tcell.NewRGBColor(50, 50, 150),
	},
	gamemap.TileWall: {
		glyph:  ' ',
		fg:     tcell.ColorWhite,
		bg:     tcell.NewRGBColor(130, 110, 50),
		darkFG: tcell.ColorWhite,
		darkBG: tcell.NewRGBColor(0, 0, 100),
	},
	gamemap.TileStairsDown: {
		glyph:  '>',
		fg:     tcell.NewRGBColor(255, 255, 255),
		bg:     tcell.NewRGBColor(200, 180, 50),
		darkFG: tcell.NewRGBColor(0, 0, 100),
		darkBG: tcell.NewRGBColor(50, 50, 150),
	},
}

// tileStyle returns the glyph and style for a tile that has been seen.
func tileStyle(t *gamemap.Tile) (rune, tcell.Style) {
	look, ok := tileLooks[t.Kind]
	if !ok {
		look = tileLooks[gamemap.TileFloor]
	}
	if t.Visible {
		return look.glyph, tcell.StyleDefault.Foreground(look.fg).Background(look.bg)
	}
	return look.glyph, tcell.StyleDefault.Foreground(look.darkFG).Background(look.darkBG)
}

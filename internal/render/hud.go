package render

import (
	"fmt"
	"strings"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/palette"
	"delve-roguelike/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	barWidth = 20
	logX     = 21
)

// DrawHUD renders the health bar, dungeon level and the most recent
// messages below the map.
func (r *Renderer) DrawHUD(s *world.State) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - HUDHeight + 1

	if f, ok := s.Fighter(s.Player); ok {
		r.drawBar(0, hudY, f.HP, f.MaxHP, barWidth)
	}
	r.drawText(0, hudY+2, fmt.Sprintf("Dungeon level: %d", s.Floor), tcell.StyleDefault.Foreground(palette.White))

	logW := max(10, screenW-logX)
	r.drawMessages(logX, hudY, logW, HUDHeight-2, s.Log.Messages())
}

// drawBar draws a filled/empty bar with an "HP: cur/max" label.
func (r *Renderer) drawBar(x, y, value, maximum, width int) {
	filled := 0
	if maximum > 0 {
		filled = value * width / maximum
	}
	for i := range width {
		bg := palette.BarEmpty
		if i < filled {
			bg = palette.BarFilled
		}
		r.screen.SetContent(x+i, y, ' ', nil, tcell.StyleDefault.Background(bg))
	}
	label := fmt.Sprintf("HP: %d/%d", value, maximum)
	for i, ch := range label {
		if i >= width {
			break
		}
		bg := palette.BarEmpty
		if i < filled {
			bg = palette.BarFilled
		}
		r.screen.SetContent(x+1+i, y, ch, nil, tcell.StyleDefault.Foreground(palette.BarText).Background(bg))
	}
}

// drawMessages fills a box from the bottom up with the newest messages,
// wrapping long ones.
func (r *Renderer) drawMessages(x, y, width, height int, messages []world.Message) {
	row := height - 1
	for i := len(messages) - 1; i >= 0 && row >= 0; i-- {
		lines := wrap(messages[i].FullText(), width)
		style := tcell.StyleDefault.Foreground(messages[i].Color)
		for j := len(lines) - 1; j >= 0 && row >= 0; j-- {
			r.drawText(x, y+row, lines[j], style)
			row--
		}
	}
}

// DrawNamesAt shows the names of whatever is visible on the tile under
// screen cell (sx, sy) on the row above the health bar.
func (r *Renderer) DrawNamesAt(s *world.State, sx, sy int) {
	x, y := r.camera.ScreenToWorld(sx, sy)
	if !s.Map.IsVisible(x, y) {
		return
	}
	_, screenH := r.screen.Size()
	var names []string
	for _, id := range s.World.Query(component.CPosition, component.CNamed) {
		if p, ok := s.Position(id); ok && p.X == x && p.Y == y {
			names = append(names, s.Name(id))
		}
	}
	if len(names) == 0 {
		return
	}
	text := runewidth.Truncate(strings.Join(names, ", "), barWidth, "")
	r.drawText(0, screenH-HUDHeight, text, tcell.StyleDefault.Foreground(palette.White))
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}

// wrap breaks text into lines at most width cells wide, splitting on
// spaces where possible.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curW := 0
	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		for ww > width {
			if curW > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
				curW = 0
			}
			head := runewidth.Truncate(word, width, "")
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		switch {
		case curW == 0:
			cur.WriteString(word)
			curW = ww
		case curW+1+ww <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + ww
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curW = ww
		}
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

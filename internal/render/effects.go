package render

import (
	"delve-roguelike/internal/gamemap"
	"delve-roguelike/internal/world"
)

// EffectArena holds the short-lived visual effects emitted by actions: at
// most one line and one area at a time. Each Draw pass spends one frame.
// It implements world.EffectSink.
type EffectArena struct {
	line *world.Effect
	area *world.Effect
}

// Emit stores e, replacing any active effect of the same kind.
func (a *EffectArena) Emit(e world.Effect) {
	if e.Frames <= 0 {
		return
	}
	switch e.Kind {
	case world.EffectLine:
		a.line = &e
	case world.EffectArea:
		a.area = &e
	}
}

// Active returns the effects still on screen, area first.
func (a *EffectArena) Active() []world.Effect {
	var out []world.Effect
	if a.area != nil {
		out = append(out, *a.area)
	}
	if a.line != nil {
		out = append(out, *a.line)
	}
	return out
}

// Busy reports whether any effect is still running.
func (a *EffectArena) Busy() bool {
	return a.line != nil || a.area != nil
}

// Tick spends one frame of every active effect and drops finished ones.
func (a *EffectArena) Tick() {
	a.line = tick(a.line)
	a.area = tick(a.area)
}

func tick(e *world.Effect) *world.Effect {
	if e == nil {
		return nil
	}
	e.Frames--
	if e.Frames <= 0 {
		return nil
	}
	return e
}

// linePoints returns the tiles on the straight line from a to b, both ends
// included (Bresenham).
func linePoints(a, b gamemap.Point) []gamemap.Point {
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	errv := dx + dy
	x, y := a.X, a.Y
	var pts []gamemap.Point
	for {
		pts = append(pts, gamemap.Point{X: x, Y: y})
		if x == b.X && y == b.Y {
			return pts
		}
		e2 := 2 * errv
		if e2 >= dy {
			errv += dy
			x += sx
		}
		if e2 <= dx {
			errv += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

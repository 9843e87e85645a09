package system

import (
	"delve-roguelike/internal/gamemap"
	"delve-roguelike/internal/world"
)

// DefaultFOVRadius is how far the player sees on a lit floor.
const DefaultFOVRadius = 8

// Octant multipliers (xx, xy, yx, yy) mapping a row sweep to map offsets.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// UpdateFOV recomputes what the player sees. Actions only read the
// resulting Visible flags; they never recompute them.
func UpdateFOV(s *world.State, radius int) {
	pos, ok := s.Position(s.Player)
	if !ok {
		ClearVisibility(s.Map)
		return
	}
	ComputeFOV(s.Map, pos.X, pos.Y, radius)
}

// ClearVisibility unlights every tile, leaving Explored untouched.
func ClearVisibility(gmap *gamemap.GameMap) {
	gmap.ForEach(func(_, _ int, t *gamemap.Tile) { t.Visible = false })
}

// ComputeFOV lights the tiles visible from (ox, oy) using recursive
// shadowcasting. Every lit tile is also marked explored.
func ComputeFOV(gmap *gamemap.GameMap, ox, oy, radius int) {
	ClearVisibility(gmap)
	if !gmap.InBounds(ox, oy) {
		return
	}
	origin := gmap.At(ox, oy)
	origin.Visible = true
	origin.Explored = true

	for _, m := range octants {
		castLight(gmap, ox, oy, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3])
	}
}

// castLight casts light for one octant using recursive shadowcasting.
// Row j is the distance from the origin along the main axis; dx sweeps the
// row from -j to 0. lSlope and rSlope bound the cell's edges.
func castLight(gmap *gamemap.GameMap, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			inBounds := gmap.InBounds(wx, wy)
			if inBounds && dx*dx+dy*dy < radiusSq {
				t := gmap.At(wx, wy)
				t.Visible = true
				t.Explored = true
			}

			opaque := !inBounds || !gmap.IsTransparent(wx, wy)
			switch {
			case blocked && opaque:
				newStart = rSlope
			case blocked:
				blocked = false
				start = newStart
			case opaque && j < radius:
				// A wall starts here: scan the part of the octant past it.
				blocked = true
				castLight(gmap, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

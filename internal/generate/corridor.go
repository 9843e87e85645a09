package generate

import (
	"math/rand"

	"delve-roguelike/internal/gamemap"
)

// carveTunnel digs an L-shaped tunnel between two points. A coin flip picks
// which leg comes first.
func carveTunnel(gmap *gamemap.GameMap, from, to gamemap.Point, rng *rand.Rand) {
	for _, p := range tunnelPath(from, to, rng.Intn(2) == 0) {
		if gmap.InBounds(p.X, p.Y) {
			gmap.Set(p.X, p.Y, gamemap.MakeFloor())
		}
	}
}

// tunnelPath lists every tile of the L from one point to another, both
// ends included, each tile orthogonally adjacent to the previous one.
func tunnelPath(from, to gamemap.Point, horizontalFirst bool) []gamemap.Point {
	corner := gamemap.Point{X: from.X, Y: to.Y}
	if horizontalFirst {
		corner = gamemap.Point{X: to.X, Y: from.Y}
	}
	path := walk(nil, from, corner)
	return walk(path[:len(path)-1], corner, to)
}

// walk appends the straight run from a to b, inclusive, to path.
func walk(path []gamemap.Point, a, b gamemap.Point) []gamemap.Point {
	dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
	for p := a; ; p.X, p.Y = p.X+dx, p.Y+dy {
		path = append(path, p)
		if p == b {
			return path
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// carveRoom turns the inside of r into floor, leaving its outline as wall.
func carveRoom(gmap *gamemap.GameMap, r gamemap.Rect) {
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			if gmap.InBounds(x, y) {
				gmap.Set(x, y, gamemap.MakeFloor())
			}
		}
	}
}

package generate

import (
	"math/rand"
	"testing"

	"delve-roguelike/internal/gamemap"
)

func TestTunnelPath(t *testing.T) {
	tests := []struct {
		name            string
		from, to        gamemap.Point
		horizontalFirst bool
		corner          gamemap.Point
		length          int
	}{
		{"horizontal then down", gamemap.Point{X: 2, Y: 2}, gamemap.Point{X: 10, Y: 8}, true, gamemap.Point{X: 10, Y: 2}, 15},
		{"vertical then right", gamemap.Point{X: 2, Y: 2}, gamemap.Point{X: 10, Y: 8}, false, gamemap.Point{X: 2, Y: 8}, 15},
		{"leftward and up", gamemap.Point{X: 9, Y: 9}, gamemap.Point{X: 3, Y: 4}, true, gamemap.Point{X: 3, Y: 9}, 12},
		{"straight line", gamemap.Point{X: 1, Y: 5}, gamemap.Point{X: 6, Y: 5}, false, gamemap.Point{X: 1, Y: 5}, 6},
		{"same point", gamemap.Point{X: 4, Y: 4}, gamemap.Point{X: 4, Y: 4}, true, gamemap.Point{X: 4, Y: 4}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tunnelPath(tt.from, tt.to, tt.horizontalFirst)
			if len(path) != tt.length {
				t.Fatalf("len = %d, want %d: %v", len(path), tt.length, path)
			}
			if path[0] != tt.from || path[len(path)-1] != tt.to {
				t.Fatalf("path runs %v..%v, want %v..%v", path[0], path[len(path)-1], tt.from, tt.to)
			}
			seen := map[gamemap.Point]bool{}
			hasCorner := false
			for i, p := range path {
				if seen[p] {
					t.Fatalf("tile %v repeated", p)
				}
				seen[p] = true
				hasCorner = hasCorner || p == tt.corner
				if i > 0 {
					q := path[i-1]
					if abs(p.X-q.X)+abs(p.Y-q.Y) != 1 {
						t.Fatalf("step %v -> %v is not orthogonal", q, p)
					}
				}
			}
			if !hasCorner {
				t.Fatalf("path misses corner %v", tt.corner)
			}
		})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestCarveTunnelClipsToMap(t *testing.T) {
	for seed := range 6 {
		gmap := gamemap.New(10, 10)
		carveTunnel(gmap, gamemap.Point{X: 2, Y: 2}, gamemap.Point{X: 14, Y: 7}, rand.New(rand.NewSource(int64(seed))))
		if !gmap.IsWalkable(2, 2) {
			t.Fatalf("seed %d: tunnel start not carved", seed)
		}
	}
}

func TestCarveRoomKeepsOutline(t *testing.T) {
	gmap := gamemap.New(20, 20)
	r := gamemap.NewRect(2, 3, 6, 5)
	carveRoom(gmap, r)

	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			inner := x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
			if gmap.IsWalkable(x, y) != inner {
				t.Fatalf("(%d,%d) walkable=%v, want %v", x, y, gmap.IsWalkable(x, y), inner)
			}
		}
	}
}

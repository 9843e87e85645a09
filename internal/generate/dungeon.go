// Package generate builds dungeon floors: rectangular rooms joined by
// L-shaped tunnels, stocked from per-floor weighted spawn tables, with a
// block of down stairs in the last room.
package generate

import (
	"math/rand"

	"delve-roguelike/internal/factory"
	"delve-roguelike/internal/gamemap"
)

// Config drives generation of one floor.
type Config struct {
	MapWidth, MapHeight int
	MaxRooms            int
	RoomMin, RoomMax    int
	Rand                *rand.Rand
}

// Spawn is one prototype to create on the new floor.
type Spawn struct {
	Kind factory.Kind
	X, Y int
}

// Floor is a generated level before any entity is created.
type Floor struct {
	Map    *gamemap.GameMap
	Start  gamemap.Point
	Spawns []Spawn
}

// Generate lays out the map for the given floor number and picks what to
// spawn in each room. The first room holds the player and is stocked like
// any other.
func Generate(cfg *Config, floor int) *Floor {
	rng := cfg.Rand
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	out := &Floor{Map: gmap}
	occupied := make(map[gamemap.Point]bool)

	for range cfg.MaxRooms {
		w := cfg.RoomMin + rng.Intn(cfg.RoomMax-cfg.RoomMin+1)
		h := cfg.RoomMin + rng.Intn(cfg.RoomMax-cfg.RoomMin+1)
		if w >= cfg.MapWidth || h >= cfg.MapHeight {
			continue
		}
		x := rng.Intn(cfg.MapWidth - w)
		y := rng.Intn(cfg.MapHeight - h)
		room := gamemap.NewRect(x, y, w, h)

		overlaps := false
		for _, other := range gmap.Rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(gmap, room)
		cx, cy := room.Center()
		if len(gmap.Rooms) == 0 {
			out.Start = gamemap.Point{X: cx, Y: cy}
			occupied[out.Start] = true
		} else {
			px, py := gmap.Rooms[len(gmap.Rooms)-1].Center()
			carveTunnel(gmap, gamemap.Point{X: px, Y: py}, gamemap.Point{X: cx, Y: cy}, rng)
		}
		out.Spawns = append(out.Spawns, stockRoom(room, floor, rng, occupied)...)
		gmap.Rooms = append(gmap.Rooms, room)
	}

	if n := len(gmap.Rooms); n > 0 {
		cx, cy := gmap.Rooms[n-1].Center()
		placeStairs(gmap, cx, cy)
	}
	return out
}

// stockRoom picks monsters then items for room. A pick that lands on an
// occupied tile is dropped.
func stockRoom(room gamemap.Rect, floor int, rng *rand.Rand, occupied map[gamemap.Point]bool) []Spawn {
	monsters := rng.Intn(maxForFloor(maxMonstersByFloor, floor) + 1)
	items := rng.Intn(maxForFloor(maxItemsByFloor, floor) + 1)

	kinds := pickWeighted(rng, chancesForFloor(enemyChances, floor), monsters)
	kinds = append(kinds, pickWeighted(rng, chancesForFloor(itemChances, floor), items)...)

	var spawns []Spawn
	for _, k := range kinds {
		p := gamemap.Point{
			X: room.X1 + 1 + rng.Intn(room.X2-room.X1-1),
			Y: room.Y1 + 1 + rng.Intn(room.Y2-room.Y1-1),
		}
		if occupied[p] {
			continue
		}
		occupied[p] = true
		spawns = append(spawns, Spawn{Kind: k, X: p.X, Y: p.Y})
	}
	return spawns
}

// placeStairs turns a 2-wide, 3-tall block whose right column runs through
// (cx, cy) into down stairs.
func placeStairs(gmap *gamemap.GameMap, cx, cy int) {
	for dx := -1; dx <= 0; dx++ {
		for dy := -1; dy <= 1; dy++ {
			gmap.AddDownstairs(cx+dx, cy+dy)
		}
	}
}

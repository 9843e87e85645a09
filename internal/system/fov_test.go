package system

import (
	"testing"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/gamemap"
	"delve-roguelike/internal/world"
)

// openMap creates a fully-open (all floor) map.
func openMap(width, height int) *gamemap.GameMap {
	gmap := gamemap.New(width, height)
	for y := range height {
		for x := range width {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	return gmap
}

func TestFOVOriginAlwaysVisible(t *testing.T) {
	gmap := openMap(20, 20)
	ComputeFOV(gmap, 5, 5, 5)

	if !gmap.At(5, 5).Visible {
		t.Error("viewer's own tile must always be visible")
	}
	if !gmap.At(5, 5).Explored {
		t.Error("viewer's own tile must be marked explored")
	}
}

func TestFOVClearsOldVisibility(t *testing.T) {
	gmap := openMap(20, 20)
	for y := range 20 {
		for x := range 20 {
			gmap.At(x, y).Visible = true
		}
	}
	ComputeFOV(gmap, 5, 5, 3)

	if gmap.At(19, 19).Visible {
		t.Error("ComputeFOV should clear stale visibility before recalculating")
	}
	if gmap.At(19, 19).Explored {
		t.Error("clearing visibility must not mark tiles explored")
	}
}

func TestFOVRadius(t *testing.T) {
	cases := []struct {
		name    string
		radius  int
		x, y    int
		visible bool
	}{
		{"distance 3 inside radius 5", 5, 10, 7, true},
		{"distance 3 west", 5, 7, 10, true},
		{"distance 5 outside radius 4", 4, 10, 15, false},
		{"distance 5 east outside radius 4", 4, 15, 10, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gmap := openMap(20, 20)
			ComputeFOV(gmap, 10, 10, tc.radius)
			if got := gmap.At(tc.x, tc.y).Visible; got != tc.visible {
				t.Errorf("Visible(%d,%d) = %v; want %v", tc.x, tc.y, got, tc.visible)
			}
		})
	}
}

func TestFOVWallBlocksLight(t *testing.T) {
	gmap := openMap(20, 20)
	gmap.Set(10, 8, gamemap.MakeWall())

	ComputeFOV(gmap, 10, 10, 8)

	if !gmap.At(10, 8).Visible {
		t.Error("the wall tile at (10,8) should be visible")
	}
	if gmap.At(10, 7).Visible {
		t.Error("tile (10,7) behind the wall at (10,8) should not be visible")
	}
}

func TestUpdateFOVFollowsPlayer(t *testing.T) {
	w := ecs.NewWorld()
	s := world.New(w, openMap(30, 10), nil)
	s.Player = w.CreateEntity()
	w.Add(s.Player, component.Position{X: 2, Y: 5})

	UpdateFOV(s, 4)
	if !s.Map.IsVisible(4, 5) || s.Map.IsVisible(20, 5) {
		t.Fatal("unexpected visibility around (2,5)")
	}

	w.Add(s.Player, component.Position{X: 20, Y: 5})
	UpdateFOV(s, 4)
	if s.Map.IsVisible(4, 5) {
		t.Error("old surroundings should be dark after moving")
	}
	if !s.Map.IsVisible(20, 5) || !s.Map.At(4, 5).Explored {
		t.Error("new tile should be lit and old tile should stay explored")
	}
}

func TestUpdateFOVNoPlayerPositionNoPanic(t *testing.T) {
	w := ecs.NewWorld()
	s := world.New(w, openMap(10, 10), nil)
	s.Player = w.CreateEntity() // no Position added

	UpdateFOV(s, 5)
	if s.Map.IsVisible(0, 0) {
		t.Error("nothing should be visible without a viewer position")
	}
}

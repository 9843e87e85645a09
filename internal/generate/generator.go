package generate

import (
	"fmt"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/factory"
	"delve-roguelike/internal/logger"
	"delve-roguelike/internal/world"

	"github.com/sirupsen/logrus"
)

// Generator replaces a game's floor in place. It satisfies
// world.FloorGenerator.
type Generator struct {
	MapWidth, MapHeight int
	MaxRooms            int
	RoomMin, RoomMax    int
}

// GenerateFloor advances to the next floor.
func (g *Generator) GenerateFloor(s *world.State) error {
	s.Floor++
	return g.BuildFloor(s)
}

// BuildFloor generates the map for s.Floor, clears the old floor's
// entities, moves the player to the start tile and spawns the new floor's
// monsters and items. The player keeps everything it carries.
func (g *Generator) BuildFloor(s *world.State) error {
	cfg := &Config{
		MapWidth:  g.MapWidth,
		MapHeight: g.MapHeight,
		MaxRooms:  g.MaxRooms,
		RoomMin:   g.RoomMin,
		RoomMax:   g.RoomMax,
		Rand:      s.Rand,
	}
	f := Generate(cfg, s.Floor)
	if len(f.Map.Rooms) == 0 {
		return fmt.Errorf("generate floor %d: no room fits a %dx%d map", s.Floor, g.MapWidth, g.MapHeight)
	}

	s.ClearFloor()
	s.Map = f.Map
	if s.Player != ecs.NilEntity {
		s.World.Add(s.Player, component.Position{X: f.Start.X, Y: f.Start.Y})
	}

	actors, items := 0, 0
	for _, sp := range f.Spawns {
		if _, err := factory.Spawn(s.World, sp.Kind, sp.X, sp.Y); err != nil {
			return fmt.Errorf("generate floor %d: %w", s.Floor, err)
		}
		if sp.Kind.IsActor() {
			actors++
		} else {
			items++
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"floor":  s.Floor,
		"rooms":  len(f.Map.Rooms),
		"actors": actors,
		"items":  items,
	}).Info("floor generated")
	return nil
}

package system

import (
	"math/rand"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/world"
)

func newState() *world.State {
	w := ecs.NewWorld()
	return world.New(w, openMap(10, 10), rand.New(rand.NewSource(1)))
}

func addFighter(s *world.State, name string, x, y, hp, power, defense int) ecs.EntityID {
	id := s.World.CreateEntity()
	s.World.Add(id, component.Named{Name: name})
	s.World.Add(id, component.Position{X: x, Y: y})
	s.World.Add(id, component.Fighter{HP: hp, MaxHP: hp, BasePower: power, BaseDefense: defense})
	s.World.Add(id, component.TagBlocking{})
	return id
}

func addPlayer(s *world.State, x, y int) ecs.EntityID {
	id := addFighter(s, "Player", x, y, 30, 3, 1)
	s.World.Add(id, component.TagPlayer{})
	s.World.Add(id, component.Inventory{Capacity: 26})
	s.World.Add(id, component.Equipment{})
	s.World.Add(id, component.Level{Current: 1, LevelUpBase: LevelUpBase, LevelUpFactor: LevelUpFactor})
	s.Player = id
	return id
}

func addItem(s *world.State, name string) ecs.EntityID {
	id := s.World.CreateEntity()
	s.World.Add(id, component.Named{Name: name})
	s.World.Add(id, component.TagItem{})
	return id
}

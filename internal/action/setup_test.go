package action

import (
	"math/rand"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/gamemap"
	"delve-roguelike/internal/world"
)

// newState returns a 20x20 open floor with every tile lit.
func newState() *world.State {
	gmap := gamemap.New(20, 20)
	for y := range 20 {
		for x := range 20 {
			gmap.Set(x, y, gamemap.MakeFloor())
			gmap.At(x, y).Visible = true
		}
	}
	return world.New(ecs.NewWorld(), gmap, rand.New(rand.NewSource(1)))
}

func addFighter(s *world.State, name string, x, y, hp, power, defense int) ecs.EntityID {
	id := s.World.CreateEntity()
	s.World.Add(id, component.Named{Name: name})
	s.World.Add(id, component.Position{X: x, Y: y})
	s.World.Add(id, component.Fighter{HP: hp, MaxHP: hp, BasePower: power, BaseDefense: defense})
	s.World.Add(id, component.TagBlocking{})
	return id
}

func addOrc(s *world.State, x, y int) ecs.EntityID {
	id := addFighter(s, "Orc", x, y, 10, 3, 0)
	s.World.Add(id, component.AI{Kind: component.AIHostile})
	s.World.Add(id, component.Level{XPGiven: 35})
	return id
}

func addPlayer(s *world.State, x, y int) ecs.EntityID {
	id := addFighter(s, "Player", x, y, 30, 3, 1)
	s.World.Add(id, component.TagPlayer{})
	s.World.Add(id, component.Inventory{Capacity: 26})
	s.World.Add(id, component.Equipment{})
	s.World.Add(id, component.Level{Current: 1, LevelUpBase: 200, LevelUpFactor: 150})
	s.Player = id
	return id
}

// addItem places an item on the map when x >= 0, otherwise leaves it
// unplaced for giveItem.
func addItem(s *world.State, name string, x, y int, comps ...ecs.Component) ecs.EntityID {
	id := s.World.CreateEntity()
	s.World.Add(id, component.Named{Name: name})
	s.World.Add(id, component.TagItem{})
	if x >= 0 {
		s.World.Add(id, component.Position{X: x, Y: y})
	}
	for _, c := range comps {
		s.World.Add(id, c)
	}
	return id
}

// giveItem creates an item directly in holder's inventory.
func giveItem(s *world.State, holder ecs.EntityID, name string, comps ...ecs.Component) ecs.EntityID {
	id := addItem(s, name, -1, -1, comps...)
	inv := s.World.Get(holder, component.CInventory).(component.Inventory)
	s.World.Add(holder, inv.With(id))
	return id
}

func hp(s *world.State, id ecs.EntityID) int {
	f, _ := s.Fighter(id)
	return f.HP
}

func lastMessage(s *world.State) string {
	return s.Log.Last().Text
}

type recordSink struct {
	effects []world.Effect
}

func (r *recordSink) Emit(e world.Effect) { r.effects = append(r.effects, e) }

type countingFloors struct {
	calls int
	err   error
}

func (c *countingFloors) GenerateFloor(s *world.State) error {
	c.calls++
	if c.err != nil {
		return c.err
	}
	s.Floor++
	return nil
}

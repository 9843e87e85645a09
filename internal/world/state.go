// Package world holds the shared game state mutated by actions: the entity
// registry, the current floor's map, the message log and the collaborators
// used for rendering hints and floor changes.
package world

import (
	"errors"
	"math/rand"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// ErrNoFloorGenerator is returned by NextFloor when no generator is set.
var ErrNoFloorGenerator = errors.New("world: no floor generator")

// State is everything an action may read or change.
type State struct {
	World  *ecs.World
	Map    *gamemap.GameMap
	Player ecs.EntityID
	Log    *MessageLog
	Rand   *rand.Rand

	// Floor is the 1-based depth of the current map.
	Floor int

	Effects EffectSink
	Floors  FloorGenerator
}

// New creates a State around an existing registry and map.
func New(w *ecs.World, gmap *gamemap.GameMap, rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &State{
		World: w,
		Map:   gmap,
		Log:   &MessageLog{},
		Rand:  rng,
		Floor: 1,
	}
}

// AddMessage appends player-facing feedback to the log.
func (s *State) AddMessage(text string, fg tcell.Color) {
	s.Log.Add(text, fg)
}

// Emit forwards a rendering hint to the presentation layer, if any.
func (s *State) Emit(e Effect) {
	if s.Effects != nil {
		s.Effects.Emit(e)
	}
}

// NextFloor asks the floor generator to replace the current floor.
func (s *State) NextFloor() error {
	if s.Floors == nil {
		return ErrNoFloorGenerator
	}
	return s.Floors.GenerateFloor(s)
}

// IsPlayer reports whether id is the player.
func (s *State) IsPlayer(id ecs.EntityID) bool {
	return id != ecs.NilEntity && id == s.Player
}

// Position returns the tile an entity stands on.
func (s *State) Position(id ecs.EntityID) (component.Position, bool) {
	c := s.World.Get(id, component.CPosition)
	if c == nil {
		return component.Position{}, false
	}
	return c.(component.Position), true
}

// Fighter returns the entity's combat stats.
func (s *State) Fighter(id ecs.EntityID) (component.Fighter, bool) {
	c := s.World.Get(id, component.CFighter)
	if c == nil {
		return component.Fighter{}, false
	}
	return c.(component.Fighter), true
}

// Status returns the entity's transient flags; the zero Status if none.
func (s *State) Status(id ecs.EntityID) component.Status {
	c := s.World.Get(id, component.CStatus)
	if c == nil {
		return component.Status{}
	}
	return c.(component.Status)
}

// Name returns the display name of an entity.
func (s *State) Name(id ecs.EntityID) string {
	c := s.World.Get(id, component.CNamed)
	if c == nil {
		return "something"
	}
	return c.(component.Named).Name
}

// Actors returns living fighters placed on the map, in registry order.
func (s *State) Actors() []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range s.World.Query(component.CFighter, component.CPosition) {
		if s.World.Get(id, component.CFighter).(component.Fighter).Alive() {
			out = append(out, id)
		}
	}
	return out
}

// Items returns items lying on the map, in registry order.
func (s *State) Items() []ecs.EntityID {
	return s.World.Query(component.CTagItem, component.CPosition)
}

// ItemsAt returns the items lying on (x, y).
func (s *State) ItemsAt(x, y int) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range s.Items() {
		if p, _ := s.Position(id); p.X == x && p.Y == y {
			out = append(out, id)
		}
	}
	return out
}

// ActorAt returns the living actor on (x, y), or NilEntity.
func (s *State) ActorAt(x, y int) ecs.EntityID {
	for _, id := range s.Actors() {
		if p, _ := s.Position(id); p.X == x && p.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}

// BlockingEntityAt returns the entity occupying (x, y), or NilEntity.
func (s *State) BlockingEntityAt(x, y int) ecs.EntityID {
	for _, id := range s.World.Query(component.CTagBlocking, component.CPosition) {
		if p, _ := s.Position(id); p.X == x && p.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}

// Holder returns the entity whose inventory holds item, or NilEntity.
func (s *State) Holder(item ecs.EntityID) ecs.EntityID {
	for _, id := range s.World.Query(component.CInventory) {
		if s.World.Get(id, component.CInventory).(component.Inventory).Contains(item) {
			return id
		}
	}
	return ecs.NilEntity
}

// ClearFloor destroys every entity except the player and the items the
// player carries, in preparation for a new map.
func (s *State) ClearFloor() {
	keep := map[ecs.EntityID]bool{s.Player: true}
	if c := s.World.Get(s.Player, component.CInventory); c != nil {
		for _, id := range c.(component.Inventory).Items {
			keep[id] = true
		}
	}
	for _, id := range s.World.Query(component.CPosition) {
		if !keep[id] {
			s.World.DestroyEntity(id)
		}
	}
}

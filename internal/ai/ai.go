// Package ai runs monster turns. Each AI kind decides on an action.Action
// for the actor and performs it; refusals come back as action.Impossible
// like they would for the player.
package ai

import (
	"fmt"

	"delve-roguelike/internal/action"
	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/palette"
	"delve-roguelike/internal/world"
)

// directions are the eight neighbouring offsets, in the order a confused
// actor picks from.
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Perform takes one turn for id. Entities without an AI component do
// nothing.
func Perform(s *world.State, id ecs.EntityID) error {
	c := s.World.Get(id, component.CAI)
	if c == nil {
		return nil
	}
	ai := c.(component.AI)

	switch ai.Kind {
	case component.AIHostile:
		return hostile(s, id)
	case component.AIConfused:
		return confused(s, id, ai)
	case component.AIHypnotized:
		return hypnotized(s, id, ai)
	case component.AINone:
		return nil
	}
	return fmt.Errorf("ai: entity %d has unknown kind %d", id, ai.Kind)
}

// hostile chases the player while it is in view and attacks when adjacent.
func hostile(s *world.State, id ecs.EntityID) error {
	pos, ok := s.Position(id)
	if !ok {
		return fmt.Errorf("ai: entity %d has no position", id)
	}
	target, ok := s.Position(s.Player)
	if !ok || !s.Map.IsVisible(pos.X, pos.Y) {
		return action.Wait{Actor: id}.Perform(s)
	}
	if f, ok := s.Fighter(s.Player); !ok || !f.Alive() {
		return action.Wait{Actor: id}.Perform(s)
	}
	return approach(s, id, pos, target)
}

// approach attacks target when adjacent, otherwise steps toward it.
func approach(s *world.State, id ecs.EntityID, pos, target component.Position) error {
	dx, dy := target.X-pos.X, target.Y-pos.Y
	if chebyshev(dx, dy) <= 1 {
		return action.Melee{Actor: id, DX: dx, DY: dy}.Perform(s)
	}
	sx, sy := sign(dx), sign(dy)
	for _, step := range [][2]int{{sx, sy}, {sx, 0}, {0, sy}} {
		if step == [2]int{0, 0} {
			continue
		}
		if canEnter(s, pos.X+step[0], pos.Y+step[1]) {
			return action.Movement{Actor: id, DX: step[0], DY: step[1]}.Perform(s)
		}
	}
	return action.Wait{Actor: id}.Perform(s)
}

// confused stumbles in a random direction. The turn counter is spent before
// the bump, so a bump into a wall still uses up a turn.
func confused(s *world.State, id ecs.EntityID, ai component.AI) error {
	if ai.TurnsRemaining <= 0 {
		s.World.Add(id, ai.Restore())
		s.AddMessage(fmt.Sprintf("The %s is no longer confused.", s.Name(id)), palette.StatusEffectRemoved)
		return nil
	}
	ai.TurnsRemaining--
	s.World.Add(id, ai)

	d := directions[s.Rand.Intn(len(directions))]
	return action.Bump{Actor: id, DX: d[0], DY: d[1]}.Perform(s)
}

// hypnotized turns the actor against its own side: it attacks or closes
// in on the nearest visible monster and leaves the player alone.
func hypnotized(s *world.State, id ecs.EntityID, ai component.AI) error {
	if ai.TurnsRemaining <= 0 {
		s.World.Add(id, ai.Restore())
		s.AddMessage(fmt.Sprintf("The %s is no longer hypnotized.", s.Name(id)), palette.StatusEffectRemoved)
		return nil
	}
	ai.TurnsRemaining--
	s.World.Add(id, ai)

	pos, ok := s.Position(id)
	if !ok {
		return fmt.Errorf("ai: entity %d has no position", id)
	}
	prey := ecs.NilEntity
	var preyPos component.Position
	best := -1
	for _, other := range s.Actors() {
		if other == id || s.IsPlayer(other) {
			continue
		}
		p, _ := s.Position(other)
		if !s.Map.IsVisible(p.X, p.Y) {
			continue
		}
		if d := pos.DistSq(p.X, p.Y); best < 0 || d < best {
			prey, preyPos, best = other, p, d
		}
	}
	if prey == ecs.NilEntity {
		return action.Wait{Actor: id}.Perform(s)
	}
	return approach(s, id, pos, preyPos)
}

func canEnter(s *world.State, x, y int) bool {
	return s.Map.IsWalkable(x, y) && s.BlockingEntityAt(x, y) == ecs.NilEntity
}

func chebyshev(dx, dy int) int {
	return max(abs(dx), abs(dy))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
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

// Package action turns an actor's intent into changes to the world.
//
// Each Action is built for one attempt and performed once. Perform returns
// nil on success, an *Impossible when the attempt is refused, or any other
// error for a broken invariant. Composite actions return their delegate's
// error unchanged.
package action

import (
	"fmt"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/gamemap"
	"delve-roguelike/internal/palette"
	"delve-roguelike/internal/system"
	"delve-roguelike/internal/world"
)

// Action is the closed set of things an actor can do on its turn:
// Movement, Melee, Bump, Wait, Pickup, Drop, Equip, ItemAction and
// TakeStairs.
type Action interface {
	Perform(s *world.State) error
	isAction()
}

func (Movement) isAction()   {}
func (Melee) isAction()      {}
func (Bump) isAction()       {}
func (Wait) isAction()       {}
func (Pickup) isAction()     {}
func (Drop) isAction()       {}
func (Equip) isAction()      {}
func (ItemAction) isAction() {}
func (TakeStairs) isAction() {}

func position(s *world.State, actor ecs.EntityID) (component.Position, error) {
	pos, ok := s.Position(actor)
	if !ok {
		return pos, fmt.Errorf("entity %d has no position", actor)
	}
	return pos, nil
}

// Movement steps the actor by (DX, DY). An actor under a speed boost tries
// to cover two tiles, stopping at the first blocked one.
type Movement struct {
	Actor  ecs.EntityID
	DX, DY int
}

func (a Movement) Perform(s *world.State) error {
	pos, err := position(s, a.Actor)
	if err != nil {
		return fmt.Errorf("movement: %w", err)
	}
	status := s.Status(a.Actor)
	speed := 1
	if status.Speeded {
		speed = 2
	}

	maxStep := 0
	for step := 1; step <= speed; step++ {
		dest := pos.Offset(a.DX*step, a.DY*step)
		if blocked(s, dest.X, dest.Y) {
			break
		}
		maxStep = step
	}
	if maxStep == 0 {
		return Impossiblef("That way is blocked.")
	}
	s.World.Add(a.Actor, pos.Offset(a.DX*maxStep, a.DY*maxStep))

	if status.Speeded {
		status.SpeedTurns--
		if status.SpeedTurns <= 0 {
			status = component.Status{}
			s.AddMessage(fmt.Sprintf("%s is no longer under the effect of a speed scroll.", s.Name(a.Actor)),
				palette.StatusEffectRemoved)
		}
		s.World.Add(a.Actor, status)
	}
	return nil
}

func blocked(s *world.State, x, y int) bool {
	return !s.Map.InBounds(x, y) ||
		!s.Map.IsWalkable(x, y) ||
		s.BlockingEntityAt(x, y) != ecs.NilEntity
}

// Melee attacks the actor standing at the adjacent tile (DX, DY).
type Melee struct {
	Actor  ecs.EntityID
	DX, DY int
}

func (a Melee) Perform(s *world.State) error {
	pos, err := position(s, a.Actor)
	if err != nil {
		return fmt.Errorf("melee: %w", err)
	}
	dest := pos.Offset(a.DX, a.DY)
	target := s.ActorAt(dest.X, dest.Y)
	if target == ecs.NilEntity {
		return Impossiblef("Nothing to attack.")
	}
	if _, ok := s.Fighter(a.Actor); !ok {
		return fmt.Errorf("melee: attacker %d has no fighter", a.Actor)
	}

	damage := system.Power(s, a.Actor) - system.Defense(s, target)
	desc := fmt.Sprintf("%s attacks %s", capitalize(s.Name(a.Actor)), s.Name(target))
	color := palette.EnemyAtk
	if s.IsPlayer(a.Actor) {
		color = palette.PlayerAtk
	}

	if damage > 0 {
		s.AddMessage(fmt.Sprintf("%s for %d hit points.", desc, damage), color)
		system.TakeDamage(s, target, damage)
	} else {
		s.AddMessage(desc+" but does no damage.", color)
	}
	return nil
}

// Bump attacks whatever stands at (DX, DY), or moves there if it is empty.
type Bump struct {
	Actor  ecs.EntityID
	DX, DY int
}

func (a Bump) Perform(s *world.State) error {
	pos, err := position(s, a.Actor)
	if err != nil {
		return fmt.Errorf("bump: %w", err)
	}
	dest := pos.Offset(a.DX, a.DY)
	if s.ActorAt(dest.X, dest.Y) != ecs.NilEntity {
		return Melee(a).Perform(s)
	}
	return Movement(a).Perform(s)
}

// Wait passes the turn.
type Wait struct {
	Actor ecs.EntityID
}

func (Wait) Perform(*world.State) error { return nil }

// Pickup takes the first item lying on the actor's tile.
type Pickup struct {
	Actor ecs.EntityID
}

func (a Pickup) Perform(s *world.State) error {
	pos, err := position(s, a.Actor)
	if err != nil {
		return fmt.Errorf("pickup: %w", err)
	}
	inv, ok := system.Inventory(s, a.Actor)
	if !ok {
		return fmt.Errorf("pickup: %w", system.ErrNoInventory)
	}

	items := s.ItemsAt(pos.X, pos.Y)
	if len(items) == 0 {
		return Impossiblef("There is nothing here to pick up.")
	}
	if inv.Full() {
		return Impossiblef("Your inventory is full.")
	}
	item := items[0]
	if err := system.TakeItem(s, a.Actor, item); err != nil {
		return fmt.Errorf("pickup: %w", err)
	}
	s.AddMessage(fmt.Sprintf("You picked up the %s!", s.Name(item)), palette.White)
	return nil
}

// Drop puts a held item on the actor's tile, unequipping it first.
type Drop struct {
	Actor ecs.EntityID
	Item  ecs.EntityID
}

func (a Drop) Perform(s *world.State) error {
	if system.IsEquipped(s, a.Actor, a.Item) {
		system.ToggleEquip(s, a.Actor, a.Item)
	}
	if err := system.DropItem(s, a.Actor, a.Item); err != nil {
		return fmt.Errorf("drop: %w", err)
	}
	return nil
}

// Equip toggles whether a held item is worn.
type Equip struct {
	Actor ecs.EntityID
	Item  ecs.EntityID
}

func (a Equip) Perform(s *world.State) error {
	if !system.ToggleEquip(s, a.Actor, a.Item) {
		return Impossiblef("The %s cannot be equipped.", s.Name(a.Item))
	}
	return nil
}

// ItemAction uses an item. Target defaults to the user's own tile.
type ItemAction struct {
	Actor  ecs.EntityID
	Item   ecs.EntityID
	Target *gamemap.Point
}

// TargetXY returns the tile the item is aimed at.
func (a ItemAction) TargetXY(s *world.State) (int, int) {
	if a.Target != nil {
		return a.Target.X, a.Target.Y
	}
	pos, _ := s.Position(a.Actor)
	return pos.X, pos.Y
}

// TargetActor returns the actor on the target tile, or NilEntity.
func (a ItemAction) TargetActor(s *world.State) ecs.EntityID {
	return s.ActorAt(a.TargetXY(s))
}

func (a ItemAction) Perform(s *world.State) error {
	c := s.World.Get(a.Item, component.CConsumable)
	if c == nil {
		return nil
	}
	return Activate(s, c.(component.Consumable), a)
}

// TakeStairs descends when the actor stands on a staircase.
type TakeStairs struct {
	Actor ecs.EntityID
}

func (a TakeStairs) Perform(s *world.State) error {
	pos, err := position(s, a.Actor)
	if err != nil {
		return fmt.Errorf("take stairs: %w", err)
	}
	if !s.Map.IsDownstairs(pos.X, pos.Y) {
		return Impossiblef("There are no stairs here.")
	}
	if err := s.NextFloor(); err != nil {
		return fmt.Errorf("take stairs: %w", err)
	}
	s.AddMessage("You descend the staircase.", palette.Descend)
	return nil
}

package system

import (
	"errors"
	"fmt"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/palette"
	"delve-roguelike/internal/world"
)

var messageColor = palette.White

var (
	// ErrNoInventory is returned when an entity cannot carry items.
	ErrNoInventory = errors.New("entity has no inventory")
	// ErrNotCarried is returned when dropping an item the entity does not hold.
	ErrNotCarried = errors.New("item is not carried")
)

// Inventory returns the entity's inventory.
func Inventory(s *world.State, id ecs.EntityID) (component.Inventory, bool) {
	c := s.World.Get(id, component.CInventory)
	if c == nil {
		return component.Inventory{}, false
	}
	return c.(component.Inventory), true
}

// TakeItem moves a floor item into actor's inventory. The caller checks
// capacity first. Position removal and inventory insertion happen together
// so the item is never both placed and held.
func TakeItem(s *world.State, actor, item ecs.EntityID) error {
	inv, ok := Inventory(s, actor)
	if !ok {
		return ErrNoInventory
	}
	s.World.Remove(item, component.CPosition)
	s.World.Add(actor, inv.With(item))
	return nil
}

// DropItem moves a held item onto the tile actor stands on.
func DropItem(s *world.State, actor, item ecs.EntityID) error {
	inv, ok := Inventory(s, actor)
	if !ok {
		return ErrNoInventory
	}
	pos, ok := s.Position(actor)
	if !ok {
		return fmt.Errorf("drop: entity %d has no position", actor)
	}
	inv, ok = inv.Without(item)
	if !ok {
		return ErrNotCarried
	}
	s.World.Add(actor, inv)
	s.World.Add(item, pos)
	s.AddMessage(fmt.Sprintf("You dropped the %s.", s.Name(item)), messageColor)
	return nil
}

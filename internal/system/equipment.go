package system

import (
	"fmt"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/world"
)

func equipment(s *world.State, id ecs.EntityID) (component.Equipment, bool) {
	c := s.World.Get(id, component.CEquipment)
	if c == nil {
		return component.Equipment{}, false
	}
	return c.(component.Equipment), true
}

func equippable(s *world.State, item ecs.EntityID) (component.Equippable, bool) {
	c := s.World.Get(item, component.CEquippable)
	if c == nil {
		return component.Equippable{}, false
	}
	return c.(component.Equippable), true
}

func equipPowerBonus(s *world.State, id ecs.EntityID) int {
	eq, ok := equipment(s, id)
	if !ok {
		return 0
	}
	total := 0
	for _, item := range []ecs.EntityID{eq.Weapon, eq.Armor} {
		if e, ok := equippable(s, item); ok {
			total += e.PowerBonus
		}
	}
	return total
}

func equipDefenseBonus(s *world.State, id ecs.EntityID) int {
	eq, ok := equipment(s, id)
	if !ok {
		return 0
	}
	total := 0
	for _, item := range []ecs.EntityID{eq.Weapon, eq.Armor} {
		if e, ok := equippable(s, item); ok {
			total += e.DefenseBonus
		}
	}
	return total
}

// IsEquipped reports whether actor currently wears item.
func IsEquipped(s *world.State, actor, item ecs.EntityID) bool {
	eq, ok := equipment(s, actor)
	return ok && eq.IsEquipped(item)
}

// ToggleEquip equips item, or removes it if already worn. Equipping into an
// occupied slot removes the old item first. Reports false when item is not
// equippable or actor has no equipment slots.
func ToggleEquip(s *world.State, actor, item ecs.EntityID) bool {
	eq, ok := equipment(s, actor)
	if !ok {
		return false
	}
	e, ok := equippable(s, item)
	if !ok {
		return false
	}
	if eq.InSlot(e.Slot) == item {
		unequip(s, actor, eq, e.Slot)
		return true
	}
	if current := eq.InSlot(e.Slot); current != ecs.NilEntity {
		eq = unequip(s, actor, eq, e.Slot)
	}
	eq = eq.Set(e.Slot, item)
	s.World.Add(actor, eq)
	if s.IsPlayer(actor) {
		s.AddMessage(fmt.Sprintf("You equip the %s.", s.Name(item)), messageColor)
	}
	return true
}

func unequip(s *world.State, actor ecs.EntityID, eq component.Equipment, slot component.EquipSlot) component.Equipment {
	old := eq.InSlot(slot)
	eq = eq.Set(slot, ecs.NilEntity)
	s.World.Add(actor, eq)
	if s.IsPlayer(actor) {
		s.AddMessage(fmt.Sprintf("You remove the %s.", s.Name(old)), messageColor)
	}
	return eq
}

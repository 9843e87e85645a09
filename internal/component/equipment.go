package component

import "delve-roguelike/internal/ecs"

// EquipSlot is where an equippable item is worn.
type EquipSlot uint8

const (
	SlotWeapon EquipSlot = iota
	SlotArmor
)

func (s EquipSlot) String() string {
	switch s {
	case SlotWeapon:
		return "weapon"
	case SlotArmor:
		return "armor"
	}
	return "unknown"
}

const CEquippable ecs.ComponentType = 6

// Equippable marks an item that grants stat bonuses while equipped.
type Equippable struct {
	Slot         EquipSlot
	PowerBonus   int
	DefenseBonus int
}

func (Equippable) Type() ecs.ComponentType { return CEquippable }

const CEquipment ecs.ComponentType = 7

// Equipment records the item entity worn in each slot; NilEntity means empty.
type Equipment struct {
	Weapon ecs.EntityID
	Armor  ecs.EntityID
}

func (Equipment) Type() ecs.ComponentType { return CEquipment }

// InSlot returns the item worn in slot.
func (e Equipment) InSlot(slot EquipSlot) ecs.EntityID {
	if slot == SlotArmor {
		return e.Armor
	}
	return e.Weapon
}

// Set returns a copy with slot holding item.
func (e Equipment) Set(slot EquipSlot, item ecs.EntityID) Equipment {
	if slot == SlotArmor {
		e.Armor = item
	} else {
		e.Weapon = item
	}
	return e
}

// IsEquipped reports whether item occupies any slot.
func (e Equipment) IsEquipped(item ecs.EntityID) bool {
	return item != ecs.NilEntity && (e.Weapon == item || e.Armor == item)
}

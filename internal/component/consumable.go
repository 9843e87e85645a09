package component

import "delve-roguelike/internal/ecs"

const CConsumable ecs.ComponentType = 10

// ConsumableKind selects the effect an item has when used.
type ConsumableKind uint8

const (
	ConsumeHealing ConsumableKind = iota
	ConsumeLightning
	ConsumeConfusion
	ConsumeHypnotize
	ConsumeFireball
	ConsumeSpeed
)

// Consumable describes a single-use item effect. Which fields apply depends
// on Kind: Amount (healing), Damage and Range (lightning), Damage and
// Radius (fireball), Turns (confusion, hypnotize, speed).
type Consumable struct {
	Kind   ConsumableKind
	Amount int
	Damage int
	Range  int
	Radius int
	Turns  int
}

func (Consumable) Type() ecs.ComponentType { return CConsumable }

package component

import (
	"slices"

	"delve-roguelike/internal/ecs"
)

const CInventory ecs.ComponentType = 5

// Inventory is an ordered list of held item entities. len(Items) never
// exceeds Capacity.
type Inventory struct {
	Items    []ecs.EntityID
	Capacity int
}

func (Inventory) Type() ecs.ComponentType { return CInventory }

// Full reports whether another item would exceed capacity.
func (inv Inventory) Full() bool { return len(inv.Items) >= inv.Capacity }

// Contains reports whether the item is held.
func (inv Inventory) Contains(item ecs.EntityID) bool {
	return slices.Contains(inv.Items, item)
}

// With returns a copy holding item at the end.
func (inv Inventory) With(item ecs.EntityID) Inventory {
	items := make([]ecs.EntityID, 0, len(inv.Items)+1)
	items = append(items, inv.Items...)
	inv.Items = append(items, item)
	return inv
}

// Without returns a copy with item removed. The second result is false
// when the item was not held.
func (inv Inventory) Without(item ecs.EntityID) (Inventory, bool) {
	i := slices.Index(inv.Items, item)
	if i < 0 {
		return inv, false
	}
	items := make([]ecs.EntityID, 0, len(inv.Items)-1)
	items = append(items, inv.Items[:i]...)
	inv.Items = append(items, inv.Items[i+1:]...)
	return inv, true
}

// Package ecs is a minimal entity registry. Entities are integer IDs and
// components are plain values keyed by a small type tag.
package ecs

import "strconv"

// EntityID names an entity. IDs are minted in increasing order and never
// reused, so ordering IDs orders entities by creation.
type EntityID uint64

// NilEntity is never minted.
const NilEntity EntityID = 0

func (id EntityID) String() string {
	if id == NilEntity {
		return "nil"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// ComponentType keys a component store.
type ComponentType uint8

// Component is a value stored on an entity. Each concrete type reports a
// distinct ComponentType.
type Component interface {
	Type() ComponentType
}

package component

import "delve-roguelike/internal/ecs"

const CStatus ecs.ComponentType = 11

// Status holds transient flags applied by items.
type Status struct {
	Speeded    bool
	SpeedTurns int
}

func (Status) Type() ecs.ComponentType { return CStatus }

package component

import "delve-roguelike/internal/ecs"

const CFighter ecs.ComponentType = 4

// Fighter holds combat stats. HP stays within [0, MaxHP]; use the system
// package to change it so clamping and death are applied.
type Fighter struct {
	HP          int
	MaxHP       int
	BasePower   int
	BaseDefense int
}

func (Fighter) Type() ecs.ComponentType { return CFighter }

// Alive reports whether the fighter still has hit points.
func (f Fighter) Alive() bool { return f.HP > 0 }

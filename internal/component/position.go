package component

import "delve-roguelike/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position places an entity on a map tile. Items held in an inventory have
// no Position.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Offset returns the position shifted by (dx, dy).
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DistSq returns the squared Euclidean distance to (x, y).
func (p Position) DistSq(x, y int) int {
	dx, dy := x-p.X, y-p.Y
	return dx*dx + dy*dy
}

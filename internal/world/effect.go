package world

import (
	"delve-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// EffectKind selects how a visual effect is drawn.
type EffectKind uint8

const (
	EffectLine EffectKind = iota // a bolt from From to To
	EffectArea                   // a set of highlighted tiles
)

// Effect is a short-lived rendering hint. Game logic never reads it back.
type Effect struct {
	Kind   EffectKind
	From   gamemap.Point
	To     gamemap.Point
	Tiles  []gamemap.Point
	Color  tcell.Color
	Frames int
}

// EffectSink receives effects emitted by actions. The presentation layer
// owns the storage.
type EffectSink interface {
	Emit(Effect)
}

// FloorGenerator replaces the current floor with the next one.
type FloorGenerator interface {
	GenerateFloor(s *State) error
}

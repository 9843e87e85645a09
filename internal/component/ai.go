package component

import "delve-roguelike/internal/ecs"

const CAI ecs.ComponentType = 9

// AIKind selects the behaviour run on an actor's turn. An actor with no AI
// component never acts on its own.
type AIKind uint8

const (
	AINone       AIKind = iota // stands still
	AIHostile                  // chase and attack the player
	AIConfused                 // stumble in random directions
	AIHypnotized               // fight other monsters on the player's behalf
)

func (k AIKind) String() string {
	switch k {
	case AINone:
		return "none"
	case AIHostile:
		return "hostile"
	case AIConfused:
		return "confused"
	case AIHypnotized:
		return "hypnotized"
	}
	return "unknown"
}

// AI is a behaviour plus an optional timed overlay. Overlays own a copy of
// the strategy they replaced in Previous and hand it back when
// TurnsRemaining runs out.
type AI struct {
	Kind           AIKind
	TurnsRemaining int
	Previous       *AI
}

func (AI) Type() ecs.ComponentType { return CAI }

// Overlay wraps a in a timed strategy of the given kind.
func (a AI) Overlay(kind AIKind, turns int) AI {
	prev := a
	return AI{Kind: kind, TurnsRemaining: turns, Previous: &prev}
}

// IsOverlay reports whether a is a timed wrapper around another strategy.
func (a AI) IsOverlay() bool { return a.Previous != nil }

// Restore returns the wrapped strategy. A non-overlay returns itself.
func (a AI) Restore() AI {
	if a.Previous == nil {
		return a
	}
	return *a.Previous
}

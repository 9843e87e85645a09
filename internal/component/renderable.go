package component

import (
	"delve-roguelike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 2

// Render orders, lowest drawn first.
const (
	OrderCorpse = 1
	OrderItem   = 2
	OrderActor  = 5
)

type Renderable struct {
	Glyph       string
	FGColor     tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }

const CNamed ecs.ComponentType = 3

// Named is the display name used in messages.
type Named struct {
	Name string
}

func (Named) Type() ecs.ComponentType { return CNamed }

// Package engine sequences turns: the player acts, then every monster with
// an AI acts once, then the field of view is refreshed.
package engine

import (
	"fmt"

	"delve-roguelike/internal/action"
	"delve-roguelike/internal/ai"
	"delve-roguelike/internal/component"
	"delve-roguelike/internal/logger"
	"delve-roguelike/internal/palette"
	"delve-roguelike/internal/system"
	"delve-roguelike/internal/world"

	"github.com/sirupsen/logrus"
)

// Engine drives one game.
type Engine struct {
	State     *world.State
	FOVRadius int

	// Turns counts successful player actions.
	Turns int

	log *logrus.Entry
}

// New creates an Engine and computes the initial field of view.
func New(s *world.State, fovRadius int) *Engine {
	if fovRadius <= 0 {
		fovRadius = system.DefaultFOVRadius
	}
	e := &Engine{
		State:     s,
		FOVRadius: fovRadius,
		log:       logger.Log.WithField("component", "engine"),
	}
	e.UpdateFOV()
	return e
}

// UpdateFOV recomputes visibility around the player.
func (e *Engine) UpdateFOV() {
	system.UpdateFOV(e.State, e.FOVRadius)
}

// PlayerTurn performs a for the player. It reports whether a turn was
// spent. A refused action costs nothing: its message goes to the log and
// monsters do not move. Any other error is fatal to the game.
func (e *Engine) PlayerTurn(a action.Action) (bool, error) {
	err := a.Perform(e.State)
	if imp, ok := action.AsImpossible(err); ok {
		e.State.AddMessage(imp.Msg, palette.Impossible)
		return false, nil
	}
	if err != nil {
		e.log.WithError(err).WithField("actor", e.State.Player).Error("player action failed")
		return false, fmt.Errorf("player turn: %w", err)
	}

	e.Turns++
	if err := e.HandleEnemyTurns(); err != nil {
		return true, err
	}
	e.UpdateFOV()
	return true, nil
}

// HandleEnemyTurns gives each living non-player actor with an AI one
// action, in registry order. A monster's refused action only ends that
// monster's turn. The first fatal error stops the pass.
func (e *Engine) HandleEnemyTurns() error {
	s := e.State
	for _, id := range s.Actors() {
		if s.IsPlayer(id) || !s.World.Has(id, component.CAI) {
			continue
		}
		// An earlier monster may have killed this one this pass.
		if f, ok := s.Fighter(id); !ok || !f.Alive() {
			continue
		}
		err := ai.Perform(s, id)
		if action.IsImpossible(err) {
			e.log.WithFields(logrus.Fields{"actor": id, "reason": err.Error()}).Debug("ai action discarded")
			continue
		}
		if err != nil {
			e.log.WithError(err).WithField("actor", id).Error("ai action failed")
			return fmt.Errorf("enemy turn %d: %w", id, err)
		}
	}
	return nil
}

// PlayerDead reports whether the player has died.
func (e *Engine) PlayerDead() bool {
	f, ok := e.State.Fighter(e.State.Player)
	return ok && !f.Alive()
}

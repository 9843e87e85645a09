package system

import (
	"fmt"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/palette"
	"delve-roguelike/internal/world"
)

// Default level curve for the player.
const (
	LevelUpBase   = 200
	LevelUpFactor = 150
)

// AddXP banks experience for id and announces when a level-up is due.
func AddXP(s *world.State, id ecs.EntityID, xp int) {
	c := s.World.Get(id, component.CLevel)
	if c == nil || xp <= 0 {
		return
	}
	lvl := c.(component.Level)
	if lvl.LevelUpBase == 0 {
		return
	}
	lvl.XP += xp
	s.World.Add(id, lvl)
	s.AddMessage(fmt.Sprintf("You gain %d experience points.", xp), messageColor)
	if lvl.RequiresLevelUp() {
		s.AddMessage(fmt.Sprintf("You advance to level %d!", lvl.Current+1), palette.StatusEffectApplied)
	}
}

// RequiresLevelUp reports whether id has enough XP banked to level up.
func RequiresLevelUp(s *world.State, id ecs.EntityID) bool {
	c := s.World.Get(id, component.CLevel)
	return c != nil && c.(component.Level).RequiresLevelUp()
}

// Boost is a level-up reward.
type Boost uint8

const (
	BoostConstitution Boost = iota // +20 max HP and heal 20
	BoostStrength                  // +1 power
	BoostAgility                   // +1 defense
)

// LevelUp spends the banked XP for one level and applies boost.
func LevelUp(s *world.State, id ecs.EntityID, boost Boost) {
	c := s.World.Get(id, component.CLevel)
	if c == nil {
		return
	}
	lvl := c.(component.Level)
	if !lvl.RequiresLevelUp() {
		return
	}
	lvl.XP -= lvl.XPToNext()
	lvl.Current++
	s.World.Add(id, lvl)

	f, ok := s.Fighter(id)
	if !ok {
		return
	}
	switch boost {
	case BoostConstitution:
		f.MaxHP += 20
		f.HP = min(f.MaxHP, f.HP+20)
		s.AddMessage("Your health improves!", messageColor)
	case BoostStrength:
		f.BasePower++
		s.AddMessage("You feel stronger!", messageColor)
	case BoostAgility:
		f.BaseDefense++
		s.AddMessage("Your movements are getting swifter!", messageColor)
	}
	s.World.Add(id, f)
}

package component

import "delve-roguelike/internal/ecs"

const CLevel ecs.ComponentType = 8

// Level tracks experience. Monsters only use XPGiven.
type Level struct {
	Current       int
	XP            int
	LevelUpBase   int
	LevelUpFactor int
	XPGiven       int
}

func (Level) Type() ecs.ComponentType { return CLevel }

// XPToNext is the experience needed to reach the next level.
func (l Level) XPToNext() int {
	return l.LevelUpBase + l.Current*l.LevelUpFactor
}

// RequiresLevelUp reports whether enough XP has been banked to level up.
func (l Level) RequiresLevelUp() bool {
	return l.LevelUpBase > 0 && l.XP >= l.XPToNext()
}

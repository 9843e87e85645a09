package system

import (
	"fmt"
	"strings"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/palette"
	"delve-roguelike/internal/world"
)

// Power returns base power plus equipment bonuses.
func Power(s *world.State, id ecs.EntityID) int {
	f, _ := s.Fighter(id)
	return f.BasePower + equipPowerBonus(s, id)
}

// Defense returns base defense plus equipment bonuses.
func Defense(s *world.State, id ecs.EntityID) int {
	f, _ := s.Fighter(id)
	return f.BaseDefense + equipDefenseBonus(s, id)
}

// Heal restores up to amount HP without exceeding MaxHP and returns the
// amount actually recovered.
func Heal(s *world.State, id ecs.EntityID, amount int) int {
	f, ok := s.Fighter(id)
	if !ok || f.HP >= f.MaxHP || amount <= 0 {
		return 0
	}
	recovered := min(amount, f.MaxHP-f.HP)
	f.HP += recovered
	s.World.Add(id, f)
	return recovered
}

// TakeDamage subtracts amount HP, clamping at zero, and runs the death
// transition when the fighter drops to zero.
func TakeDamage(s *world.State, id ecs.EntityID, amount int) {
	f, ok := s.Fighter(id)
	if !ok || !f.Alive() || amount <= 0 {
		return
	}
	f.HP = max(0, f.HP-amount)
	s.World.Add(id, f)
	if f.HP == 0 {
		Die(s, id)
	}
}

// Die turns an actor into a corpse: it keeps its tile but stops blocking,
// loses its AI and is renamed. Killing a monster rewards the player with
// the monster's XP.
func Die(s *world.State, id ecs.EntityID) {
	name := s.Name(id)
	if s.IsPlayer(id) {
		s.AddMessage("You died!", palette.PlayerDie)
	} else {
		s.AddMessage(fmt.Sprintf("%s is dead!", capitalize(name)), palette.EnemyDie)
	}

	s.World.Remove(id, component.CAI)
	s.World.Remove(id, component.CTagBlocking)
	s.World.Add(id, component.Renderable{
		Glyph:       "%",
		FGColor:     palette.Corpse,
		RenderOrder: component.OrderCorpse,
	})
	s.World.Add(id, component.Named{Name: "remains of " + name})

	if !s.IsPlayer(id) {
		if c := s.World.Get(id, component.CLevel); c != nil {
			AddXP(s, s.Player, c.(component.Level).XPGiven)
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package action

import (
	"fmt"
	"math"
	"strings"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/gamemap"
	"delve-roguelike/internal/palette"
	"delve-roguelike/internal/system"
	"delve-roguelike/internal/world"
)

// effectFrames is how many render passes an item's visual effect lasts.
const effectFrames = 10

// TargetRequest asks the UI for a tile before an item can be used. Radius
// is 0 for a single tile; larger values describe the disc the UI should
// highlight. Callback builds the action once a tile is chosen.
type TargetRequest struct {
	Radius   int
	Callback func(x, y int) Action
}

// GetAction returns the action for consumer using item. Items that need a
// target tile return a TargetRequest instead.
func GetAction(s *world.State, consumer, item ecs.EntityID) (Action, *TargetRequest) {
	c := s.World.Get(item, component.CConsumable)
	if c == nil {
		return ItemAction{Actor: consumer, Item: item}, nil
	}
	cons := c.(component.Consumable)

	switch cons.Kind {
	case component.ConsumeConfusion, component.ConsumeHypnotize, component.ConsumeFireball:
		s.AddMessage("Select a target location.", palette.NeedsTarget)
		radius := 0
		if cons.Kind == component.ConsumeFireball {
			radius = cons.Radius
		}
		return nil, &TargetRequest{
			Radius: radius,
			Callback: func(x, y int) Action {
				return ItemAction{Actor: consumer, Item: item, Target: &gamemap.Point{X: x, Y: y}}
			},
		}
	}
	return ItemAction{Actor: consumer, Item: item}, nil
}

// Activate applies the item's effect. On success the item is consumed; on
// an Impossible result it stays where it was.
func Activate(s *world.State, c component.Consumable, a ItemAction) error {
	var err error
	switch c.Kind {
	case component.ConsumeHealing:
		err = activateHealing(s, c, a)
	case component.ConsumeLightning:
		err = activateLightning(s, c, a)
	case component.ConsumeConfusion:
		err = activateOverlay(s, c, a, component.AIConfused)
	case component.ConsumeHypnotize:
		err = activateOverlay(s, c, a, component.AIHypnotized)
	case component.ConsumeFireball:
		err = activateFireball(s, c, a)
	case component.ConsumeSpeed:
		err = activateSpeed(s, c, a)
	default:
		return fmt.Errorf("activate: unknown consumable kind %d", c.Kind)
	}
	if err != nil {
		return err
	}
	consume(s, a.Item)
	return nil
}

// consume removes the item from whichever inventory holds it and destroys
// it. This is the only way an item leaves the game.
func consume(s *world.State, item ecs.EntityID) {
	if holder := s.Holder(item); holder != ecs.NilEntity {
		inv, _ := system.Inventory(s, holder)
		inv, _ = inv.Without(item)
		s.World.Add(holder, inv)
	}
	s.World.DestroyEntity(item)
}

func activateHealing(s *world.State, c component.Consumable, a ItemAction) error {
	recovered := system.Heal(s, a.Actor, c.Amount)
	if recovered == 0 {
		return Impossiblef("Your health is already full.")
	}
	s.AddMessage(fmt.Sprintf("You consume the %s, and recover %d HP!", s.Name(a.Item), recovered),
		palette.HealthRecovered)
	return nil
}

// activateLightning strikes the closest visible actor other than the user.
// Actors are scanned in registry order and only a strictly closer actor
// replaces the current pick, so ties go to the earliest-created actor.
func activateLightning(s *world.State, c component.Consumable, a ItemAction) error {
	origin, err := position(s, a.Actor)
	if err != nil {
		return fmt.Errorf("lightning: %w", err)
	}
	target := ecs.NilEntity
	var targetPos component.Position
	closest := float64(c.Range) + 1.0

	for _, id := range s.Actors() {
		if id == a.Actor {
			continue
		}
		pos, _ := s.Position(id)
		if !s.Map.IsVisible(pos.X, pos.Y) {
			continue
		}
		dist := math.Sqrt(float64(origin.DistSq(pos.X, pos.Y)))
		if dist < closest {
			target, targetPos, closest = id, pos, dist
		}
	}
	if target == ecs.NilEntity {
		return Impossiblef("No enemy is close enough to strike.")
	}

	s.AddMessage(fmt.Sprintf("A lightning bolt strikes the %s with a loud thunder, for %d damage!",
		s.Name(target), c.Damage), palette.White)
	system.TakeDamage(s, target, c.Damage)
	s.Emit(world.Effect{
		Kind:   world.EffectLine,
		From:   gamemap.Point{X: origin.X, Y: origin.Y},
		To:     gamemap.Point{X: targetPos.X, Y: targetPos.Y},
		Color:  palette.Lightning,
		Frames: effectFrames,
	})
	return nil
}

// activateOverlay puts a timed AI overlay (confusion or hypnosis) on the
// actor at the target tile. Checks run in a fixed order: the tile must be
// visible, must not hold the user, and must hold an actor.
func activateOverlay(s *world.State, c component.Consumable, a ItemAction, kind component.AIKind) error {
	x, y := a.TargetXY(s)
	if !s.Map.IsVisible(x, y) {
		return Impossiblef("You cannot target an area that you cannot see.")
	}
	target := s.ActorAt(x, y)
	if target != ecs.NilEntity && target == a.Actor {
		if kind == component.AIHypnotized {
			return Impossiblef("You cannot hypnotize yourself!")
		}
		return Impossiblef("You cannot confuse yourself!")
	}
	if target == ecs.NilEntity {
		return Impossiblef("You must select an enemy to target.")
	}

	name := s.Name(target)
	if kind == component.AIHypnotized {
		s.AddMessage(fmt.Sprintf("The %s looks entranced, as it starts to follow your commands!", name),
			palette.StatusEffectApplied)
	} else {
		s.AddMessage(fmt.Sprintf("The eyes of the %s look vacant, as it starts to stumble around!", name),
			palette.StatusEffectApplied)
	}

	current := component.AI{Kind: component.AINone}
	if ai := s.World.Get(target, component.CAI); ai != nil {
		current = ai.(component.AI)
	}
	s.World.Add(target, current.Overlay(kind, c.Turns))
	return nil
}

// activateFireball damages every actor within Radius of the target tile,
// the user included. When nobody is in range nothing has been changed and
// the item is kept.
func activateFireball(s *world.State, c component.Consumable, a ItemAction) error {
	x, y := a.TargetXY(s)
	if !s.Map.IsVisible(x, y) {
		return Impossiblef("You cannot target an area that you cannot see.")
	}
	radiusSq := c.Radius * c.Radius

	hit := false
	for _, id := range s.Actors() {
		pos, _ := s.Position(id)
		if pos.DistSq(x, y) > radiusSq {
			continue
		}
		s.AddMessage(fmt.Sprintf("The %s is engulfed in a fiery explosion, taking %d damage!",
			s.Name(id), c.Damage), palette.White)
		system.TakeDamage(s, id, c.Damage)
		hit = true
	}

	if tiles := DiscTiles(s.Map, x, y, c.Radius); len(tiles) > 0 {
		s.Emit(world.Effect{
			Kind:   world.EffectArea,
			Tiles:  tiles,
			Color:  palette.Fireball,
			Frames: effectFrames,
		})
	}
	if !hit {
		return Impossiblef("There are no targets in the radius.")
	}
	return nil
}

// DiscTiles returns the in-bounds tiles whose squared distance from (cx, cy)
// is at most radius², scanning the bounding box row by row.
func DiscTiles(gmap *gamemap.GameMap, cx, cy, radius int) []gamemap.Point {
	var tiles []gamemap.Point
	radiusSq := radius * radius
	for ty := cy - radius; ty <= cy+radius; ty++ {
		for tx := cx - radius; tx <= cx+radius; tx++ {
			dx, dy := tx-cx, ty-cy
			if gmap.InBounds(tx, ty) && dx*dx+dy*dy <= radiusSq {
				tiles = append(tiles, gamemap.Point{X: tx, Y: ty})
			}
		}
	}
	return tiles
}

func activateSpeed(s *world.State, c component.Consumable, a ItemAction) error {
	status := s.Status(a.Actor)
	if status.Speeded {
		return Impossiblef("You are already under the effect of a speed scroll.")
	}
	s.AddMessage(fmt.Sprintf("You feel yourself moving faster for %d turns!", c.Turns),
		palette.StatusEffectApplied)
	status.Speeded = true
	status.SpeedTurns = c.Turns
	s.World.Add(a.Actor, status)
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

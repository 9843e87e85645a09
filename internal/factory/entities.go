// Package factory builds entities from fixed prototypes.
package factory

import (
	"fmt"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Kind names a spawnable prototype.
type Kind uint8

const (
	Orc Kind = iota
	Troll
	HealthPotion
	LightningScroll
	ConfusionScroll
	FireballScroll
	HypnotizeScroll
	SpeedScroll
	Dagger
	Sword
	LeatherArmor
	ChainMail
)

// Player stats and experience curve.
const (
	PlayerHP       = 30
	PlayerPower    = 3
	PlayerDefense  = 1
	PlayerCapacity = 26

	LevelUpBase   = 200
	LevelUpFactor = 150
)

type prototype struct {
	name  string
	glyph string
	color tcell.Color

	// monsters
	fighter component.Fighter
	xp      int

	// items
	consumable *component.Consumable
	equippable *component.Equippable
}

func (p prototype) isActor() bool { return p.fighter.MaxHP > 0 }

var prototypes = map[Kind]prototype{
	Orc: {
		name:    "Orc",
		glyph:   "o",
		color:   tcell.NewRGBColor(63, 127, 63),
		fighter: component.Fighter{HP: 10, MaxHP: 10, BasePower: 3, BaseDefense: 0},
		xp:      35,
	},
	Troll: {
		name:    "Troll",
		glyph:   "T",
		color:   tcell.NewRGBColor(0, 127, 0),
		fighter: component.Fighter{HP: 16, MaxHP: 16, BasePower: 4, BaseDefense: 1},
		xp:      100,
	},
	HealthPotion: {
		name:       "Health Potion",
		glyph:      "!",
		color:      tcell.NewRGBColor(127, 0, 255),
		consumable: &component.Consumable{Kind: component.ConsumeHealing, Amount: 4},
	},
	LightningScroll: {
		name:       "Lightning Scroll",
		glyph:      "~",
		color:      tcell.NewRGBColor(255, 255, 0),
		consumable: &component.Consumable{Kind: component.ConsumeLightning, Damage: 20, Range: 5},
	},
	ConfusionScroll: {
		name:       "Confusion Scroll",
		glyph:      "~",
		color:      tcell.NewRGBColor(207, 63, 255),
		consumable: &component.Consumable{Kind: component.ConsumeConfusion, Turns: 10},
	},
	FireballScroll: {
		name:       "Fireball Scroll",
		glyph:      "~",
		color:      tcell.NewRGBColor(255, 0, 0),
		consumable: &component.Consumable{Kind: component.ConsumeFireball, Damage: 12, Radius: 4},
	},
	HypnotizeScroll: {
		name:       "Hypnotize Scroll",
		glyph:      "?",
		color:      tcell.NewRGBColor(255, 255, 255),
		consumable: &component.Consumable{Kind: component.ConsumeHypnotize, Turns: 7},
	},
	SpeedScroll: {
		name:       "Speed Scroll",
		glyph:      "/",
		color:      tcell.NewRGBColor(0, 255, 0),
		consumable: &component.Consumable{Kind: component.ConsumeSpeed, Turns: 20},
	},
	Dagger: {
		name:       "Dagger",
		glyph:      "/",
		color:      tcell.NewRGBColor(0, 191, 255),
		equippable: &component.Equippable{Slot: component.SlotWeapon, PowerBonus: 2},
	},
	Sword: {
		name:       "Sword",
		glyph:      "/",
		color:      tcell.NewRGBColor(0, 191, 255),
		equippable: &component.Equippable{Slot: component.SlotWeapon, PowerBonus: 4},
	},
	LeatherArmor: {
		name:       "Leather Armor",
		glyph:      "[",
		color:      tcell.NewRGBColor(139, 69, 19),
		equippable: &component.Equippable{Slot: component.SlotArmor, DefenseBonus: 1},
	},
	ChainMail: {
		name:       "Chain Mail",
		glyph:      "[",
		color:      tcell.NewRGBColor(139, 69, 19),
		equippable: &component.Equippable{Slot: component.SlotArmor, DefenseBonus: 3},
	},
}

func (k Kind) String() string {
	if p, ok := prototypes[k]; ok {
		return p.name
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsActor reports whether k spawns a monster rather than an item.
func (k Kind) IsActor() bool {
	return prototypes[k].isActor()
}

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Named{Name: "Player"})
	w.Add(id, component.Renderable{
		Glyph:       "@",
		FGColor:     tcell.ColorWhite,
		RenderOrder: component.OrderActor,
	})
	w.Add(id, component.Fighter{HP: PlayerHP, MaxHP: PlayerHP, BasePower: PlayerPower, BaseDefense: PlayerDefense})
	w.Add(id, component.Inventory{Capacity: PlayerCapacity})
	w.Add(id, component.Equipment{})
	w.Add(id, component.Level{Current: 1, LevelUpBase: LevelUpBase, LevelUpFactor: LevelUpFactor})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

// Spawn creates a prototype placed on the map at (x, y).
func Spawn(w *ecs.World, kind Kind, x, y int) (ecs.EntityID, error) {
	id, err := build(w, kind)
	if err != nil {
		return ecs.NilEntity, err
	}
	w.Add(id, component.Position{X: x, Y: y})
	return id, nil
}

// Give creates an item prototype directly in holder's inventory, ignoring
// capacity. Used for starting equipment.
func Give(w *ecs.World, holder ecs.EntityID, kind Kind) (ecs.EntityID, error) {
	if kind.IsActor() {
		return ecs.NilEntity, fmt.Errorf("factory: %v is not an item", kind)
	}
	c := w.Get(holder, component.CInventory)
	if c == nil {
		return ecs.NilEntity, fmt.Errorf("factory: entity %d has no inventory", holder)
	}
	id, err := build(w, kind)
	if err != nil {
		return ecs.NilEntity, err
	}
	w.Add(holder, c.(component.Inventory).With(id))
	return id, nil
}

func build(w *ecs.World, kind Kind) (ecs.EntityID, error) {
	p, ok := prototypes[kind]
	if !ok {
		return ecs.NilEntity, fmt.Errorf("factory: unknown kind %d", kind)
	}
	id := w.CreateEntity()
	w.Add(id, component.Named{Name: p.name})
	order := component.OrderItem
	if p.isActor() {
		order = component.OrderActor
	}
	w.Add(id, component.Renderable{Glyph: p.glyph, FGColor: p.color, RenderOrder: order})

	if p.isActor() {
		w.Add(id, p.fighter)
		w.Add(id, component.AI{Kind: component.AIHostile})
		w.Add(id, component.Level{XPGiven: p.xp})
		w.Add(id, component.TagBlocking{})
		return id, nil
	}
	w.Add(id, component.TagItem{})
	if p.consumable != nil {
		w.Add(id, *p.consumable)
	}
	if p.equippable != nil {
		w.Add(id, *p.equippable)
	}
	return id, nil
}

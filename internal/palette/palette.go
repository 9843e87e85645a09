// Package palette names the colors shared by game messages and the renderer.
package palette

import "github.com/gdamore/tcell/v2"

var (
	White = tcell.NewRGBColor(0xFF, 0xFF, 0xFF)
	Black = tcell.NewRGBColor(0x00, 0x00, 0x00)
	Red   = tcell.NewRGBColor(0xFF, 0x00, 0x00)

	PlayerAtk = tcell.NewRGBColor(0xE0, 0xE0, 0xE0)
	EnemyAtk  = tcell.NewRGBColor(0xFF, 0xC0, 0xC0)

	NeedsTarget         = tcell.NewRGBColor(0x3F, 0xFF, 0xFF)
	StatusEffectApplied = tcell.NewRGBColor(0x3F, 0xFF, 0x3F)
	StatusEffectRemoved = tcell.NewRGBColor(0xFF, 0xA0, 0x3F)
	Descend             = tcell.NewRGBColor(0x9F, 0x3F, 0xFF)

	PlayerDie = tcell.NewRGBColor(0xFF, 0x30, 0x30)
	EnemyDie  = tcell.NewRGBColor(0xFF, 0xA0, 0x30)

	Invalid     = tcell.NewRGBColor(0xFF, 0xFF, 0x00)
	Impossible  = tcell.NewRGBColor(0x80, 0x80, 0x80)
	Error       = tcell.NewRGBColor(0xFF, 0x40, 0x40)
	WelcomeText = tcell.NewRGBColor(0x20, 0xA0, 0xFF)

	HealthRecovered = tcell.NewRGBColor(0x00, 0xFF, 0x00)

	BarText   = White
	BarFilled = tcell.NewRGBColor(0x00, 0x60, 0x00)
	BarEmpty  = tcell.NewRGBColor(0x40, 0x10, 0x10)

	Corpse    = tcell.NewRGBColor(0xBF, 0x00, 0x00)
	Lightning = tcell.NewRGBColor(0xFF, 0xFF, 0x00)
	Fireball  = tcell.NewRGBColor(0xFF, 0x00, 0x00)
	Cursor    = tcell.NewRGBColor(0xC0, 0xC0, 0xC0)
	Radius    = tcell.NewRGBColor(0x60, 0x20, 0x20)
)

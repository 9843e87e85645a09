package game

import (
	"fmt"
	"sort"

	"delve-roguelike/internal/action"
	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/gamemap"
	"delve-roguelike/internal/palette"
	"delve-roguelike/internal/system"

	"github.com/gdamore/tcell/v2"
)

func (g *Game) handleMain(ev *tcell.EventKey) error {
	p := g.state.Player
	cmd := keyToCommand(ev)
	if dx, dy, ok := commandDelta(cmd); ok {
		return g.perform(action.Bump{Actor: p, DX: dx, DY: dy}, ecs.NilEntity)
	}

	switch cmd {
	case CmdWait:
		return g.perform(action.Wait{Actor: p}, ecs.NilEntity)
	case CmdPickup:
		return g.perform(action.Pickup{Actor: p}, ecs.NilEntity)
	case CmdDescend:
		return g.perform(action.TakeStairs{Actor: p}, ecs.NilEntity)
	case CmdInventory:
		g.mode = ModeInventoryUse
	case CmdDrop:
		g.mode = ModeInventoryDrop
	case CmdLook:
		g.cursor = g.playerPoint()
		g.mode = ModeLook
	case CmdQuit:
		g.finishRun(false)
		g.quit = true
	}
	return nil
}

func (g *Game) handleInventory(ev *tcell.EventKey) error {
	if ev.Key() == tcell.KeyEscape {
		g.mode = ModeMain
		return nil
	}
	items := g.inventory()
	i := letterIndex(ev)
	if i < 0 || i >= len(items) {
		g.state.AddMessage("Invalid entry.", palette.Invalid)
		return nil
	}
	item := items[i]
	p := g.state.Player

	if g.mode == ModeInventoryDrop {
		return g.perform(action.Drop{Actor: p, Item: item}, ecs.NilEntity)
	}
	if g.state.World.Has(item, component.CEquippable) {
		return g.perform(action.Equip{Actor: p, Item: item}, ecs.NilEntity)
	}
	a, req := action.GetAction(g.state, p, item)
	if req != nil {
		g.target = req
		g.cursor = g.playerPoint()
		g.mode = ModeTarget
		return nil
	}
	return g.perform(a, item)
}

// cursorStep scales a cursor move by the held modifier.
func cursorStep(ev *tcell.EventKey) int {
	mod := ev.Modifiers()
	switch {
	case mod&tcell.ModAlt != 0:
		return 20
	case mod&tcell.ModCtrl != 0:
		return 10
	case mod&tcell.ModShift != 0:
		return 5
	}
	return 1
}

func (g *Game) handleCursor(ev *tcell.EventKey) error {
	if ev.Key() == tcell.KeyEscape {
		g.target = nil
		g.mode = ModeMain
		return nil
	}
	if isConfirm(ev) {
		return g.confirmCursor()
	}
	dx, dy, ok := commandDelta(keyToCommand(ev))
	if !ok {
		return nil
	}
	n := cursorStep(ev)
	m := g.state.Map
	g.cursor = gamemap.Point{
		X: max(0, min(m.Width-1, g.cursor.X+dx*n)),
		Y: max(0, min(m.Height-1, g.cursor.Y+dy*n)),
	}
	return nil
}

// confirmCursor leaves look mode, or fires the pending item at the cursor.
func (g *Game) confirmCursor() error {
	if g.mode == ModeLook || g.target == nil {
		g.mode = ModeMain
		return nil
	}
	req := g.target
	g.target = nil
	a := req.Callback(g.cursor.X, g.cursor.Y)
	used := ecs.NilEntity
	if ia, ok := a.(action.ItemAction); ok {
		used = ia.Item
	}
	return g.perform(a, used)
}

var boosts = map[rune]system.Boost{
	'a': system.BoostConstitution,
	'b': system.BoostStrength,
	'c': system.BoostAgility,
}

func (g *Game) handleLevelUp(ev *tcell.EventKey) {
	boost, ok := boosts[ev.Rune()]
	if ev.Key() != tcell.KeyRune || !ok {
		g.state.AddMessage("Invalid entry.", palette.Invalid)
		return
	}
	system.LevelUp(g.state, g.state.Player, boost)
	if !system.RequiresLevelUp(g.state, g.state.Player) {
		g.mode = ModeMain
	}
}

func (g *Game) handleDead(ev *tcell.EventKey) error {
	if ev.Key() == tcell.KeyEscape {
		g.quit = true
		return nil
	}
	if ev.Key() != tcell.KeyRune {
		return nil
	}
	switch ev.Rune() {
	case 'r', 'R':
		return g.newRun(g.seeds.Int63())
	case 'q', 'Q':
		g.quit = true
	}
	return nil
}

func (g *Game) inventoryLabels() []string {
	items := g.inventory()
	labels := make([]string, 0, len(items))
	for _, id := range items {
		label := g.state.Name(id)
		if system.IsEquipped(g.state, g.state.Player, id) {
			label += " (E)"
		}
		labels = append(labels, label)
	}
	return labels
}

func (g *Game) levelUpLines() []string {
	f, _ := g.state.Fighter(g.state.Player)
	return []string{
		"Congratulations! You level up!",
		"Select an attribute to increase.",
		"",
		fmt.Sprintf("a) Constitution (+20 HP, from %d)", f.MaxHP),
		fmt.Sprintf("b) Strength (+1 attack, from %d)", f.BasePower),
		fmt.Sprintf("c) Agility (+1 defense, from %d)", f.BaseDefense),
	}
}

// summaryLines describes the finished run, kills sorted by count.
func (g *Game) summaryLines() []string {
	type killEntry struct {
		name  string
		count int
	}
	var kills []killEntry
	total := 0
	for name, n := range g.runLog.EnemiesKilled {
		kills = append(kills, killEntry{name, n})
		total += n
	}
	sort.Slice(kills, func(i, j int) bool {
		if kills[i].count != kills[j].count {
			return kills[i].count > kills[j].count
		}
		return kills[i].name < kills[j].name
	})
	items := 0
	for _, n := range g.runLog.ItemsUsed {
		items += n
	}

	lines := []string{
		fmt.Sprintf("Floor reached:  %d", g.runLog.FloorsReached),
		fmt.Sprintf("Turns survived: %d", g.runLog.TurnsPlayed),
		fmt.Sprintf("Level:          %d", g.runLog.Level),
		fmt.Sprintf("Enemies slain:  %d", total),
	}
	for _, k := range kills {
		lines = append(lines, fmt.Sprintf("  %s x%d", k.name, k.count))
	}
	lines = append(lines,
		fmt.Sprintf("Items used:     %d", items),
		"",
		"[R] Try again   [Q] Quit",
	)
	return lines
}

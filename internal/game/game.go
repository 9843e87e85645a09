package game

import (
	"fmt"
	"math/rand"
	"time"

	"delve-roguelike/internal/action"
	"delve-roguelike/internal/component"
	"delve-roguelike/internal/config"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/engine"
	"delve-roguelike/internal/factory"
	"delve-roguelike/internal/gamemap"
	"delve-roguelike/internal/generate"
	"delve-roguelike/internal/logger"
	"delve-roguelike/internal/palette"
	"delve-roguelike/internal/render"
	"delve-roguelike/internal/system"
	"delve-roguelike/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Mode selects which handler receives input.
type Mode uint8

const (
	ModeMain Mode = iota
	ModeInventoryUse
	ModeInventoryDrop
	ModeTarget
	ModeLook
	ModeLevelUp
	ModeDead
)

const frameDelay = 30 * time.Millisecond

// Game is the top-level orchestrator for one terminal.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      config.Config
	seeds    *rand.Rand

	state  *world.State
	engine *engine.Engine
	mode   Mode
	cursor gamemap.Point
	target *action.TargetRequest
	mouse  gamemap.Point // screen cell under the pointer

	runLog   RunLog
	runSaved bool
	quit     bool
	log      *logrus.Entry
}

// New prepares a run on an initialized screen. A zero cfg.Seed seeds from
// the clock. The caller owns the screen and finalizes it.
func New(screen tcell.Screen, cfg config.Config) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		cfg:      cfg,
		seeds:    rand.New(rand.NewSource(seed)),
		log:      logger.Log.WithField("component", "game"),
	}
	if err := g.newRun(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// newRun builds a fresh world: the player with a starting kit on floor 1.
func (g *Game) newRun(seed int64) error {
	s := world.New(ecs.NewWorld(), gamemap.New(g.cfg.MapWidth, g.cfg.MapHeight), rand.New(rand.NewSource(seed)))
	gen := &generate.Generator{
		MapWidth:  g.cfg.MapWidth,
		MapHeight: g.cfg.MapHeight,
		MaxRooms:  g.cfg.MaxRooms,
		RoomMin:   g.cfg.RoomMin,
		RoomMax:   g.cfg.RoomMax,
	}
	s.Effects = g.renderer.Effects()
	s.Floors = gen
	s.Player = factory.NewPlayer(s.World, 0, 0)
	if err := gen.BuildFloor(s); err != nil {
		return fmt.Errorf("new run: %w", err)
	}

	for _, kind := range []factory.Kind{factory.Dagger, factory.LeatherArmor} {
		item, err := factory.Give(s.World, s.Player, kind)
		if err != nil {
			return fmt.Errorf("new run: %w", err)
		}
		system.ToggleEquip(s, s.Player, item)
	}
	// The kit is worn silently.
	s.Log = &world.MessageLog{}
	s.AddMessage("Hello and welcome, adventurer, to yet another dungeon!", palette.WelcomeText)

	g.state = s
	g.engine = engine.New(s, g.cfg.FOVRadius)
	g.mode = ModeMain
	g.target = nil
	g.runLog = newRunLog(seed)
	g.runSaved = false
	g.log.WithField("seed", seed).Info("run started")
	return nil
}

// State exposes the running world.
func (g *Game) State() *world.State { return g.state }

// Mode reports the current input mode.
func (g *Game) Mode() Mode { return g.mode }

// Done reports whether the player asked to quit.
func (g *Game) Done() bool { return g.quit }

// Run draws and handles events until the player quits or the screen is
// finalized. Effects are played out before input is read again.
func (g *Game) Run() error {
	for !g.quit {
		g.draw()
		if g.renderer.Effects().Busy() {
			time.Sleep(frameDelay)
			continue
		}
		ev := g.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := g.HandleEvent(ev); err != nil {
			g.finishRun(false)
			return err
		}
	}
	return nil
}

// HandleEvent applies one terminal event. Only fatal game errors are
// returned.
func (g *Game) HandleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventMouse:
		x, y := ev.Position()
		g.mouse = gamemap.Point{X: x, Y: y}
		if g.mode != ModeTarget && g.mode != ModeLook {
			return nil
		}
		wx, wy := g.renderer.ScreenToWorld(x, y)
		if g.state.Map.InBounds(wx, wy) {
			g.cursor = gamemap.Point{X: wx, Y: wy}
			if ev.Buttons()&tcell.Button1 != 0 {
				return g.confirmCursor()
			}
		}
	case *tcell.EventKey:
		return g.handleKey(ev)
	}
	return nil
}

func (g *Game) handleKey(ev *tcell.EventKey) error {
	switch g.mode {
	case ModeInventoryUse, ModeInventoryDrop:
		return g.handleInventory(ev)
	case ModeTarget, ModeLook:
		return g.handleCursor(ev)
	case ModeLevelUp:
		g.handleLevelUp(ev)
		return nil
	case ModeDead:
		return g.handleDead(ev)
	}
	return g.handleMain(ev)
}

// perform runs a for the player and, when a turn was spent, records the
// run statistics and picks the next mode. used is the item being consumed,
// if any.
func (g *Game) perform(a action.Action, used ecs.EntityID) error {
	s := g.state
	before := make(map[ecs.EntityID]string)
	for _, id := range s.Actors() {
		if id != s.Player {
			before[id] = s.Name(id)
		}
	}
	usedName := ""
	if used != ecs.NilEntity {
		usedName = s.Name(used)
	}

	spent, err := g.engine.PlayerTurn(a)
	if err != nil {
		return err
	}
	if !spent {
		g.mode = ModeMain
		return nil
	}

	g.runLog.TurnsPlayed++
	g.runLog.FloorsReached = max(g.runLog.FloorsReached, s.Floor)
	for id, name := range before {
		if f, ok := s.Fighter(id); ok && !f.Alive() {
			g.runLog.EnemiesKilled[name]++
		}
	}
	if used != ecs.NilEntity && !s.World.Alive(used) {
		g.runLog.ItemsUsed[usedName]++
	}
	g.afterTurn()
	return nil
}

func (g *Game) afterTurn() {
	switch {
	case g.engine.PlayerDead():
		g.mode = ModeDead
		g.finishRun(true)
	case system.RequiresLevelUp(g.state, g.state.Player):
		g.mode = ModeLevelUp
	default:
		g.mode = ModeMain
	}
}

// finishRun records the run once, when enabled.
func (g *Game) finishRun(died bool) {
	if g.runSaved {
		return
	}
	g.runSaved = true
	g.runLog.Died = died
	if c := g.state.World.Get(g.state.Player, component.CLevel); c != nil {
		g.runLog.Level = c.(component.Level).Current
	}
	fields := logrus.Fields{
		"seed":  g.runLog.Seed,
		"floor": g.runLog.FloorsReached,
		"turns": g.runLog.TurnsPlayed,
		"died":  died,
	}
	g.log.WithFields(fields).Info("run finished")
	if !g.cfg.RunLog {
		return
	}
	if err := saveRunLog(g.runLog); err != nil {
		g.log.WithError(err).Warn("run log not saved")
	}
}

// inventory returns the player's held items in pickup order.
func (g *Game) inventory() []ecs.EntityID {
	inv, ok := system.Inventory(g.state, g.state.Player)
	if !ok {
		return nil
	}
	return inv.Items
}

func (g *Game) playerPoint() gamemap.Point {
	pos, _ := g.state.Position(g.state.Player)
	return gamemap.Point{X: pos.X, Y: pos.Y}
}

func (g *Game) draw() {
	s := g.state
	g.renderer.DrawFrame(s)
	g.renderer.DrawHUD(s)

	switch g.mode {
	case ModeInventoryUse:
		g.renderer.DrawMenu("Select an item to use", g.inventoryLabels())
	case ModeInventoryDrop:
		g.renderer.DrawMenu("Select an item to drop", g.inventoryLabels())
	case ModeTarget:
		g.renderer.DrawCursor(s.Map, g.cursor, g.target.Radius)
		g.drawNamesAtCursor()
	case ModeLook:
		g.renderer.DrawCursor(s.Map, g.cursor, 0)
		g.drawNamesAtCursor()
	case ModeLevelUp:
		g.renderer.DrawMessageBox("Level Up", g.levelUpLines())
	case ModeDead:
		g.renderer.DrawMessageBox("You died", g.summaryLines())
	default:
		g.renderer.DrawNamesAt(s, g.mouse.X, g.mouse.Y)
	}
	g.renderer.Show()
}

func (g *Game) drawNamesAtCursor() {
	if sx, sy, ok := g.renderer.WorldToScreen(g.cursor.X, g.cursor.Y); ok {
		g.renderer.DrawNamesAt(g.state, sx, sy)
	}
}

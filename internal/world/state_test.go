package world

import (
	"errors"
	"testing"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

func newState() *State {
	return New(ecs.NewWorld(), gamemap.New(10, 10), nil)
}

func addActor(s *State, x, y, hp int) ecs.EntityID {
	id := s.World.CreateEntity()
	s.World.Add(id, component.Position{X: x, Y: y})
	s.World.Add(id, component.Fighter{HP: hp, MaxHP: 10})
	s.World.Add(id, component.TagBlocking{})
	return id
}

func TestMessageLogStacksRepeats(t *testing.T) {
	var l MessageLog
	l.Add("That way is blocked.", tcell.ColorGray)
	l.Add("That way is blocked.", tcell.ColorGray)
	l.Add("Nothing to attack.", tcell.ColorGray)
	l.Add("Nothing to attack.", tcell.ColorGray)
	l.Add("Nothing to attack.", tcell.ColorGray)

	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}
	if got := l.Messages()[0].FullText(); got != "That way is blocked. (x2)" {
		t.Fatalf("first = %q", got)
	}
	if got := l.Last().FullText(); got != "Nothing to attack. (x3)" {
		t.Fatalf("last = %q", got)
	}
}

func TestMessageLogBounded(t *testing.T) {
	var l MessageLog
	for i := range maxMessages + 5 {
		l.Add(string(rune('A'+i%26))+string(rune('a'+i/26)), tcell.ColorWhite)
	}
	if l.Len() != maxMessages {
		t.Fatalf("Len = %d, want %d", l.Len(), maxMessages)
	}
	var empty MessageLog
	if empty.Last().Text != "" {
		t.Fatal("empty log should return the zero message")
	}
}

func TestActorsSkipDeadAndUnplaced(t *testing.T) {
	s := newState()
	a := addActor(s, 1, 1, 5)
	addActor(s, 2, 2, 0)
	c := addActor(s, 3, 3, 5)
	held := s.World.CreateEntity()
	s.World.Add(held, component.Fighter{HP: 5, MaxHP: 5})

	got := s.Actors()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("Actors = %v, want [%d %d]", got, a, c)
	}
	if s.ActorAt(2, 2) != ecs.NilEntity {
		t.Fatal("a corpse is not an actor")
	}
	if s.BlockingEntityAt(3, 3) != c {
		t.Fatal("blocking lookup missed the actor")
	}
}

func TestClearFloorKeepsPlayerAndHeldItems(t *testing.T) {
	s := newState()
	s.Player = addActor(s, 1, 1, 10)
	held := s.World.CreateEntity()
	s.World.Add(held, component.TagItem{})
	s.World.Add(s.Player, component.Inventory{Items: []ecs.EntityID{held}, Capacity: 26})
	monster := addActor(s, 4, 4, 3)
	loose := s.World.CreateEntity()
	s.World.Add(loose, component.TagItem{})
	s.World.Add(loose, component.Position{X: 5, Y: 5})

	s.ClearFloor()
	if !s.World.Alive(s.Player) || !s.World.Alive(held) {
		t.Fatal("player or held item destroyed")
	}
	if s.World.Alive(monster) || s.World.Alive(loose) {
		t.Fatal("floor entities survived")
	}
	if s.Holder(held) != s.Player {
		t.Fatal("held item lost its holder")
	}
}

type stubFloors struct{ calls int }

func (f *stubFloors) GenerateFloor(s *State) error {
	f.calls++
	s.Floor++
	return nil
}

func TestNextFloor(t *testing.T) {
	s := newState()
	if err := s.NextFloor(); !errors.Is(err, ErrNoFloorGenerator) {
		t.Fatalf("err = %v, want ErrNoFloorGenerator", err)
	}
	f := &stubFloors{}
	s.Floors = f
	if err := s.NextFloor(); err != nil || s.Floor != 2 || f.calls != 1 {
		t.Fatalf("err = %v, floor = %d, calls = %d", err, s.Floor, f.calls)
	}
}

func TestEmitWithoutSinkIsSilent(t *testing.T) {
	s := newState()
	s.Emit(Effect{Kind: EffectLine, Frames: 3})
}

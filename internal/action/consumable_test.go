package action

import (
	"testing"

	"delve-roguelike/internal/component"
	"delve-roguelike/internal/ecs"
	"delve-roguelike/internal/gamemap"
	"delve-roguelike/internal/world"
)

func fireballScroll() component.Consumable {
	return component.Consumable{Kind: component.ConsumeFireball, Damage: 12, Radius: 4}
}

func useAt(s *world.State, actor, item ecs.EntityID, x, y int) error {
	return ItemAction{Actor: actor, Item: item, Target: &gamemap.Point{X: x, Y: y}}.Perform(s)
}

func TestGetActionTargeting(t *testing.T) {
	tests := []struct {
		name       string
		cons       component.Consumable
		wantTarget bool
		wantRadius int
	}{
		{"healing", component.Consumable{Kind: component.ConsumeHealing, Amount: 4}, false, 0},
		{"lightning", component.Consumable{Kind: component.ConsumeLightning, Damage: 20, Range: 5}, false, 0},
		{"speed", component.Consumable{Kind: component.ConsumeSpeed, Turns: 20}, false, 0},
		{"confusion", component.Consumable{Kind: component.ConsumeConfusion, Turns: 10}, true, 0},
		{"hypnotize", component.Consumable{Kind: component.ConsumeHypnotize, Turns: 7}, true, 0},
		{"fireball", fireballScroll(), true, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState()
			p := addPlayer(s, 5, 5)
			item := giveItem(s, p, tt.name, tt.cons)

			act, req := GetAction(s, p, item)
			if tt.wantTarget {
				if act != nil || req == nil {
					t.Fatalf("got action %v, request %v; want a target request", act, req)
				}
				if req.Radius != tt.wantRadius {
					t.Fatalf("radius = %d, want %d", req.Radius, tt.wantRadius)
				}
				if lastMessage(s) != "Select a target location." {
					t.Fatalf("message = %q", lastMessage(s))
				}
				built, ok := req.Callback(7, 8).(ItemAction)
				if !ok || built.Target == nil || *built.Target != (gamemap.Point{X: 7, Y: 8}) {
					t.Fatalf("callback built %+v", built)
				}
				return
			}
			if req != nil {
				t.Fatal("unexpected target request")
			}
			if _, ok := act.(ItemAction); !ok {
				t.Fatalf("action = %T, want ItemAction", act)
			}
		})
	}
}

func TestHealing(t *testing.T) {
	s := newState()
	p := addPlayer(s, 5, 5)
	potion := giveItem(s, p, "Health Potion", component.Consumable{Kind: component.ConsumeHealing, Amount: 4})

	err := (ItemAction{Actor: p, Item: potion}).Perform(s)
	if imp, ok := AsImpossible(err); !ok || imp.Msg != "Your health is already full." {
		t.Fatalf("full hp: %v", err)
	}
	if !s.World.Alive(potion) {
		t.Fatal("potion consumed on refusal")
	}

	f, _ := s.Fighter(p)
	f.HP = 28
	s.World.Add(p, f)
	if err := (ItemAction{Actor: p, Item: potion}).Perform(s); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if hp(s, p) != 30 {
		t.Fatalf("hp = %d, want 30", hp(s, p))
	}
	if lastMessage(s) != "You consume the Health Potion, and recover 2 HP!" {
		t.Fatalf("message = %q", lastMessage(s))
	}
	if s.World.Alive(potion) || s.Holder(potion) != ecs.NilEntity {
		t.Fatal("potion not consumed")
	}
}

func TestLightningPicksClosestVisible(t *testing.T) {
	s := newState()
	sink := &recordSink{}
	s.Effects = sink
	p := addPlayer(s, 5, 5)
	far := addOrc(s, 9, 5)
	near := addOrc(s, 7, 5)
	hidden := addOrc(s, 6, 5)
	s.Map.At(6, 5).Visible = false
	scroll := giveItem(s, p, "Lightning Scroll", component.Consumable{Kind: component.ConsumeLightning, Damage: 20, Range: 5})

	if err := (ItemAction{Actor: p, Item: scroll}).Perform(s); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if hp(s, near) != 0 {
		t.Fatalf("near orc hp = %d, want 0", hp(s, near))
	}
	if hp(s, far) != 10 || hp(s, hidden) != 10 {
		t.Fatal("wrong orc struck")
	}
	if len(sink.effects) != 1 || sink.effects[0].Kind != world.EffectLine ||
		sink.effects[0].To != (gamemap.Point{X: 7, Y: 5}) {
		t.Fatalf("effects = %+v", sink.effects)
	}
	if s.World.Alive(scroll) {
		t.Fatal("scroll not consumed")
	}
}

func TestLightningTieGoesToEarliest(t *testing.T) {
	s := newState()
	p := addPlayer(s, 5, 5)
	first := addOrc(s, 5, 8)
	second := addOrc(s, 8, 5)
	scroll := giveItem(s, p, "Lightning Scroll", component.Consumable{Kind: component.ConsumeLightning, Damage: 4, Range: 5})

	if err := (ItemAction{Actor: p, Item: scroll}).Perform(s); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if hp(s, first) != 6 || hp(s, second) != 10 {
		t.Fatalf("first = %d, second = %d", hp(s, first), hp(s, second))
	}
}

func TestLightningOutOfRange(t *testing.T) {
	s := newState()
	p := addPlayer(s, 0, 0)
	// distance 6 is outside Range+1 = 6 under strict comparison
	orc := addOrc(s, 6, 0)
	scroll := giveItem(s, p, "Lightning Scroll", component.Consumable{Kind: component.ConsumeLightning, Damage: 20, Range: 5})

	err := (ItemAction{Actor: p, Item: scroll}).Perform(s)
	if imp, ok := AsImpossible(err); !ok || imp.Msg != "No enemy is close enough to strike." {
		t.Fatalf("err = %v", err)
	}
	if hp(s, orc) != 10 || !s.World.Alive(scroll) {
		t.Fatal("state changed on refusal")
	}
}

func TestConfusionFailureOrder(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(s *world.State)
		x, y    int
		wantMsg string
	}{
		{"unseen self tile", func(s *world.State) { s.Map.At(5, 5).Visible = false }, 5, 5,
			"You cannot target an area that you cannot see."},
		{"self", nil, 5, 5, "You cannot confuse yourself!"},
		{"empty tile", nil, 8, 8, "You must select an enemy to target."},
		{"unseen orc", func(s *world.State) { s.Map.At(6, 5).Visible = false }, 6, 5,
			"You cannot target an area that you cannot see."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState()
			p := addPlayer(s, 5, 5)
			addOrc(s, 6, 5)
			scroll := giveItem(s, p, "Confusion Scroll", component.Consumable{Kind: component.ConsumeConfusion, Turns: 10})
			if tt.setup != nil {
				tt.setup(s)
			}

			err := useAt(s, p, scroll, tt.x, tt.y)
			if imp, ok := AsImpossible(err); !ok || imp.Msg != tt.wantMsg {
				t.Fatalf("err = %v, want %q", err, tt.wantMsg)
			}
			if !s.World.Alive(scroll) {
				t.Fatal("scroll consumed on refusal")
			}
		})
	}
}

func TestHypnotizeSelf(t *testing.T) {
	s := newState()
	p := addPlayer(s, 5, 5)
	scroll := giveItem(s, p, "Hypnotize Scroll", component.Consumable{Kind: component.ConsumeHypnotize, Turns: 7})
	err := useAt(s, p, scroll, 5, 5)
	if imp, ok := AsImpossible(err); !ok || imp.Msg != "You cannot hypnotize yourself!" {
		t.Fatalf("err = %v", err)
	}
}

func TestConfusionOverlaysAI(t *testing.T) {
	s := newState()
	p := addPlayer(s, 5, 5)
	orc := addOrc(s, 6, 5)
	scroll := giveItem(s, p, "Confusion Scroll", component.Consumable{Kind: component.ConsumeConfusion, Turns: 10})

	if err := useAt(s, p, scroll, 6, 5); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	ai := s.World.Get(orc, component.CAI).(component.AI)
	if ai.Kind != component.AIConfused || ai.TurnsRemaining != 10 {
		t.Fatalf("ai = %+v", ai)
	}
	if ai.Restore().Kind != component.AIHostile {
		t.Fatalf("previous = %v, want hostile", ai.Restore().Kind)
	}
	if lastMessage(s) != "The eyes of the Orc look vacant, as it starts to stumble around!" {
		t.Fatalf("message = %q", lastMessage(s))
	}
	if s.World.Alive(scroll) {
		t.Fatal("scroll not consumed")
	}
}

func TestHypnotizeActorWithoutAI(t *testing.T) {
	s := newState()
	p := addPlayer(s, 5, 5)
	dummy := addFighter(s, "Dummy", 6, 5, 5, 0, 0)
	scroll := giveItem(s, p, "Hypnotize Scroll", component.Consumable{Kind: component.ConsumeHypnotize, Turns: 7})

	if err := useAt(s, p, scroll, 6, 5); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	ai := s.World.Get(dummy, component.CAI).(component.AI)
	if ai.Kind != component.AIHypnotized || ai.Restore().Kind != component.AINone {
		t.Fatalf("ai = %+v", ai)
	}
	if lastMessage(s) != "The Dummy looks entranced, as it starts to follow your commands!" {
		t.Fatalf("message = %q", lastMessage(s))
	}
}

func TestFireballRadius(t *testing.T) {
	s := newState()
	sink := &recordSink{}
	s.Effects = sink
	p := addPlayer(s, 0, 0)
	edge := addFighter(s, "Troll", 14, 10, 16, 4, 1) // DistSq 16
	outside := addFighter(s, "Troll", 14, 11, 16, 4, 1)
	center := addOrc(s, 10, 10)
	scroll := giveItem(s, p, "Fireball Scroll", fireballScroll())

	if err := useAt(s, p, scroll, 10, 10); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if hp(s, edge) != 4 {
		t.Fatalf("edge hp = %d, want 4", hp(s, edge))
	}
	if hp(s, outside) != 16 {
		t.Fatalf("outside hp = %d, want 16", hp(s, outside))
	}
	if hp(s, center) != 0 {
		t.Fatalf("center hp = %d, want 0", hp(s, center))
	}
	if hp(s, p) != 30 {
		t.Fatal("player outside the blast was hurt")
	}
	if s.World.Alive(scroll) || s.Holder(scroll) != ecs.NilEntity {
		t.Fatal("scroll not consumed exactly once")
	}
	if len(sink.effects) != 1 || sink.effects[0].Kind != world.EffectArea {
		t.Fatalf("effects = %+v", sink.effects)
	}
}

func TestFireballHitsUser(t *testing.T) {
	s := newState()
	p := addPlayer(s, 5, 5)
	scroll := giveItem(s, p, "Fireball Scroll", fireballScroll())

	if err := useAt(s, p, scroll, 6, 5); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if hp(s, p) != 18 {
		t.Fatalf("hp = %d, want 18", hp(s, p))
	}
}

func TestFireballNoTargets(t *testing.T) {
	s := newState()
	sink := &recordSink{}
	s.Effects = sink
	p := addPlayer(s, 0, 0)
	orc := addOrc(s, 19, 19)
	scroll := giveItem(s, p, "Fireball Scroll", fireballScroll())
	logLen := s.Log.Len()

	err := useAt(s, p, scroll, 10, 10)
	if imp, ok := AsImpossible(err); !ok || imp.Msg != "There are no targets in the radius." {
		t.Fatalf("err = %v", err)
	}
	if !s.World.Alive(scroll) || s.Holder(scroll) != p {
		t.Fatal("scroll consumed on a miss")
	}
	if hp(s, orc) != 10 || s.Log.Len() != logLen {
		t.Fatal("game state changed on a miss")
	}
	// The blast area is still shown.
	if len(sink.effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(sink.effects))
	}
}

func TestFireballUnseenTarget(t *testing.T) {
	s := newState()
	p := addPlayer(s, 0, 0)
	scroll := giveItem(s, p, "Fireball Scroll", fireballScroll())
	s.Map.At(10, 10).Visible = false

	err := useAt(s, p, scroll, 10, 10)
	if imp, ok := AsImpossible(err); !ok || imp.Msg != "You cannot target an area that you cannot see." {
		t.Fatalf("err = %v", err)
	}
}

func TestSpeedDoesNotStack(t *testing.T) {
	s := newState()
	p := addPlayer(s, 5, 5)
	first := giveItem(s, p, "Speed Scroll", component.Consumable{Kind: component.ConsumeSpeed, Turns: 20})
	second := giveItem(s, p, "Speed Scroll", component.Consumable{Kind: component.ConsumeSpeed, Turns: 20})

	if err := (ItemAction{Actor: p, Item: first}).Perform(s); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if lastMessage(s) != "You feel yourself moving faster for 20 turns!" {
		t.Fatalf("message = %q", lastMessage(s))
	}
	if err := (Movement{Actor: p, DX: 1}).Perform(s); err != nil {
		t.Fatalf("Movement: %v", err)
	}

	err := (ItemAction{Actor: p, Item: second}).Perform(s)
	if imp, ok := AsImpossible(err); !ok || imp.Msg != "You are already under the effect of a speed scroll." {
		t.Fatalf("err = %v", err)
	}
	if got := s.Status(p); !got.Speeded || got.SpeedTurns != 19 {
		t.Fatalf("status = %+v, want 19 turns left", got)
	}
	if !s.World.Alive(second) {
		t.Fatal("second scroll consumed")
	}
}

func TestItemActionWithoutConsumable(t *testing.T) {
	s := newState()
	p := addPlayer(s, 5, 5)
	sword := giveItem(s, p, "Sword")
	if err := (ItemAction{Actor: p, Item: sword}).Perform(s); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if !s.World.Alive(sword) {
		t.Fatal("non-consumable destroyed")
	}
}

func TestDiscTilesClipsToMap(t *testing.T) {
	gmap := gamemap.New(10, 10)
	tiles := DiscTiles(gmap, 0, 0, 1)
	// (0,0), (1,0), (0,1) survive the clip.
	if len(tiles) != 3 {
		t.Fatalf("len = %d, want 3: %+v", len(tiles), tiles)
	}
	for _, pt := range tiles {
		if !gmap.InBounds(pt.X, pt.Y) {
			t.Fatalf("out of bounds tile %+v", pt)
		}
	}
}

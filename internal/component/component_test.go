package component

import (
	"testing"

	"delve-roguelike/internal/ecs"
)

func TestAIOverlayRestores(t *testing.T) {
	base := AI{Kind: AIHostile}
	confused := base.Overlay(AIConfused, 10)
	if !confused.IsOverlay() || confused.Kind != AIConfused || confused.TurnsRemaining != 10 {
		t.Fatalf("overlay = %+v", confused)
	}
	hypnotized := confused.Overlay(AIHypnotized, 5)
	if got := hypnotized.Restore(); got.Kind != AIConfused || got.TurnsRemaining != 10 {
		t.Fatalf("first restore = %+v, want the confused overlay", got)
	}
	if got := hypnotized.Restore().Restore(); got.Kind != AIHostile || got.IsOverlay() {
		t.Fatalf("second restore = %+v, want the hostile base", got)
	}
	if got := base.Restore(); got.Kind != AIHostile {
		t.Fatalf("restore on a base strategy = %+v", got)
	}
}

func TestInventoryCopies(t *testing.T) {
	inv := Inventory{Items: []ecs.EntityID{1, 2, 3}, Capacity: 3}
	if !inv.Full() {
		t.Fatal("inventory at capacity should be full")
	}

	fewer, ok := inv.Without(2)
	if !ok || len(fewer.Items) != 2 || fewer.Items[1] != 3 {
		t.Fatalf("Without(2) = %v, %v", fewer.Items, ok)
	}
	if len(inv.Items) != 3 || inv.Items[1] != 2 {
		t.Fatal("Without modified the receiver")
	}
	if _, ok := inv.Without(9); ok {
		t.Fatal("Without reported a missing item as removed")
	}

	more := fewer.With(7)
	if !more.Contains(7) || fewer.Contains(7) {
		t.Fatal("With should return a copy holding the item")
	}
}

func TestLevelCurve(t *testing.T) {
	l := Level{Current: 1, LevelUpBase: 200, LevelUpFactor: 150}
	if l.XPToNext() != 350 {
		t.Fatalf("XPToNext = %d, want 350", l.XPToNext())
	}
	l.XP = 349
	if l.RequiresLevelUp() {
		t.Fatal("349 XP should not level up")
	}
	l.XP = 350
	if !l.RequiresLevelUp() {
		t.Fatal("350 XP should level up")
	}
	if (Level{XP: 1000, XPGiven: 35}).RequiresLevelUp() {
		t.Fatal("monsters never level up")
	}
}

func TestPositionHelpers(t *testing.T) {
	p := Position{X: 2, Y: 3}.Offset(1, -1)
	if p.X != 3 || p.Y != 2 {
		t.Fatalf("Offset = %+v", p)
	}
	if d := p.DistSq(6, 6); d != 25 {
		t.Fatalf("DistSq = %d, want 25", d)
	}
}

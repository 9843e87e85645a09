package generate

import (
	"math/rand"

	"delve-roguelike/internal/factory"
)

// floorValue is a step function keyed by the first floor it applies to.
type floorValue struct {
	floor, value int
}

var (
	maxItemsByFloor    = []floorValue{{1, 2}, {4, 3}, {6, 4}}
	maxMonstersByFloor = []floorValue{{1, 3}, {4, 4}, {6, 5}}
)

type weighted struct {
	kind   factory.Kind
	weight int
}

// floorChances lists spawn weights from a given floor onward. Later
// entries override the weight of a kind already listed.
type floorChances struct {
	floor   int
	entries []weighted
}

var itemChances = []floorChances{
	{0, []weighted{
		{factory.HealthPotion, 20}, {factory.ConfusionScroll, 10}, {factory.FireballScroll, 10},
		{factory.LightningScroll, 10}, {factory.HypnotizeScroll, 10}, {factory.SpeedScroll, 10},
	}},
	{2, []weighted{{factory.HealthPotion, 70}}},
	{4, []weighted{{factory.HealthPotion, 50}, {factory.Sword, 5}, {factory.ChainMail, 5}}},
	{6, []weighted{{factory.HealthPotion, 30}, {factory.Sword, 10}, {factory.ChainMail, 10}}},
}

var enemyChances = []floorChances{
	{0, []weighted{{factory.Orc, 80}}},
	{3, []weighted{{factory.Troll, 15}}},
	{5, []weighted{{factory.Troll, 30}}},
	{7, []weighted{{factory.Troll, 60}}},
}

// maxForFloor returns the value of the last step at or below floor.
func maxForFloor(table []floorValue, floor int) int {
	current := 0
	for _, fv := range table {
		if fv.floor > floor {
			break
		}
		current = fv.value
	}
	return current
}

// chancesForFloor merges every step at or below floor. Kinds keep the
// position of their first appearance so weighted picks stay reproducible.
func chancesForFloor(table []floorChances, floor int) []weighted {
	var out []weighted
	index := make(map[factory.Kind]int)
	for _, fc := range table {
		if fc.floor > floor {
			break
		}
		for _, w := range fc.entries {
			if i, ok := index[w.kind]; ok {
				out[i].weight = w.weight
				continue
			}
			index[w.kind] = len(out)
			out = append(out, w)
		}
	}
	return out
}

// pickWeighted draws n kinds with replacement.
func pickWeighted(rng *rand.Rand, entries []weighted, n int) []factory.Kind {
	total := 0
	for _, w := range entries {
		total += w.weight
	}
	if total <= 0 {
		return nil
	}
	picks := make([]factory.Kind, 0, n)
	for range n {
		roll := rng.Intn(total)
		for _, w := range entries {
			if roll < w.weight {
				picks = append(picks, w.kind)
				break
			}
			roll -= w.weight
		}
	}
	return picks
}

package component

import "delve-roguelike/internal/ecs"

// Tags carry no data; presence is the signal.
const (
	CTagPlayer   ecs.ComponentType = 12
	CTagBlocking ecs.ComponentType = 13
	CTagItem     ecs.ComponentType = 14
)

type (
	// TagPlayer is on exactly one entity.
	TagPlayer struct{}
	// TagBlocking keeps other actors off the entity's tile. Corpses lose it.
	TagBlocking struct{}
	// TagItem marks something that can be carried, on the floor or held.
	TagItem struct{}
)

func (TagPlayer) Type() ecs.ComponentType   { return CTagPlayer }
func (TagBlocking) Type() ecs.ComponentType { return CTagBlocking }
func (TagItem) Type() ecs.ComponentType     { return CTagItem }

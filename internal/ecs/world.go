package ecs

import "slices"

// World holds every entity and its components. Iteration is always in
// creation order: turn scheduling and target tie-breaks rely on it.
type World struct {
	nextID EntityID
	alive  map[EntityID]struct{}
	stores map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID: 1,
		alive:  make(map[EntityID]struct{}),
		stores: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new live entity with no components.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = struct{}{}
	return id
}

// DestroyEntity removes the entity and all of its components. Destroying
// an unknown or already destroyed entity does nothing.
func (w *World) DestroyEntity(id EntityID) {
	if !w.Alive(id) {
		return
	}
	delete(w.alive, id)
	for _, store := range w.stores {
		delete(store, id)
	}
}

func (w *World) Alive(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int { return len(w.alive) }

// Add stores c on id, replacing a component of the same type. Components
// are values: mutate a copy from Get, then Add it back.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	store := w.stores[t]
	if store == nil {
		store = make(map[EntityID]Component)
		w.stores[t] = store
	}
	store[id] = c
}

// Get returns id's component of type t, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.stores[t][id]
}

func (w *World) Remove(id EntityID, t ComponentType) {
	delete(w.stores[t], id)
}

func (w *World) Has(id EntityID, t ComponentType) bool {
	_, ok := w.stores[t][id]
	return ok
}

// Query returns the live entities holding every listed type, oldest first.
// It returns nil for no types or when any store is empty.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	smallest := w.stores[types[0]]
	for _, t := range types {
		store := w.stores[t]
		if len(store) == 0 {
			return nil
		}
		if len(store) < len(smallest) {
			smallest = store
		}
	}

	var result []EntityID
	for id := range smallest {
		if w.Alive(id) && w.hasAll(id, types) {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

func (w *World) hasAll(id EntityID, types []ComponentType) bool {
	for _, t := range types {
		if !w.Has(id, t) {
			return false
		}
	}
	return true
}

// Package ecs is a minimal entity/component store. The dungeon shares one
// World between all connected players; the server's tick loop is the only
// writer.
package ecs

// EntityID uniquely identifies an entity. The zero value is never issued.
type EntityID uint64

// NilEntity marks "no entity" in return values and session state.
const NilEntity EntityID = 0

// ComponentType keys the per-kind component stores.
type ComponentType uint8

// Component is implemented by every data struct attached to entities.
type Component interface {
	Type() ComponentType
}

// World owns entity identity and all component data for one dungeon.
type World struct {
	nextID EntityID
	alive  map[EntityID]bool
	stores map[ComponentType]map[EntityID]Component
}

// NewWorld returns an empty World.
func NewWorld() *World {
	return &World{
		nextID: 1,
		alive:  make(map[EntityID]bool),
		stores: make(map[ComponentType]map[EntityID]Component),
	}
}

// Create mints a new live entity.
func (w *World) Create() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// Destroy kills the entity and drops all of its components.
func (w *World) Destroy(id EntityID) {
	if !w.alive[id] {
		return
	}
	w.alive[id] = false
	for _, store := range w.stores {
		delete(store, id)
	}
}

// Alive reports whether the entity exists and has not been destroyed.
func (w *World) Alive(id EntityID) bool { return w.alive[id] }

// Add attaches (or replaces) a component on the entity.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	if w.stores[t] == nil {
		w.stores[t] = make(map[EntityID]Component)
	}
	w.stores[t][id] = c
}

// Get returns the entity's component of the given type, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.stores[t][id]
}

// Remove detaches one component from the entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	delete(w.stores[t], id)
}

// Has reports whether the entity carries a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns every live entity that has all the listed component types.
// The first type's store drives the scan, so put the rarest type first.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	var out []EntityID
	for id := range w.stores[types[0]] {
		if !w.alive[id] {
			continue
		}
		ok := true
		for _, t := range types[1:] {
			if !w.Has(id, t) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, id)
		}
	}
	return out
}

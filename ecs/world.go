package ecs

import "github.com/milk9111/brickpong/ecs/component"

// System updates a world once per simulation tick.
type System interface {
	Update(w *World)
}

// World owns entities, component tables, and system order. It is
// exclusively owned by the simulation tick; presentation code only
// reads from it between ticks.
type World struct {
	entities entityStore
	tables   map[component.ComponentID]*sparseSet
	systems  []System
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{tables: make(map[component.ComponentID]*sparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components. It
// returns false for a stale or already-destroyed handle.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, table := range w.tables {
		table.remove(e.id())
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, int(w.entities.nextID))
	for id := entityID(1); id <= w.entities.nextID; id++ {
		if e, ok := w.entities.alive(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// AddSystem appends a system to the update order. Order is the tick
// order; it never changes after setup.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, in the order they were added.
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update(w)
	}
}

func (w *World) table(id component.ComponentID) *sparseSet {
	t, ok := w.tables[id]
	if !ok {
		t = &sparseSet{}
		w.tables[id] = t
	}
	return t
}

// Query returns all live entities that carry every given component
// kind. The smallest table drives the scan.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if len(kinds) == 0 {
		return nil
	}
	smallest := w.table(kinds[0].ID())
	for _, k := range kinds[1:] {
		if t := w.table(k.ID()); t.len() < smallest.len() {
			smallest = t
		}
	}

	out := make([]Entity, 0, smallest.len())
scan:
	for _, id := range smallest.ids() {
		for _, k := range kinds {
			if !w.table(k.ID()).has(id) {
				continue scan
			}
		}
		if e, ok := w.entities.alive(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any one live entity carrying the kind. It is used for
// singleton components such as the match state.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	t := w.table(kind.ID())
	for _, id := range t.denseIDs {
		if e, ok := w.entities.alive(id); ok {
			return e, true
		}
	}
	return 0, false
}

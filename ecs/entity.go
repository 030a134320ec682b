package ecs

import "fmt"

// Entity is an opaque handle: the low 32 bits are the slot id, the
// high 32 bits the generation the slot had when the handle was issued.
// Destroying an entity bumps the slot's generation, so every handle
// pointing at the old occupant goes stale at once.
type Entity uint64

// Nil is the zero handle; it never refers to a live entity.
const Nil Entity = 0

type entityID uint32
type generation uint32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(id) | Entity(gen)<<32
}

func (e Entity) id() entityID           { return entityID(e & 0xffffffff) }
func (e Entity) generation() generation { return generation(e >> 32) }

// Valid reports whether the handle could ever refer to an entity. It
// does not check liveness; use World.IsAlive for that.
func (e Entity) Valid() bool {
	return e != Nil
}

func (e Entity) String() string {
	return fmt.Sprintf("e%d.%d", e.id(), e.generation())
}

package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a component table in the world. Ids are handed out
// from a process-wide counter; zero is reserved as invalid.
type ComponentID uint32

var lastID atomic.Uint32

// ComponentKind is the typed identity of a component. The phantom type
// parameter keeps kinds of different component types from mixing up at
// compile time.
type ComponentKind[T any] struct {
	id ComponentID
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// AnyKind is the type-erased view of a ComponentKind, used when mixing
// kinds of different component types in a single query.
type AnyKind interface {
	ID() ComponentID
}

// ComponentHandle is what component definitions export: one package
// level handle per component type, declared as
//
//	var XComponent = NewComponent[X]()
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers a new component type and returns its handle.
func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{
		kind: ComponentKind[T]{id: ComponentID(lastID.Add(1))},
	}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }

package ecs

import "github.com/milk9111/brickpong/ecs/component"

// Add attaches a component value to an entity, replacing any existing
// value of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if !handle.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	v := value
	w.table(handle.Kind().ID()).set(e.id(), &v)
	return nil
}

// Get returns a pointer to the entity's component, so callers can
// mutate it in place.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v := w.table(handle.Kind().ID()).get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether the entity carries the component kind.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.IsAlive(e) && w.table(handle.Kind().ID()).has(e.id())
}

// Remove detaches the component from the entity.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.table(handle.Kind().ID()).remove(e.id())
}

// ForEach visits every live entity carrying the component kind. The
// iteration order is the dense table order; entities created or
// destroyed by fn are not visited in the same pass.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	t := w.table(handle.Kind().ID())
	for _, id := range t.ids() {
		e, ok := w.entities.alive(id)
		if !ok {
			continue
		}
		v, ok := t.get(id).(*T)
		if !ok || v == nil {
			continue
		}
		fn(e, v)
	}
}

package ecs

import (
	"testing"

	"github.com/milk9111/brickpong/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead handle")
				}
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	if err := Add(w, e1, h, 7); err != nil {
		t.Fatal(err)
	}
	if !w.DestroyEntity(e1) {
		t.Fatal("failed to destroy entity")
	}

	// the freed slot comes back with a bumped generation
	e2 := w.CreateEntity()
	if e1 == e2 {
		t.Fatalf("reused handle must differ from the stale one")
	}
	if w.IsAlive(e1) {
		t.Fatalf("stale handle should not be alive")
	}
	if _, ok := Get(w, e1, h); ok {
		t.Fatalf("stale handle should not reach the old component")
	}
	if Has(w, e2, h) {
		t.Fatalf("reused entity must start without components")
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestWorldComponentsTable(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()
	h3 := component.NewComponent[float64]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, 10) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, "a"); err != nil {
					return err
				}
				return Add(w, e2, h2, "b")
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2) },
		},
		{
			name:  "replace_value",
			setup: func() error { return Add(w, e1, h3, 1.23) },
			check: func(t *testing.T) {
				if err := Add(w, e1, h3, 4.56); err != nil {
					t.Fatal(err)
				}
				v, ok := Get(w, e1, h3)
				if !ok || *v != 4.56 {
					t.Fatalf("expected replaced value 4.56, got %v", v)
				}
			},
			teardown: func() bool { return Remove(w, e1, h3) },
		},
		{
			name:  "mutate_through_pointer",
			setup: func() error { return Add(w, e1, h1, 1) },
			check: func(t *testing.T) {
				v, _ := Get(w, e1, h1)
				*v = 99
				v2, _ := Get(w, e1, h1)
				if *v2 != 99 {
					t.Fatalf("expected in-place mutation to stick, got %d", *v2)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e := w.CreateEntity()
	w.DestroyEntity(e)

	if err := Add(w, e, h, 1); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}

	var invalid component.ComponentHandle[int]
	if err := Add(w, w.CreateEntity(), invalid, 1); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := w.CreateEntity()
		e2 := w.CreateEntity()
		e3 := w.CreateEntity()

		if err := Add(w, e1, h, 1); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h, 3); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h, func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})

	t.Run("ignores_dead_entities", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e := w.CreateEntity()
		if err := Add(w, e, h, 1); err != nil {
			t.Fatal(err)
		}
		if !w.DestroyEntity(e) {
			t.Fatal("failed to destroy entity")
		}

		var res []Entity
		ForEach(w, h, func(e Entity, _ *int) { res = append(res, e) })
		if len(res) != 0 {
			t.Fatalf("expected empty result after destroy, got %v", res)
		}
	})

	t.Run("destroy_during_iteration", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		ents := make([]Entity, 4)
		for i := range ents {
			ents[i] = w.CreateEntity()
			if err := Add(w, ents[i], h, i); err != nil {
				t.Fatal(err)
			}
		}

		visited := 0
		ForEach(w, h, func(e Entity, _ *int) {
			visited++
			// removing mid-pass must not panic or revisit
			w.DestroyEntity(e)
		})
		if visited != len(ents) {
			t.Fatalf("expected all %d entities visited, got %d", len(ents), visited)
		}
		if got := len(w.Entities()); got != 0 {
			t.Fatalf("expected empty world, got %d entities", got)
		}
	})
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := w.CreateEntity()
				e2 := w.CreateEntity()
				e3 := w.CreateEntity()
				e4 := w.CreateEntity()

				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()
				hc := component.NewComponent[int]()

				if err := Add(w, e1, ha, 1); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ha, 2); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, hb, 3); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, hc, 5); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, hb, 4); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e4, hc, 6); err != nil {
					t.Fatal(err)
				}

				res := w.Query(ha.Kind(), hb.Kind(), hc.Kind())
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.CreateEntity()

				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()

				if err := Add(w, e, ha, 1); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, hb, 2); err != nil {
					t.Fatal(err)
				}
				if !w.DestroyEntity(e) {
					t.Fatal("failed to destroy entity")
				}

				if res := w.Query(ha.Kind(), hb.Kind()); len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "no_common",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := w.CreateEntity()
				e2 := w.CreateEntity()

				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()
				hc := component.NewComponent[int]()

				if err := Add(w, e1, ha, 1); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, hb, 2); err != nil {
					t.Fatal(err)
				}

				if res := w.Query(ha.Kind(), hb.Kind(), hc.Kind()); len(res) != 0 {
					t.Fatalf("expected no common entities, got %v", res)
				}
			},
		},
		{
			name: "empty_kinds",
			run: func(t *testing.T) {
				w := NewWorld()
				w.CreateEntity()
				if res := w.Query(); res != nil {
					t.Fatalf("expected nil for an empty query, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	if _, ok := w.First(h.Kind()); ok {
		t.Fatalf("expected no entity before any add")
	}

	e := w.CreateEntity()
	if err := Add(w, e, h, 42); err != nil {
		t.Fatal(err)
	}

	got, ok := w.First(h.Kind())
	if !ok || got != e {
		t.Fatalf("expected %v, got %v ok=%v", e, got, ok)
	}

	w.DestroyEntity(e)
	if _, ok := w.First(h.Kind()); ok {
		t.Fatalf("expected no entity after destroy")
	}
}

type countingSystem struct {
	calls *[]string
	name  string
}

func (s *countingSystem) Update(w *World) {
	*s.calls = append(*s.calls, s.name)
}

func TestSystemOrder(t *testing.T) {
	w := NewWorld()
	var calls []string
	w.AddSystem(&countingSystem{calls: &calls, name: "a"})
	w.AddSystem(nil)
	w.AddSystem(&countingSystem{calls: &calls, name: "b"})

	w.Update()
	w.Update()

	want := []string{"a", "b", "a", "b"}
	if len(calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, calls)
		}
	}
}

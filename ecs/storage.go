package ecs

// entityStore tracks entity generations and recycles freed ids.
type entityStore struct {
	nextID entityID
	gens   []generation
	dead   []bool
	free   []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
		s.dead[id-1] = false
	} else {
		s.nextID++
		id = s.nextID
		s.gens = append(s.gens, 0)
		s.dead = append(s.dead, false)
	}
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	id := e.id()
	s.gens[id-1]++
	s.dead[id-1] = true
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return !s.dead[id-1] && s.gens[id-1] == e.generation()
}

// alive returns the live handle for an id, if any.
func (s *entityStore) alive(id entityID) (Entity, bool) {
	if id == 0 || int(id) > len(s.gens) || s.dead[id-1] {
		return 0, false
	}
	return makeEntity(id, s.gens[id-1]), true
}

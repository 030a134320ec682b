package ecs

// sparseSet is cache-friendly component storage keyed by entity id.
// Values are stored as `any` boxes; the generic accessors in
// generics.go do the casting.
type sparseSet struct {
	denseIDs    []entityID
	denseValues []any
	sparse      []int
}

func (s *sparseSet) has(id entityID) bool {
	if s == nil || id == 0 || int(id-1) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseIDs) && s.denseIDs[idx] == id
}

func (s *sparseSet) get(id entityID) any {
	if !s.has(id) {
		return nil
	}
	return s.denseValues[s.sparse[id-1]]
}

func (s *sparseSet) set(id entityID, v any) {
	if s == nil || id == 0 {
		return
	}
	for int(id-1) >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(id) {
		s.denseValues[s.sparse[id-1]] = v
		return
	}
	s.denseIDs = append(s.denseIDs, id)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseIDs) - 1
}

func (s *sparseSet) remove(id entityID) bool {
	if s == nil || !s.has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseIDs) - 1
	lastID := s.denseIDs[last]

	s.denseIDs[idx] = s.denseIDs[last]
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastID-1] = idx

	s.denseIDs = s.denseIDs[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
	return true
}

func (s *sparseSet) len() int {
	if s == nil {
		return 0
	}
	return len(s.denseIDs)
}

// ids returns a snapshot of the dense id list, safe to iterate while
// the set is mutated.
func (s *sparseSet) ids() []entityID {
	if s == nil {
		return nil
	}
	out := make([]entityID, len(s.denseIDs))
	copy(out, s.denseIDs)
	return out
}

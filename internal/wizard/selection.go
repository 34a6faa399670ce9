package wizard

// SelectionSet is a set of choice ids that remembers insertion order.
//
// The zero value is an empty set ready to use.
type SelectionSet struct {
	ids   []string
	index map[string]struct{}
}

// NewSelectionSet returns a set containing ids, in order, with duplicates dropped.
func NewSelectionSet(ids ...string) *SelectionSet {
	s := &SelectionSet{}
	for _, id := range ids {
		if !s.Has(id) {
			s.add(id)
		}
	}
	return s
}

func (s *SelectionSet) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Toggle removes id if present, otherwise inserts it. It returns the new membership.
func (s *SelectionSet) Toggle(id string) bool {
	if s.Has(id) {
		s.remove(id)
		return false
	}
	s.add(id)
	return true
}

func (s *SelectionSet) Len() int { return len(s.ids) }

// IDs returns the members in the order they were selected.
func (s *SelectionSet) IDs() []string {
	return append([]string{}, s.ids...)
}

// Clear empties the set.
func (s *SelectionSet) Clear() {
	s.ids = nil
	s.index = nil
}

func (s *SelectionSet) add(id string) {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *SelectionSet) remove(id string) {
	delete(s.index, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

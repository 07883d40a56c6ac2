package addressbook

// orderedSet is an insertion-ordered set. Entities are compared by pointer
// identity, strings by value.
type orderedSet[T comparable] struct {
	items []T
	index map[T]struct{}
}

func newOrderedSet[T comparable](values ...T) orderedSet[T] {
	s := orderedSet[T]{index: make(map[T]struct{}, len(values))}
	for _, v := range values {
		s.add(v)
	}
	return s
}

// add inserts v and reports whether it was new.
func (s *orderedSet[T]) add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[T]struct{})
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

func (s *orderedSet[T]) has(v T) bool {
	_, ok := s.index[v]
	return ok
}

func (s *orderedSet[T]) len() int {
	return len(s.items)
}

// values returns a copy so callers cannot reach the backing array.
func (s *orderedSet[T]) values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *orderedSet[T]) clear() {
	s.items = nil
	s.index = make(map[T]struct{})
}

package engine

// Store is a generic container for one component type T keyed by Entity.
// Sparse-set layout: the entities slice gives deterministic, cache-friendly
// iteration order regardless of map behavior. The world is single-writer
// (see World), so stores carry no locks.
type Store[T any] struct {
	components map[Entity]T
	entities   []Entity
}

// NewStore creates an empty component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]T),
		entities:   make([]Entity, 0, 64),
	}
}

// Set inserts or updates the component for an entity
func (s *Store[T]) Set(e Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves the component for an entity
func (s *Store[T]) Get(e Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has reports whether the entity has this component
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove deletes the component, preserving the order of the remaining
// entities so iteration stays deterministic across removals
func (s *Store[T]) Remove(e Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return
		}
	}
}

// Entities returns the live entity list in insertion order.
// The slice is owned by the store; callers iterate, never mutate. Removals
// during iteration must go through World.Despawn (deferred compaction).
func (s *Store[T]) Entities() []Entity {
	return s.entities
}

// Count returns the number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes every component
func (s *Store[T]) Clear() {
	s.components = make(map[Entity]T)
	s.entities = s.entities[:0]
}

// AnyStore lets the world clean up all typed stores uniformly
type AnyStore interface {
	Remove(e Entity)
	Clear()
	Has(e Entity) bool
}

package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jeffleon2/draftea-prepaid-service/internal/ledger"
)

// Identified is implemented by the ledger aggregates kept in a Store.
type Identified interface {
	ID() int64
}

// Store is an in-process lookup of aggregates by id. It holds pointers, so
// callers share the live aggregate and its lock.
type Store[T Identified] struct {
	mu       sync.RWMutex
	kind     string
	entities map[int64]T
}

func New[T Identified](kind string) *Store[T] {
	return &Store[T]{
		kind:     kind,
		entities: make(map[int64]T),
	}
}

func (s *Store[T]) Save(ctx context.Context, entity T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[entity.ID()] = entity
	return nil
}

// GetByID returns ledger.ErrNotFound for unknown ids.
func (s *Store[T]) GetByID(ctx context.Context, id int64) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entity, ok := s.entities[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %d: %w", s.kind, id, ledger.ErrNotFound)
	}
	return entity, nil
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

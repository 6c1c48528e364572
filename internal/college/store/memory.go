package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"uniguide/internal/college/models"
)

// InMemoryStore keeps the college collection in process memory for tests and
// local development. Insertion order is preserved.
type InMemoryStore struct {
	mu       sync.RWMutex
	order    []string
	colleges map[string]models.College
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{colleges: make(map[string]models.College)}
}

func (s *InMemoryStore) ListColleges(_ context.Context, limit int) ([]models.College, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.College, 0, len(s.order))
	for _, id := range s.order {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, s.colleges[id])
	}
	return out, nil
}

func (s *InMemoryStore) GetCollege(_ context.Context, id string) (models.College, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.colleges[id]; ok {
		return c, nil
	}
	return models.College{}, ErrNotFound
}

// Put inserts or replaces a college; tests seed fixtures through it.
func (s *InMemoryStore) Put(c models.College) models.College {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, exists := s.colleges[c.ID]; !exists {
		s.order = append(s.order, c.ID)
	}
	s.colleges[c.ID] = c
	return c
}

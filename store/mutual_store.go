package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sparadrap/pharmacie-api/domain"
)

// MutualStore owns the mutual collection in insertion order.
type MutualStore struct {
	mu      sync.RWMutex
	mutuals []*domain.Mutual
}

// List returns a snapshot of the collection in insertion order.
func (s *MutualStore) List() []*domain.Mutual {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Mutual, len(s.mutuals))
	copy(out, s.mutuals)
	return out
}

// Add appends a mutual, assigning an ID when it has none.
func (s *MutualStore) Add(m *domain.Mutual) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	s.mutuals = append(s.mutuals, m)
}

// Update replaces the stored mutual at the matching ID's position.
func (s *MutualStore) Update(id uuid.UUID, m *domain.Mutual) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.mutuals {
		if existing.ID == id {
			m.ID = id
			s.mutuals[i] = m
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the mutual with the given ID.
func (s *MutualStore) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.mutuals {
		if existing.ID == id {
			s.mutuals = append(s.mutuals[:i], s.mutuals[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// FindByID returns the mutual with the given ID.
func (s *MutualStore) FindByID(id uuid.UUID) (*domain.Mutual, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.mutuals {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, ErrNotFound
}

// FindByName returns the first mutual with the exact name. Duplicate
// names resolve to the first match.
func (s *MutualStore) FindByName(name string) (*domain.Mutual, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.mutuals {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, ErrNotFound
}

// Search returns mutuals whose name contains the term,
// accent-insensitive, in insertion order.
func (s *MutualStore) Search(term string) []*domain.Mutual {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []*domain.Mutual
	for _, m := range s.mutuals {
		if nameMatches(m.Name, term) {
			results = append(results, m)
		}
	}
	return results
}

// Len returns the number of stored mutuals.
func (s *MutualStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mutuals)
}

package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sparadrap/pharmacie-api/domain"
)

// CustomerStore owns the customer collection in insertion order.
type CustomerStore struct {
	mu        sync.RWMutex
	customers []*domain.Customer
}

// List returns a snapshot of the collection in insertion order.
func (s *CustomerStore) List() []*domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Add appends a customer, assigning an ID when it has none.
func (s *CustomerStore) Add(c *domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.customers = append(s.customers, c)
}

// Update replaces the stored customer at the matching ID's position.
func (s *CustomerStore) Update(id uuid.UUID, c *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.customers {
		if existing.ID == id {
			c.ID = id
			s.customers[i] = c
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the customer with the given ID.
func (s *CustomerStore) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.customers {
		if existing.ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// FindByID returns the customer with the given ID.
func (s *CustomerStore) FindByID(id uuid.UUID) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

// Search returns customers whose full name contains the term,
// accent-insensitive, in insertion order.
func (s *CustomerStore) Search(term string) []*domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []*domain.Customer
	for _, c := range s.customers {
		if nameMatches(c.FullName(), term) {
			results = append(results, c)
		}
	}
	return results
}

// Len returns the number of stored customers.
func (s *CustomerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}

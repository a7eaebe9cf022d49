package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sparadrap/pharmacie-api/domain"
)

// PurchaseStore owns the purchase collection in insertion order.
type PurchaseStore struct {
	mu        sync.RWMutex
	purchases []*domain.Purchase
}

// List returns a snapshot of the collection in insertion order.
func (s *PurchaseStore) List() []*domain.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Purchase, len(s.purchases))
	copy(out, s.purchases)
	return out
}

// Add appends a purchase, assigning an ID when it has none.
func (s *PurchaseStore) Add(p *domain.Purchase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.purchases = append(s.purchases, p)
}

// Update replaces the stored purchase at the matching ID's position.
func (s *PurchaseStore) Update(id uuid.UUID, p *domain.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.purchases {
		if existing.ID == id {
			p.ID = id
			s.purchases[i] = p
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the purchase with the given ID.
func (s *PurchaseStore) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.purchases {
		if existing.ID == id {
			s.purchases = append(s.purchases[:i], s.purchases[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// FindByID returns the purchase with the given ID.
func (s *PurchaseStore) FindByID(id uuid.UUID) (*domain.Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.purchases {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// Len returns the number of stored purchases.
func (s *PurchaseStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.purchases)
}

package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sparadrap/pharmacie-api/domain"
)

// PrescriptionStore owns the prescription collection in insertion order.
type PrescriptionStore struct {
	mu            sync.RWMutex
	prescriptions []*domain.Prescription
}

// List returns a snapshot of the collection in insertion order.
func (s *PrescriptionStore) List() []*domain.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Prescription, len(s.prescriptions))
	copy(out, s.prescriptions)
	return out
}

// Add appends a prescription, assigning an ID when it has none.
func (s *PrescriptionStore) Add(p *domain.Prescription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.prescriptions = append(s.prescriptions, p)
}

// Update replaces the stored prescription at the matching ID's position.
func (s *PrescriptionStore) Update(id uuid.UUID, p *domain.Prescription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.prescriptions {
		if existing.ID == id {
			p.ID = id
			s.prescriptions[i] = p
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the prescription with the given ID.
func (s *PrescriptionStore) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.prescriptions {
		if existing.ID == id {
			s.prescriptions = append(s.prescriptions[:i], s.prescriptions[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// FindByID returns the prescription with the given ID.
func (s *PrescriptionStore) FindByID(id uuid.UUID) (*domain.Prescription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.prescriptions {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// Len returns the number of stored prescriptions.
func (s *PrescriptionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.prescriptions)
}

package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sparadrap/pharmacie-api/domain"
)

// MedicationStore owns the medication collection in insertion order.
// Baskets hold pointers into this store, so a price edit here is visible
// in every purchase total derived afterwards.
type MedicationStore struct {
	mu          sync.RWMutex
	medications []*domain.Medication
}

// List returns a snapshot of the collection in insertion order.
func (s *MedicationStore) List() []*domain.Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Medication, len(s.medications))
	copy(out, s.medications)
	return out
}

// Add appends a medication, assigning an ID when it has none.
func (s *MedicationStore) Add(m *domain.Medication) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	s.medications = append(s.medications, m)
}

// Update replaces the stored medication at the matching ID's position.
func (s *MedicationStore) Update(id uuid.UUID, m *domain.Medication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.medications {
		if existing.ID == id {
			m.ID = id
			s.medications[i] = m
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the medication with the given ID.
func (s *MedicationStore) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.medications {
		if existing.ID == id {
			s.medications = append(s.medications[:i], s.medications[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// FindByID returns the medication with the given ID.
func (s *MedicationStore) FindByID(id uuid.UUID) (*domain.Medication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.medications {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, ErrNotFound
}

// FindByName returns the first medication with the exact name.
func (s *MedicationStore) FindByName(name string) (*domain.Medication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.medications {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, ErrNotFound
}

// Search returns medications whose name contains the term,
// accent-insensitive, in insertion order.
func (s *MedicationStore) Search(term string) []*domain.Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []*domain.Medication
	for _, m := range s.medications {
		if nameMatches(m.Name, term) {
			results = append(results, m)
		}
	}
	return results
}

// LowStock returns medications whose on-hand quantity is at or below the
// threshold, in insertion order.
func (s *MedicationStore) LowStock(threshold int) []*domain.Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []*domain.Medication
	for _, m := range s.medications {
		if m.Quantity <= threshold {
			results = append(results, m)
		}
	}
	return results
}

// Len returns the number of stored medications.
func (s *MedicationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.medications)
}

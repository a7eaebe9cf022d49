package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sparadrap/pharmacie-api/domain"
)

// DoctorStore owns the prescriber collection in insertion order.
type DoctorStore struct {
	mu      sync.RWMutex
	doctors []*domain.Doctor
}

// List returns a snapshot of the collection in insertion order.
func (s *DoctorStore) List() []*domain.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out
}

// Add appends a doctor, assigning an ID when it has none.
func (s *DoctorStore) Add(d *domain.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	s.doctors = append(s.doctors, d)
}

// Update replaces the stored doctor at the matching ID's position.
func (s *DoctorStore) Update(id uuid.UUID, d *domain.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.doctors {
		if existing.ID == id {
			d.ID = id
			s.doctors[i] = d
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the doctor with the given ID.
func (s *DoctorStore) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.doctors {
		if existing.ID == id {
			s.doctors = append(s.doctors[:i], s.doctors[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// FindByID returns the doctor with the given ID.
func (s *DoctorStore) FindByID(id uuid.UUID) (*domain.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, ErrNotFound
}

// FindByName returns the first doctor whose "firstName lastName" display
// name equals the given name. Duplicate names resolve to the first match.
func (s *DoctorStore) FindByName(name string) (*domain.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.doctors {
		if d.FullName() == name {
			return d, nil
		}
	}
	return nil, ErrNotFound
}

// Search returns doctors whose full name contains the term,
// accent-insensitive, in insertion order.
func (s *DoctorStore) Search(term string) []*domain.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []*domain.Doctor
	for _, d := range s.doctors {
		if nameMatches(d.FullName(), term) {
			results = append(results, d)
		}
	}
	return results
}

// Len returns the number of stored doctors.
func (s *DoctorStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.doctors)
}

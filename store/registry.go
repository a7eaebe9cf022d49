// Package store holds the in-memory repositories backing the application.
// Each entity kind has one store owning the authoritative ordered
// collection, serialized behind a RWMutex since the stores back an HTTP
// service. State lives for the process lifetime only; the optional SQL
// store for mutuals is a write-through side path.
package store

import "errors"

// ErrNotFound is returned by lookups and removals that match nothing.
var ErrNotFound = errors.New("entity not found")

// Registry groups the per-entity stores. It is built once at startup and
// passed to whatever consumes it; there is no global instance.
type Registry struct {
	Customers     *CustomerStore
	Doctors       *DoctorStore
	Medications   *MedicationStore
	Mutuals       *MutualStore
	Prescriptions *PrescriptionStore
	Purchases     *PurchaseStore
}

// NewRegistry creates a registry with empty stores. Call Seed to load the
// fixture data set.
func NewRegistry() *Registry {
	return &Registry{
		Customers:     &CustomerStore{},
		Doctors:       &DoctorStore{},
		Medications:   &MedicationStore{},
		Mutuals:       &MutualStore{},
		Prescriptions: &PrescriptionStore{},
		Purchases:     &PurchaseStore{},
	}
}

package scheduler

import (
	"testing"

	"github.com/sparadrap/pharmacie-api/domain"
	"github.com/sparadrap/pharmacie-api/store"
)

func seededScheduler(t *testing.T, threshold int) *Scheduler {
	t.Helper()
	registry := store.NewRegistry()
	if err := registry.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	return NewScheduler(registry, threshold)
}

func TestAuditSocialSecurityNumbers(t *testing.T) {
	s := seededScheduler(t, 10)

	if bad := s.auditSocialSecurityNumbers(); len(bad) != 0 {
		t.Errorf("Expected clean seed data, got %v", bad)
	}

	s.registry.Customers.Add(&domain.Customer{
		Person:               domain.Person{FirstName: "Luc", LastName: "Morel"},
		SocialSecurityNumber: "192073409812399",
	})

	bad := s.auditSocialSecurityNumbers()
	if len(bad) != 1 || bad[0] != "Luc Morel" {
		t.Errorf("Expected Luc Morel to be flagged, got %v", bad)
	}
}

func TestAuditReferences(t *testing.T) {
	s := seededScheduler(t, 10)

	if orphans := s.auditReferences(); len(orphans) != 0 {
		t.Errorf("Expected no orphans in seed data, got %v", orphans)
	}

	// A customer whose mutual was deleted keeps a nil reference.
	customer := s.registry.Customers.List()[0]
	customer.Mutual = nil

	orphans := s.auditReferences()
	if len(orphans) != 1 || orphans[0] != customer.FullName() {
		t.Errorf("Expected %s to be flagged, got %v", customer.FullName(), orphans)
	}
}

func TestLowStockAudit(t *testing.T) {
	s := seededScheduler(t, 10)

	low := s.registry.Medications.LowStock(s.lowStockThreshold)
	if len(low) != 1 || low[0].Name != "Vaccin grippe" {
		t.Errorf("Expected only Vaccin grippe below threshold, got %v", low)
	}

	// runAudit only logs; it must not mutate the registry.
	before := s.registry.Medications.Len()
	s.runAudit()
	if s.registry.Medications.Len() != before {
		t.Error("Expected audit to leave the inventory untouched")
	}
}

func TestStartAndStop(t *testing.T) {
	s := seededScheduler(t, 10)

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.Stop()
}

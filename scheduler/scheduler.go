// Package scheduler provides the recurring jobs of the pharmacy API: a
// daily inventory audit that flags low-stock medications and data quality
// issues, plus an hourly health monitor.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/sparadrap/pharmacie-api/logging"
	"github.com/sparadrap/pharmacie-api/store"
	"github.com/sparadrap/pharmacie-api/validation"
)

// Scheduler runs the recurring audit jobs against the registry.
type Scheduler struct {
	registry          *store.Registry
	lowStockThreshold int
	scheduler         *gocron.Scheduler
}

// NewScheduler creates a new scheduler instance
func NewScheduler(registry *store.Registry, lowStockThreshold int) *Scheduler {
	return &Scheduler{
		registry:          registry,
		lowStockThreshold: lowStockThreshold,
		scheduler:         gocron.NewScheduler(time.Local),
	}
}

// Start runs one audit immediately, then schedules the daily audit at
// 08:00 and starts health monitoring.
func (s *Scheduler) Start() error {
	s.runAudit()

	_, err := s.scheduler.Every(1).Days().At("08:00").Do(s.runAudit)
	if err != nil {
		logging.Error("Failed to schedule inventory audit", "error", err)
		return fmt.Errorf("failed to schedule inventory audit: %w", err)
	}

	s.scheduler.StartAsync()

	s.startHealthMonitoring()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// runAudit logs low-stock medications and data quality findings.
func (s *Scheduler) runAudit() {
	logging.Info(fmt.Sprintf("Starting inventory audit at: %s", time.Now().Format(time.RFC3339)))
	start := time.Now()

	lowStock := s.registry.Medications.LowStock(s.lowStockThreshold)
	for _, m := range lowStock {
		logging.Warn("Low stock",
			"medication", m.Name,
			"quantity", m.Quantity,
			"threshold", s.lowStockThreshold,
		)
	}

	badSSNs := s.auditSocialSecurityNumbers()
	if len(badSSNs) > 0 {
		logging.Warn("Customers with invalid social security numbers",
			"count", len(badSSNs),
			"customers", badSSNs,
		)
	}

	orphans := s.auditReferences()
	if len(orphans) > 0 {
		logging.Warn("Customers with missing references",
			"count", len(orphans),
			"customers", orphans,
		)
	}

	elapsed := time.Since(start)
	logging.Info("Inventory audit completed",
		"duration", elapsed.String(),
		"medications", s.registry.Medications.Len(),
		"low_stock", len(lowStock),
	)
}

// auditSocialSecurityNumbers re-validates every stored customer SSN,
// catching data that predates a validation rule change.
func (s *Scheduler) auditSocialSecurityNumbers() []string {
	var bad []string
	for _, c := range s.registry.Customers.List() {
		if err := validation.ValidateSocialSecurityNumber(c.SocialSecurityNumber); err != nil {
			bad = append(bad, c.FullName())
		}
	}
	return bad
}

// auditReferences reports customers missing their mutual or referring
// doctor, which can happen after a referenced entity is deleted.
func (s *Scheduler) auditReferences() []string {
	var orphans []string
	for _, c := range s.registry.Customers.List() {
		if c.Mutual == nil || c.ReferringDoctor == nil {
			orphans = append(orphans, c.FullName())
		}
	}
	return orphans
}

// startHealthMonitoring periodically checks that the registry still holds
// data.
func (s *Scheduler) startHealthMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if s.registry.Medications.Len() == 0 {
				logging.Warn("Medication inventory is empty")
			}
		}
	}()
}

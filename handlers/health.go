package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/sparadrap/pharmacie-api/store"
)

var serverStartTime = time.Now()

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status        string         `json:"status"`
	UptimeSeconds float64        `json:"uptime_seconds"`
	Data          map[string]any `json:"data"`
	System        map[string]any `json:"system"`
}

// HealthCheck reports service health. The service is unhealthy when the
// registry lost its seed data, degraded when the inventory is empty.
func HealthCheck(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		uptime := time.Since(serverStartTime)

		var healthStatus string
		var httpStatus int
		switch {
		case registry.Mutuals.Len() == 0 && registry.Doctors.Len() == 0 && registry.Customers.Len() == 0:
			healthStatus = "unhealthy"
			httpStatus = http.StatusServiceUnavailable
		case registry.Medications.Len() == 0:
			healthStatus = "degraded"
			httpStatus = http.StatusOK
		default:
			healthStatus = "healthy"
			httpStatus = http.StatusOK
		}

		response := HealthResponse{
			Status:        healthStatus,
			UptimeSeconds: uptime.Seconds(),
			Data: map[string]any{
				"api_version":   "1.0",
				"customers":     registry.Customers.Len(),
				"doctors":       registry.Doctors.Len(),
				"medications":   registry.Medications.Len(),
				"mutuals":       registry.Mutuals.Len(),
				"prescriptions": registry.Prescriptions.Len(),
				"purchases":     registry.Purchases.Len(),
			},
			System: map[string]any{
				"goroutines": runtime.NumGoroutine(),
				"memory": map[string]any{
					"alloc_mb": int(m.Alloc / 1024 / 1024),
					"sys_mb":   int(m.Sys / 1024 / 1024),
					"num_gc":   m.NumGC,
				},
			},
		}

		RespondWithJSON(w, httpStatus, response)
	}
}

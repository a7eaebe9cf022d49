// Package server provides HTTP server management and lifecycle handling
// for the pharmacy API. It includes server setup, middleware
// configuration, route management, and graceful shutdown capabilities
// with proper error handling and logging.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sparadrap/pharmacie-api/config"
	"github.com/sparadrap/pharmacie-api/handlers"
	"github.com/sparadrap/pharmacie-api/logging"
	"github.com/sparadrap/pharmacie-api/metrics"
	"github.com/sparadrap/pharmacie-api/store"
)

// Server represents the HTTP server
type Server struct {
	server   *http.Server
	router   chi.Router
	registry *store.Registry
	sqlStore *store.MutualSQLStore
	config   *config.Config
}

// NewServer creates a new server instance. sqlStore may be nil when no
// DATABASE_URL is configured.
func NewServer(cfg *config.Config, registry *store.Registry, sqlStore *store.MutualSQLStore) *Server {
	router := chi.NewRouter()

	server := &Server{
		server: &http.Server{
			Handler:      router,
			Addr:         cfg.Address + ":" + cfg.Port,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router:   router,
		registry: registry,
		sqlStore: sqlStore,
		config:   cfg,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures all middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(RealIPMiddleware)
	s.router.Use(logging.LoggingMiddleware(logging.Logger()))
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)
	s.router.Use(RequestSizeMiddleware(s.config))
	s.router.Use(RateLimitHandler)
	s.router.Use(metrics.Metrics)
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	reg := s.registry

	s.router.Route("/customers", func(r chi.Router) {
		r.Get("/", handlers.ListCustomers(reg))
		r.Post("/", handlers.CreateCustomer(reg))
		r.Get("/{id}", handlers.GetCustomer(reg))
		r.Put("/{id}", handlers.UpdateCustomer(reg))
		r.Delete("/{id}", handlers.DeleteCustomer(reg))
	})

	s.router.Route("/doctors", func(r chi.Router) {
		r.Get("/", handlers.ListDoctors(reg))
		r.Post("/", handlers.CreateDoctor(reg))
		r.Get("/{id}", handlers.GetDoctor(reg))
		r.Put("/{id}", handlers.UpdateDoctor(reg))
		r.Delete("/{id}", handlers.DeleteDoctor(reg))
	})

	s.router.Route("/medications", func(r chi.Router) {
		r.Get("/", handlers.ListMedications(reg))
		r.Post("/", handlers.CreateMedication(reg))
		r.Get("/{id}", handlers.GetMedication(reg))
		r.Put("/{id}", handlers.UpdateMedication(reg))
		r.Delete("/{id}", handlers.DeleteMedication(reg))
	})

	s.router.Route("/mutuals", func(r chi.Router) {
		r.Get("/", handlers.ListMutuals(reg))
		r.Post("/", handlers.CreateMutual(reg, s.sqlStore))
		r.Get("/{id}", handlers.GetMutual(reg))
		r.Put("/{id}", handlers.UpdateMutual(reg, s.sqlStore))
		r.Delete("/{id}", handlers.DeleteMutual(reg, s.sqlStore))
	})

	s.router.Route("/prescriptions", func(r chi.Router) {
		r.Get("/", handlers.ListPrescriptions(reg))
		r.Post("/", handlers.CreatePrescription(reg))
		r.Get("/{id}", handlers.GetPrescription(reg))
		r.Put("/{id}", handlers.UpdatePrescription(reg))
		r.Delete("/{id}", handlers.DeletePrescription(reg))
	})

	s.router.Route("/purchases", func(r chi.Router) {
		r.Get("/", handlers.ListPurchases(reg))
		r.Post("/", handlers.CreatePurchase(reg))
		r.Get("/{id}", handlers.GetPurchase(reg))
		r.Put("/{id}", handlers.UpdatePurchase(reg))
		r.Delete("/{id}", handlers.DeletePurchase(reg))
		r.Post("/{id}/basket", handlers.SetBasketLine(reg))
		r.Delete("/{id}/basket/{medicationID}", handlers.RemoveBasketLine(reg))
	})

	s.router.Get("/health", handlers.HealthCheck(reg))
	s.router.Handle("/metrics", promhttp.Handler())
}

// Router exposes the configured router, used by the HTTP tests.
func (s *Server) Router() chi.Router {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	// Start profiling server if in development mode
	if s.config.Env == "dev" {
		s.startProfilingServer()
	}

	logging.Info(fmt.Sprintf("Starting server at: %s:%s", s.config.Address, s.config.Port))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		// If graceful shutdown fails, force close
		if err := s.server.Close(); err != nil {
			logging.Error("Server close error", "error", err)
			return err
		}
	}

	logging.Info("Server shutdown complete")
	return nil
}

// startProfilingServer starts the pprof profiling server in development mode
func (s *Server) startProfilingServer() {
	go func() {
		fmt.Println("Profiling server started at http://localhost:6060/debug/pprof/")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			fmt.Println("Profiling server failed: ", err)
		}
	}()
}

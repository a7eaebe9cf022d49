package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "net/http/pprof"

	"github.com/sparadrap/pharmacie-api/config"
	"github.com/sparadrap/pharmacie-api/logging"
	"github.com/sparadrap/pharmacie-api/scheduler"
	"github.com/sparadrap/pharmacie-api/server"
	"github.com/sparadrap/pharmacie-api/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		logging.Debug("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger("logs", cfg.LogRetentionWeeks, logging.ParseLevel(cfg.LogLevel))

	registry := store.NewRegistry()
	if err := registry.Seed(); err != nil {
		logging.Error("Failed to seed registry", "error", err)
		os.Exit(1)
	}
	logging.Info("Registry seeded",
		"customers", registry.Customers.Len(),
		"doctors", registry.Doctors.Len(),
		"medications", registry.Medications.Len(),
		"mutuals", registry.Mutuals.Len(),
		"prescriptions", registry.Prescriptions.Len(),
		"purchases", registry.Purchases.Len(),
	)

	// Optional PostgreSQL mirror for mutuals.
	var sqlStore *store.MutualSQLStore
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		sqlStore, err = store.OpenMutualSQLStore(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			logging.Error("Failed to open mutual SQL store", "error", err)
			os.Exit(1)
		}
		defer sqlStore.Close()

		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		err = sqlStore.SyncAll(ctx, registry.Mutuals.List())
		cancel()
		if err != nil {
			logging.Error("Failed to sync mutuals to SQL store", "error", err)
			os.Exit(1)
		}
		logging.Info("Mutuals mirrored to PostgreSQL", "count", registry.Mutuals.Len())
	}

	sched := scheduler.NewScheduler(registry, cfg.LowStockThreshold)
	if err := sched.Start(); err != nil {
		logging.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	srv := server.NewServer(cfg, registry, sqlStore)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
}

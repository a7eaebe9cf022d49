package config

import (
	"os"
	"testing"
)

func TestLoadValidConfig(t *testing.T) {
	_ = os.Setenv("PORT", "8002")
	_ = os.Setenv("ADDRESS", "127.0.0.1")
	_ = os.Setenv("ENV", "dev")
	_ = os.Setenv("LOG_LEVEL", "info")
	_ = os.Setenv("LOW_STOCK_THRESHOLD", "3")
	defer cleanupEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "8002" {
		t.Errorf("Expected port 8002, got %s", cfg.Port)
	}
	if cfg.Address != "127.0.0.1" {
		t.Errorf("Expected address 127.0.0.1, got %s", cfg.Address)
	}
	if cfg.Env != "dev" {
		t.Errorf("Expected env dev, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level info, got %s", cfg.LogLevel)
	}
	if cfg.LowStockThreshold != 3 {
		t.Errorf("Expected low stock threshold 3, got %d", cfg.LowStockThreshold)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	cleanupEnv()
	defer cleanupEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Address != "127.0.0.1" {
		t.Errorf("Expected default address 127.0.0.1, got %s", cfg.Address)
	}
	if cfg.Env != "dev" {
		t.Errorf("Expected default env dev, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.LowStockThreshold != 10 {
		t.Errorf("Expected default low stock threshold 10, got %d", cfg.LowStockThreshold)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("Expected empty database URL, got %s", cfg.DatabaseURL)
	}
}

func TestInvalidPort(t *testing.T) {
	testCases := []string{"abc", "0", "65536", "80"}

	for _, port := range testCases {
		_ = os.Setenv("PORT", port)
		_ = os.Setenv("ADDRESS", "127.0.0.1")
		_ = os.Setenv("ENV", "dev")
		_ = os.Setenv("LOG_LEVEL", "info")

		_, err := Load()
		if err == nil {
			t.Errorf("Expected error for port %s, got nil", port)
		}
	}
	cleanupEnv()
}

func TestInvalidAddress(t *testing.T) {
	_ = os.Setenv("PORT", "8002")
	_ = os.Setenv("ADDRESS", "invalid")
	_ = os.Setenv("ENV", "dev")
	_ = os.Setenv("LOG_LEVEL", "info")
	defer cleanupEnv()

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid address, got nil")
	}
}

func TestInvalidEnv(t *testing.T) {
	_ = os.Setenv("PORT", "8002")
	_ = os.Setenv("ADDRESS", "127.0.0.1")
	_ = os.Setenv("ENV", "invalid")
	_ = os.Setenv("LOG_LEVEL", "info")
	defer cleanupEnv()

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid env, got nil")
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_ = os.Setenv("PORT", "8002")
	_ = os.Setenv("ADDRESS", "127.0.0.1")
	_ = os.Setenv("ENV", "dev")
	_ = os.Setenv("LOG_LEVEL", "invalid")
	defer cleanupEnv()

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid log level, got nil")
	}
}

func TestInvalidLowStockThreshold(t *testing.T) {
	_ = os.Setenv("PORT", "8002")
	_ = os.Setenv("ADDRESS", "127.0.0.1")
	_ = os.Setenv("ENV", "dev")
	_ = os.Setenv("LOG_LEVEL", "info")
	_ = os.Setenv("LOW_STOCK_THRESHOLD", "-1")
	defer cleanupEnv()

	if _, err := Load(); err == nil {
		t.Error("Expected error for negative low stock threshold, got nil")
	}
}

func cleanupEnv() {
	for _, name := range GetEnvVars() {
		_ = os.Unsetenv(name)
	}
}

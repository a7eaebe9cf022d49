package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWeekKeyFormat(t *testing.T) {
	key := weekKey(time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC))
	if key != "2026-W02" {
		t.Errorf("Expected 2026-W02, got %s", key)
	}
}

func TestRotatingLoggerWrites(t *testing.T) {
	dir := t.TempDir()
	rl := NewRotatingLogger(dir, 4)
	defer rl.Close()

	if _, err := rl.Write([]byte("hello\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	expected := filepath.Join(dir, "app-"+weekKey(time.Now())+".log")
	data, err := os.ReadFile(expected)
	if err != nil {
		t.Fatalf("Expected log file %s: %v", expected, err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("Log file missing written content, got %q", string(data))
	}
}

func TestCleanupRemovesOldLogs(t *testing.T) {
	dir := t.TempDir()
	rl := NewRotatingLogger(dir, 1)
	defer rl.Close()

	oldFile := filepath.Join(dir, "app-2020-W01.log")
	if err := os.WriteFile(oldFile, []byte("old"), 0666); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(oldFile, past, past); err != nil {
		t.Fatal(err)
	}

	keep := filepath.Join(dir, "app-2099-W01.log")
	if err := os.WriteFile(keep, []byte("new"), 0666); err != nil {
		t.Fatal(err)
	}

	if err := rl.cleanupOldLogs(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	if _, err := os.Stat(oldFile); !os.IsNotExist(err) {
		t.Error("Expected old log file to be removed")
	}
	if _, err := os.Stat(keep); err != nil {
		t.Error("Expected recent log file to survive cleanup")
	}
}

func TestSetupLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	logger := SetupLogger(dir, 4, slog.LevelInfo)

	logger.Info("test entry", "key", "value")

	matches, _ := filepath.Glob(filepath.Join(dir, "app-*.log"))
	if len(matches) != 1 {
		t.Fatalf("Expected one log file, got %d", len(matches))
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "test entry") {
		t.Errorf("Log file missing entry, got %q", string(data))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

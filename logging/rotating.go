package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// RotatingLogger is an io.Writer that writes to one log file per ISO week
// and deletes files older than the retention period.
type RotatingLogger struct {
	logDir      string
	retention   time.Duration
	mu          sync.Mutex
	currentFile *os.File
	currentWeek string
	cancel      context.CancelFunc
	cleanupDone chan struct{}
}

// NewRotatingLogger creates a rotating logger writing under logDir.
func NewRotatingLogger(logDir string, retentionWeeks int) *RotatingLogger {
	return &RotatingLogger{
		logDir:      logDir,
		retention:   time.Duration(retentionWeeks) * 7 * 24 * time.Hour,
		cleanupDone: make(chan struct{}),
	}
}

// weekKey returns the ISO week key, e.g. "2026-W35".
func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// Write appends to the current week's file, rotating when the week rolls
// over.
func (rl *RotatingLogger) Write(p []byte) (int, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	week := weekKey(time.Now())
	if week != rl.currentWeek || rl.currentFile == nil {
		if err := rl.rotate(week); err != nil {
			return 0, err
		}
	}

	return rl.currentFile.Write(p)
}

// rotate opens the file for the target week. Caller holds the lock.
func (rl *RotatingLogger) rotate(week string) error {
	if rl.currentFile != nil {
		if err := rl.currentFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file during rotation: %v\n", err)
		}
	}

	logPath := filepath.Join(rl.logDir, fmt.Sprintf("app-%s.log", week))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	rl.currentFile = file
	rl.currentWeek = week
	return nil
}

// cleanupOldLogs deletes app-*.log files past the retention period.
func (rl *RotatingLogger) cleanupOldLogs() error {
	entries, err := os.ReadDir(rl.logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	cutoff := time.Now().Add(-rl.retention)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "app-") || !strings.HasSuffix(name, ".log") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(rl.logDir, name))
		}
	}

	return nil
}

// startCleanup runs the retention cleanup once a day until Close.
func (rl *RotatingLogger) startCleanup() {
	ctx, cancel := context.WithCancel(context.Background())
	rl.cancel = cancel

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		defer close(rl.cleanupDone)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := rl.cleanupOldLogs(); err != nil {
					fmt.Fprintf(os.Stderr, "log cleanup failed: %v\n", err)
				}
			}
		}
	}()
}

// Close stops the cleanup goroutine and closes the current file.
func (rl *RotatingLogger) Close() error {
	if rl.cancel != nil {
		rl.cancel()
		select {
		case <-rl.cleanupDone:
		case <-time.After(time.Second):
		}
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.currentFile != nil {
		return rl.currentFile.Close()
	}
	return nil
}

// SetupLogger configures slog to write text to the console and JSON to a
// weekly rotating file. When the log directory cannot be created, logging
// degrades to console only.
func SetupLogger(logDir string, retentionWeeks int, level slog.Level) *slog.Logger {
	consoleHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger := slog.New(consoleHandler)
		logger.Error("Failed to create logs directory", "error", err)
		return logger
	}

	rotating := NewRotatingLogger(logDir, retentionWeeks)
	rotating.mu.Lock()
	rotateErr := rotating.rotate(weekKey(time.Now()))
	rotating.mu.Unlock()
	if rotateErr != nil {
		logger := slog.New(consoleHandler)
		logger.Error("Failed to initialize rotating logger", "error", rotateErr)
		return logger
	}

	rotating.startCleanup()

	fileHandler := slog.NewJSONHandler(rotating, &slog.HandlerOptions{Level: level})

	return slog.New(&multiHandler{handlers: []slog.Handler{consoleHandler, fileHandler}})
}

// ParseLevel maps a config log level string to a slog level. Unknown
// values get Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multiHandler fans one record out to several handlers.
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

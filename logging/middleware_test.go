package logging

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoggingMiddlewareLogsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body"))
	}))

	req := httptest.NewRequest("GET", "/customers?search=du", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	out := buf.String()
	if !strings.Contains(out, "HTTP request") {
		t.Error("Expected request log entry")
	}
	if !strings.Contains(out, `"status_code":418`) {
		t.Errorf("Expected status code in log, got %s", out)
	}
	if !strings.Contains(out, `"path":"/customers"`) {
		t.Errorf("Expected path in log, got %s", out)
	}
	if !strings.Contains(out, `"query":"search=du"`) {
		t.Errorf("Expected query in log, got %s", out)
	}
}

func TestLoggingMiddlewareSkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/health", "/metrics"} {
		req := httptest.NewRequest("GET", path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
	}

	if buf.Len() != 0 {
		t.Errorf("Expected no log output for probes, got %s", buf.String())
	}
}

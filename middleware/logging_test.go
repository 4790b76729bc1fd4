// ABOUTME: Tests for request logging middleware
// ABOUTME: Verifies path sanitization prevents log injection attacks

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

// Test that paths are sanitized to prevent log injection attacks.

func TestSanitizePath_RemovesNewlines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "path with newline injection",
			input: "/api/v1/builds\nAdmin access granted for user attacker",
			want:  "/api/v1/buildsAdmin access granted for user attacker",
		},
		{
			name:  "path with carriage return",
			input: "/api/test\rmalicious",
			want:  "/api/testmalicious",
		},
		{
			name:  "path with CRLF",
			input: "/api/test\r\ninjected line",
			want:  "/api/testinjected line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizePath(tt.input)
			if got != tt.want {
				t.Errorf("sanitizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizePath_RemovesControlCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "path with tab",
			input: "/api/test\tvalue",
			want:  "/api/testvalue",
		},
		{
			name:  "path with null byte",
			input: "/api/test\x00value",
			want:  "/api/testvalue",
		},
		{
			name:  "path with bell character",
			input: "/api/test\x07value",
			want:  "/api/testvalue",
		},
		{
			name:  "path with escape sequence",
			input: "/api/test\x1b[31mred\x1b[0m",
			want:  "/api/test[31mred[0m",
		},
		{
			name:  "path with DEL character",
			input: "/api/test\x7fvalue",
			want:  "/api/testvalue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizePath(tt.input)
			if got != tt.want {
				t.Errorf("sanitizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizePath_PreservesValidCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "normal path",
			input: "/api/v1/health",
			want:  "/api/v1/health",
		},
		{
			name:  "path with query string chars",
			input: "/api/v1/components?category=cpu&max_price=300",
			want:  "/api/v1/components?category=cpu&max_price=300",
		},
		{
			name:  "path with URL encoded chars",
			input: "/api/v1/components%2Ftest",
			want:  "/api/v1/components%2Ftest",
		},
		{
			name:  "path with hyphens and underscores",
			input: "/api/v1/components/cpu-ryzen5-7600/alternatives",
			want:  "/api/v1/components/cpu-ryzen5-7600/alternatives",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizePath(tt.input)
			if got != tt.want {
				t.Errorf("sanitizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogRequest_SetsRequestIDHeader(t *testing.T) {
	var seen string
	handler := LogRequest(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	requestID := rec.Header().Get("X-Request-ID")
	if _, err := uuid.Parse(requestID); err != nil {
		t.Errorf("X-Request-ID %q is not a UUID: %v", requestID, err)
	}
	if seen != requestID {
		t.Errorf("RequestID in context = %q, want %q", seen, requestID)
	}
}

func TestLogRequest_ReusesValidIncomingID(t *testing.T) {
	handler := LogRequest(func(w http.ResponseWriter, r *http.Request) {})

	incoming := "3f0c2a8e-5b1d-4c7a-9e2f-1a2b3c4d5e6f"
	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("X-Request-ID", incoming)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != incoming {
		t.Errorf("X-Request-ID = %q, want %q", got, incoming)
	}
}

func TestLogRequest_ReplacesInvalidIncomingID(t *testing.T) {
	handler := LogRequest(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("X-Request-ID", "forged\nline")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got == "forged\nline" {
		t.Error("Expected invalid request ID to be replaced")
	}
}

func TestLogRequest_CapturesStatusCode(t *testing.T) {
	handler := LogRequest(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/test", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusCreated)
	}
}

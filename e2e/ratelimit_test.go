// ABOUTME: E2E tests for rate limiting through the full server stack
// ABOUTME: Verifies 429 responses, Retry-After, and the disabled mode

package e2e

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
)

func TestRateLimit_ExceedsBurst(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"RATE_LIMIT_ENABLED": "true",
		"RATE_LIMIT_RPS":     "0.1",
		"RATE_LIMIT_BURST":   "2",
	})

	for i := range 2 {
		resp := postJSON(t, srv.URL+"/api/v1/builds", gamingRequest(1500))
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i+1, resp.StatusCode)
		}
	}

	resp := postJSON(t, srv.URL+"/api/v1/builds", gamingRequest(1500))
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("Expected 429, got %d", resp.StatusCode)
	}

	retry, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || retry < 1 {
		t.Errorf("Expected positive Retry-After, got %q", resp.Header.Get("Retry-After"))
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["error"] != "Rate limit exceeded" {
		t.Errorf("Expected rate limit error, got %v", body["error"])
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"RATE_LIMIT_ENABLED": "false",
		"RATE_LIMIT_RPS":     "0.1",
		"RATE_LIMIT_BURST":   "1",
	})

	for i := range 5 {
		resp, err := http.Get(srv.URL + "/api/v1/health")
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Request %d: expected 200 with rate limiting disabled, got %d", i+1, resp.StatusCode)
		}
	}
}

func TestRateLimit_PerClientKey(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"RATE_LIMIT_ENABLED": "true",
		"RATE_LIMIT_RPS":     "0.1",
		"RATE_LIMIT_BURST":   "1",
	})

	get := func(forwardedFor string) int {
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/health", nil)
		req.Header.Set("X-Forwarded-For", forwardedFor)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		resp.Body.Close()
		return resp.StatusCode
	}

	if code := get("203.0.113.10"); code != http.StatusOK {
		t.Fatalf("Expected first request allowed, got %d", code)
	}
	if code := get("203.0.113.10"); code != http.StatusTooManyRequests {
		t.Errorf("Expected second request from same client limited, got %d", code)
	}
	if code := get("203.0.113.20"); code != http.StatusOK {
		t.Errorf("Expected other client unaffected, got %d", code)
	}
}

// ABOUTME: Unit tests for rate limiting middleware
// ABOUTME: Tests token buckets, key extraction, and the middleware factory

package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// --- RateLimiter core tests ---

func TestRateLimiter_AllowsBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("test-key")
		if !allowed {
			t.Fatalf("Request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)

	rl.Allow("test-key")
	rl.Allow("test-key")

	allowed, retryAfter := rl.Allow("test-key")
	if allowed {
		t.Fatal("Third request should be rejected")
	}
	if retryAfter <= 0 || retryAfter > time.Second {
		t.Errorf("Expected retryAfter between 0 and 1s, got %v", retryAfter)
	}
}

func TestRateLimiter_SeparateKeys(t *testing.T) {
	rl := NewRateLimiter(0.01, 1)

	allowed, _ := rl.Allow("key-a")
	if !allowed {
		t.Fatal("First request for key-a should be allowed")
	}

	allowed, _ = rl.Allow("key-b")
	if !allowed {
		t.Fatal("First request for key-b should be allowed (separate quota)")
	}

	allowed, _ = rl.Allow("key-a")
	if allowed {
		t.Fatal("Second request for key-a should be rejected")
	}
}

func TestRateLimiter_Refills(t *testing.T) {
	rl := NewRateLimiter(20, 1)

	allowed, _ := rl.Allow("test-key")
	if !allowed {
		t.Fatal("First request should be allowed")
	}

	allowed, _ = rl.Allow("test-key")
	if allowed {
		t.Fatal("Second request should be rejected")
	}

	// One token every 50ms
	time.Sleep(60 * time.Millisecond)

	allowed, _ = rl.Allow("test-key")
	if !allowed {
		t.Fatal("Request after refill should be allowed")
	}
}

func TestRateLimiter_RejectedRequestsDoNotConsumeTokens(t *testing.T) {
	rl := NewRateLimiter(20, 1)

	rl.Allow("test-key")
	for i := 0; i < 5; i++ {
		rl.Allow("test-key")
	}

	time.Sleep(60 * time.Millisecond)

	if allowed, _ := rl.Allow("test-key"); !allowed {
		t.Fatal("Rejected requests should not push back the next token")
	}
}

func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	rl := NewRateLimiter(0.01, 100)

	var wg sync.WaitGroup
	allowed := make([]bool, 200)

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			allowed[idx], _ = rl.Allow("concurrent-key")
		}(i)
	}

	wg.Wait()

	allowedCount := 0
	for _, a := range allowed {
		if a {
			allowedCount++
		}
	}

	if allowedCount != 100 {
		t.Errorf("Expected exactly 100 allowed requests, got %d", allowedCount)
	}
}

func TestRateLimiter_IdleEntriesSwept(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	for i := 0; i < 5; i++ {
		rl.Allow(fmt.Sprintf("key-%d", i))
	}

	rl.mu.Lock()
	rl.sweep(time.Now().Add(idleAfter + time.Second))
	remaining := len(rl.visitors)
	rl.mu.Unlock()

	if remaining != 0 {
		t.Errorf("Expected idle entries to be swept, %d remain", remaining)
	}
}

func TestRateLimiter_ZeroBurstRejects(t *testing.T) {
	rl := NewRateLimiter(1, 0)

	if allowed, retry := rl.Allow("test-key"); allowed || retry <= 0 {
		t.Errorf("Expected rejection with positive retry, got allowed=%v retry=%v", allowed, retry)
	}
}

// --- Key extraction tests ---

func TestClientIP_XForwardedFor(t *testing.T) {
	tests := []struct {
		name     string
		xff      string
		remote   string
		expected string
	}{
		{
			name:     "single IP",
			xff:      "203.0.113.1",
			expected: "ip:203.0.113.1",
		},
		{
			name:     "multiple IPs takes leftmost",
			xff:      "203.0.113.1, 198.51.100.1, 10.0.0.1",
			expected: "ip:203.0.113.1",
		},
		{
			name:     "no XFF falls back to RemoteAddr",
			remote:   "192.168.1.1:12345",
			expected: "ip:192.168.1.1",
		},
		{
			name:     "RemoteAddr without port",
			remote:   "192.168.1.1",
			expected: "ip:192.168.1.1",
		},
		{
			name:     "XFF with spaces",
			xff:      "  203.0.113.1 , 10.0.0.1 ",
			expected: "ip:203.0.113.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.remote != "" {
				r.RemoteAddr = tt.remote
			}

			key := ClientIP(r)
			if key != tt.expected {
				t.Errorf("ClientIP() = %q, want %q", key, tt.expected)
			}
		})
	}
}

func TestClientIP_EmptyXFF(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "")
	r.RemoteAddr = "10.0.0.5:9999"

	key := ClientIP(r)
	if key != "ip:10.0.0.5" {
		t.Errorf("ClientIP() with empty XFF = %q, want %q (should fallback to RemoteAddr)", key, "ip:10.0.0.5")
	}
}

// --- Middleware factory tests ---

func TestRateLimitMiddleware_NilLimiter(t *testing.T) {
	called := false
	handler := func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}

	wrapped := RateLimit(nil, ClientIP)(handler)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	wrapped(w, r)

	if !called {
		t.Fatal("Handler should be called when limiter is nil (disabled mode)")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestRateLimitMiddleware_EmptyKey(t *testing.T) {
	called := false
	handler := func(w http.ResponseWriter, r *http.Request) {
		called = true
	}

	emptyKey := func(r *http.Request) string { return "" }
	wrapped := RateLimit(NewRateLimiter(1, 1), emptyKey)(handler)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	wrapped(httptest.NewRecorder(), r)

	if !called {
		t.Fatal("Handler should be called when key is empty (unidentifiable client)")
	}
}

func TestRateLimitMiddleware_Returns429(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	wrapped := RateLimit(NewRateLimiter(0.5, 1), ClientIP)(handler)

	// First request: OK
	r := httptest.NewRequest(http.MethodPost, "/api/v1/builds", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	wrapped(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("First request should be 200, got %d", w.Code)
	}

	// Second request: 429
	r = httptest.NewRequest(http.MethodPost, "/api/v1/builds", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	w = httptest.NewRecorder()
	wrapped(w, r)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("Second request should be 429, got %d", w.Code)
	}

	if got := w.Header().Get("Retry-After"); got != "2" {
		t.Errorf("Expected Retry-After 2, got %q", got)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	if body["error"] != "Rate limit exceeded" {
		t.Errorf("Expected error 'Rate limit exceeded', got %q", body["error"])
	}
	if body["code"] != float64(http.StatusTooManyRequests) {
		t.Errorf("Expected code 429, got %v", body["code"])
	}
}

func TestRateLimitMiddleware_OtherClientsUnaffected(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	wrapped := RateLimit(NewRateLimiter(0.5, 1), ClientIP)(handler)

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		wrapped(w, r)
		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 for %s, got %d", addr, w.Code)
		}
	}
}

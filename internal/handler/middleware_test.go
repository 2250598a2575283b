package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// --- SecurityHeaders ---

func TestSecurityHeaders_SetsAllHeaders(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/blog", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders(okHandler()).ServeHTTP(rec, req)

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"X-XSS-Protection":       "0",
		"Permissions-Policy":     "camera=(), microphone=(), geolocation=()",
	}
	for name, want := range headers {
		if got := rec.Header().Get(name); got != want {
			t.Errorf("%s: want %q, got %q", name, want, got)
		}
	}
}

func TestSecurityHeaders_CSPAndHSTS(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/blog", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders(okHandler()).ServeHTTP(rec, req)

	csp := rec.Header().Get("Content-Security-Policy")
	for _, d := range []string{"default-src 'none'", "frame-ancestors 'none'"} {
		if !strings.Contains(csp, d) {
			t.Errorf("CSP missing directive %q: %s", d, csp)
		}
	}
	if hsts := rec.Header().Get("Strict-Transport-Security"); !strings.Contains(hsts, "max-age=") {
		t.Errorf("HSTS missing max-age: %q", hsts)
	}
}

func TestSecurityHeaders_PassesThrough(t *testing.T) {
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders(inner).ServeHTTP(rec, req)

	if !called {
		t.Error("inner handler was not called")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("expected status 418, got %d", rec.Code)
	}
}

// --- RateLimiter ---

func postFrom(h http.Handler, remoteAddr, xff string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/contact", nil)
	req.RemoteAddr = remoteAddr
	if xff != "" {
		req.Header.Set("X-Forwarded-For", xff)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl := NewRateLimiter(10)
	defer rl.Stop()
	handler := rl.Middleware(okHandler())

	for i := 0; i < 10; i++ {
		if rec := postFrom(handler, "192.168.1.1:12345", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(5)
	defer rl.Stop()
	handler := rl.Middleware(okHandler())

	var last *httptest.ResponseRecorder
	for i := 0; i < 6; i++ {
		last = postFrom(handler, "192.168.1.1:12345", "")
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on 6th request, got %d", last.Code)
	}
	if ra := last.Header().Get("Retry-After"); ra == "" {
		t.Error("expected Retry-After header on 429 response")
	}
	if !strings.Contains(last.Body.String(), "rate_limit_exceeded") {
		t.Errorf("unexpected body: %s", last.Body.String())
	}
}

func TestRateLimiter_DifferentIPsAreIndependent(t *testing.T) {
	rl := NewRateLimiter(2)
	defer rl.Stop()
	handler := rl.Middleware(okHandler())

	postFrom(handler, "10.0.0.1:1234", "")
	postFrom(handler, "10.0.0.1:1234", "")

	if rec := postFrom(handler, "10.0.0.2:1234", ""); rec.Code != http.StatusOK {
		t.Errorf("different IP should not be rate limited, got %d", rec.Code)
	}
}

func TestRateLimiter_XForwardedFor_SpoofedLeftmostIgnored(t *testing.T) {
	rl := NewRateLimiter(1)
	defer rl.Stop()
	handler := rl.Middleware(okHandler())

	if rec := postFrom(handler, "10.0.0.99:1234", "203.0.113.50"); rec.Code != http.StatusOK {
		t.Fatalf("first request should succeed, got %d", rec.Code)
	}
	// The proxy appends the real client last, so a prepended address changes nothing.
	if rec := postFrom(handler, "10.0.0.99:1234", "9.9.9.9, 203.0.113.50"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("spoofed leftmost IP should not bypass rate limit, got %d", rec.Code)
	}
}

func TestRateLimiter_ZeroDisables(t *testing.T) {
	rl := NewRateLimiter(0)
	defer rl.Stop()
	handler := rl.Middleware(okHandler())

	for i := 0; i < 50; i++ {
		if rec := postFrom(handler, "10.0.0.1:1234", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 with limiting disabled, got %d", i+1, rec.Code)
		}
	}
}

func TestRateLimiter_PruneForgetsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1)
	defer rl.Stop()
	handler := rl.Middleware(okHandler())

	postFrom(handler, "10.0.0.1:1234", "")
	rl.prune(time.Now().Add(2 * time.Minute))

	rl.mu.Lock()
	n := len(rl.clients)
	rl.mu.Unlock()
	if n != 0 {
		t.Errorf("expected idle client to be pruned, %d remain", n)
	}
	if rec := postFrom(handler, "10.0.0.1:1234", ""); rec.Code != http.StatusOK {
		t.Errorf("expected 200 after window reset, got %d", rec.Code)
	}
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1)
	rl.Stop()
	rl.Stop()
}

// --- RequestLogger ---

func TestRequestLogger_PreservesStatus(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	req := httptest.NewRequest("GET", "/api/blog/x", nil)
	rec := httptest.NewRecorder()
	RequestLogger(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

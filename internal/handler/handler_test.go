package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRoot(t *testing.T) {
	h := New(&mockDB{}, []string{"*"})
	req := httptest.NewRequest("GET", "/api/", nil)
	rec := httptest.NewRecorder()

	h.Root(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["message"] != "Legal Professional Website API" {
		t.Errorf("unexpected message %q", resp["message"])
	}
}

func TestCORS_Wildcard(t *testing.T) {
	h := New(&mockDB{}, []string{"*"})

	req := httptest.NewRequest("GET", "/api/blog", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	rec := httptest.NewRecorder()
	h.CORS(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected origin *, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("wildcard must not allow credentials, got %q", got)
	}
}

func TestCORS_AllowedOriginEchoed(t *testing.T) {
	h := New(&mockDB{}, []string{"http://localhost:3000", "https://legal.example"})

	req := httptest.NewRequest("GET", "/api/blog", nil)
	req.Header.Set("Origin", "https://legal.example")
	rec := httptest.NewRecorder()
	h.CORS(okHandler()).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://legal.example" {
		t.Errorf("expected echoed origin, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("expected credentials=true, got %q", got)
	}
	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Errorf("expected Vary: Origin, got %q", got)
	}
}

func TestCORS_UnknownOriginGetsNoAllowHeader(t *testing.T) {
	h := New(&mockDB{}, []string{"https://legal.example"})

	req := httptest.NewRequest("GET", "/api/blog", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.CORS(okHandler()).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin header, got %q", got)
	}
	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Errorf("expected Vary: Origin on a rejected origin, got %q", got)
	}
}

func TestCORS_AllowListVariesWithoutOrigin(t *testing.T) {
	h := New(&mockDB{}, []string{"https://legal.example"})

	req := httptest.NewRequest("GET", "/api/blog", nil)
	rec := httptest.NewRecorder()
	h.CORS(okHandler()).ServeHTTP(rec, req)

	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Errorf("expected Vary: Origin, got %q", got)
	}
}

func TestCORS_WildcardDoesNotVary(t *testing.T) {
	h := New(&mockDB{}, []string{"*"})

	req := httptest.NewRequest("GET", "/api/blog", nil)
	req.Header.Set("Origin", "https://any.example")
	rec := httptest.NewRecorder()
	h.CORS(okHandler()).ServeHTTP(rec, req)

	if got := rec.Header().Get("Vary"); got != "" {
		t.Errorf("expected no Vary header, got %q", got)
	}
}

func TestCORS_OptionsPreflight(t *testing.T) {
	h := New(&mockDB{}, []string{"*"})

	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest("OPTIONS", "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.CORS(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for OPTIONS, got %d", rec.Code)
	}
	if called {
		t.Error("inner handler should not be called for OPTIONS preflight")
	}
}

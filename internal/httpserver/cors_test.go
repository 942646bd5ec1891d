package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fdg312/thali/internal/config"
)

func TestCORS_PreflightAllowedOrigin(t *testing.T) {
	cfg := &config.Config{
		CORSAllowedOrigins: []string{"https://thali.example.com"},
	}

	handler := CORSMiddleware(cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called for preflight")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/meals", nil)
	req.Header.Set("Origin", "https://thali.example.com")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://thali.example.com" {
		t.Errorf("expected Allow-Origin=https://thali.example.com, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); got != corsAllowMethods {
		t.Errorf("expected Allow-Methods=%s, got %q", corsAllowMethods, got)
	}
	if got := rr.Header().Get("Access-Control-Max-Age"); got != "600" {
		t.Errorf("expected Max-Age=600, got %q", got)
	}
}

func TestCORS_Requests(t *testing.T) {
	tests := []struct {
		name            string
		origins         []string
		credentials     bool
		origin          string
		wantAllowOrigin string
		wantCredentials string
	}{
		{"allowed with credentials", []string{"https://thali.example.com"}, true, "https://thali.example.com", "https://thali.example.com", "true"},
		{"disallowed origin", []string{"https://thali.example.com"}, false, "https://evil.example", "", ""},
		{"no origin header", []string{"https://thali.example.com"}, false, "", "", ""},
		{"wildcard never sends credentials", []string{"*"}, true, "https://any.example", "https://any.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{CORSAllowedOrigins: tt.origins, CORSAllowCredentials: tt.credentials}

			innerCalled := false
			handler := CORSMiddleware(cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				innerCalled = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/reports/meal-plan", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if !innerCalled || rr.Code != http.StatusOK {
				t.Fatalf("expected inner handler with 200, got called=%v status=%d", innerCalled, rr.Code)
			}
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowOrigin {
				t.Errorf("expected Allow-Origin=%q, got %q", tt.wantAllowOrigin, got)
			}
			if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != tt.wantCredentials {
				t.Errorf("expected Allow-Credentials=%q, got %q", tt.wantCredentials, got)
			}
			if tt.wantAllowOrigin != "" && rr.Header().Get("Access-Control-Expose-Headers") != corsExposeHeaders {
				t.Errorf("expected exposed headers for download filenames")
			}
		})
	}
}

func TestCORS_PreflightDisallowedOrigin(t *testing.T) {
	cfg := &config.Config{CORSAllowedOrigins: []string{"https://thali.example.com"}}

	handler := CORSMiddleware(cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called for preflight")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/meals", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); got != "" {
		t.Errorf("expected no Allow-Methods header, got %q", got)
	}
}

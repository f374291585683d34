package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientIPGeneric(t *testing.T) {
	tests := []struct {
		name    string
		remote  string
		xff     string
		xreal   string
		trusted []string
		want    string
	}{
		{"direct connection", "203.0.113.9:51234", "", "", nil, "203.0.113.9"},
		{"xff ignored without trust", "203.0.113.9:51234", "198.51.100.1", "", nil, "203.0.113.9"},
		{"xff honored from trusted proxy", "10.0.0.5:443", "198.51.100.1, 10.0.0.5", "", []string{"10.0.0.0/8"}, "198.51.100.1"},
		{"x-real-ip honored from trusted proxy", "10.0.0.5:443", "", "198.51.100.2", []string{"10.0.0.0/8"}, "198.51.100.2"},
		{"exact trusted ip match", "172.16.0.1:9000", "198.51.100.3", "", []string{"172.16.0.1"}, "198.51.100.3"},
		{"untrusted proxy ignored", "192.0.2.7:1234", "198.51.100.4", "", []string{"10.0.0.0/8"}, "192.0.2.7"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tc.remote
			if tc.xff != "" {
				r.Header.Set("X-Forwarded-For", tc.xff)
			}
			if tc.xreal != "" {
				r.Header.Set("X-Real-IP", tc.xreal)
			}
			if got := clientIPGeneric(r, tc.trusted); got != tc.want {
				t.Errorf("clientIPGeneric() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIPRateLimiterBlocksAfterLimit(t *testing.T) {
	limiter := NewIPRateLimiter(3, time.Minute)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		r := httptest.NewRequest(http.MethodGet, "/v1/login", nil)
		r.RemoteAddr = "203.0.113.50:40000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want 200", i+1, w.Code)
		}
	}

	r := httptest.NewRequest(http.MethodGet, "/v1/login", nil)
	r.RemoteAddr = "203.0.113.50:40000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("got status %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on 429")
	}
}

func TestIPRateLimiterSeparatePerIP(t *testing.T) {
	limiter := NewIPRateLimiter(1, time.Minute)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, addr := range []string{"192.0.2.1:1000", "192.0.2.2:1000"} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Errorf("first request from %s: got %d, want 200", addr, w.Code)
		}
	}
}

func TestLockoutDurationProgression(t *testing.T) {
	tests := []struct {
		failures int
		want     time.Duration
	}{
		{4, 0},
		{5, time.Minute},
		{6, 5 * time.Minute},
		{7, 15 * time.Minute},
		{8, 30 * time.Minute},
		{20, 30 * time.Minute},
	}
	for _, tc := range tests {
		if got := lockoutDuration(tc.failures); got != tc.want {
			t.Errorf("lockoutDuration(%d) = %v, want %v", tc.failures, got, tc.want)
		}
	}
}

func TestFailedLoginLockoutInMemory(t *testing.T) {
	const uid = 990001

	ResetFailedLogin(uid)
	for i := 0; i < 5; i++ {
		RecordFailedLogin(uid)
	}
	locked, remaining := IsAccountLocked(uid)
	if !locked {
		t.Fatal("account should be locked after 5 failures")
	}
	if remaining <= 0 {
		t.Errorf("expected positive lockout remaining, got %v", remaining)
	}

	ResetFailedLogin(uid)
	if locked, _ := IsAccountLocked(uid); locked {
		t.Error("account should unlock after reset")
	}
}

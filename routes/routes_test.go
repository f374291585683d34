package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthEndpoint(t *testing.T) {
	router := InitRouter(nil)

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", body["status"])
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-routes")
	router := InitRouter(nil)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/user/withdrawals"},
		{http.MethodGet, "/v1/user/portfolio"},
		{http.MethodGet, "/v1/admin/withdrawals"},
		{http.MethodGet, "/v1/admin/dashboard"},
	}
	for _, tc := range paths {
		r := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: got status %d, want 401", tc.method, tc.path, w.Code)
		}
	}
}

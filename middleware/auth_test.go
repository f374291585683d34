package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kingofgreatnezzz/greenwood-invest/utils"
)

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-auth-middleware")

	okHandler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.GetUserID(r)
		if !ok {
			t.Error("user id missing from context")
		}
		_ = json.NewEncoder(w).Encode(map[string]uint{"id": uid})
	}))

	t.Run("valid token passes", func(t *testing.T) {
		token, err := utils.GenerateAccessToken(42, "user")
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}
		r := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		okHandler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing token rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
		w := httptest.NewRecorder()
		okHandler.ServeHTTP(w, r)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("got status %d, want 401", w.Code)
		}
	})

	t.Run("expired token rejected with session message", func(t *testing.T) {
		token, err := utils.GenerateAccessTokenWithExpiry(42, "user", -time.Minute)
		if err != nil {
			t.Fatalf("GenerateAccessTokenWithExpiry: %v", err)
		}
		r := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		okHandler.ServeHTTP(w, r)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("got status %d, want 401", w.Code)
		}
		var resp utils.APIResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.Success {
			t.Error("expected success=false on expired token")
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
		r.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		okHandler.ServeHTTP(w, r)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("got status %d, want 401", w.Code)
		}
	})
}

func TestAdminAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-admin-middleware")

	handler := AdminAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("admin role passes", func(t *testing.T) {
		token, err := utils.GenerateAccessToken(1, "admin")
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}
		r := httptest.NewRequest(http.MethodGet, "/v1/admin/withdrawals", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("got status %d, want 200", w.Code)
		}
	})

	t.Run("user role forbidden", func(t *testing.T) {
		token, err := utils.GenerateAccessToken(2, "user")
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}
		r := httptest.NewRequest(http.MethodGet, "/v1/admin/withdrawals", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusForbidden {
			t.Fatalf("got status %d, want 403", w.Code)
		}
	})

	t.Run("no token unauthorized", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/v1/admin/withdrawals", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("got status %d, want 401", w.Code)
		}
	})
}

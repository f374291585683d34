package utils

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-unit-tests")
	t.Setenv("JWT_AUD", "")
	t.Setenv("JWT_ISS", "")

	tok, err := GenerateAccessToken(42, "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	_, claims, err := ValidateAccessToken(tok)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if got := UserIDFromClaims(claims); got != 42 {
		t.Errorf("id claim = %d, want 42", got)
	}
	if role, _ := claims["role"].(string); role != "user" {
		t.Errorf("role claim = %q, want user", role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-unit-tests")

	tok, err := GenerateAccessTokenWithExpiry(1, "user", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessTokenWithExpiry: %v", err)
	}
	if _, _, err := ValidateAccessToken(tok); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-unit-tests")

	tok, err := GenerateAccessToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, _, err := ValidateAccessToken(tok + "x"); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestWrongAudienceRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-unit-tests")
	t.Setenv("JWT_AUD", "issuer-a")

	tok, err := GenerateAccessToken(1, "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	t.Setenv("JWT_AUD", "issuer-b")
	if _, _, err := ValidateAccessToken(tok); err == nil {
		t.Fatal("expected audience mismatch to be rejected")
	}
}

func TestClaimsFromRequest(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-unit-tests")
	t.Setenv("JWT_AUD", "")
	t.Setenv("JWT_ISS", "")

	tok, err := GenerateAccessToken(7, "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	r := httptest.NewRequest("GET", "http://api.local/", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	claims, err := ClaimsFromRequest(r)
	if err != nil {
		t.Fatalf("ClaimsFromRequest: %v", err)
	}
	if got := UserIDFromClaims(claims); got != 7 {
		t.Errorf("id claim = %d, want 7", got)
	}

	r.Header.Set("Authorization", "Basic abc")
	if _, err := ClaimsFromRequest(r); err == nil {
		t.Error("expected non-bearer Authorization to fail")
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/magieskin/storefront-backend/pkg/config"
	"github.com/magieskin/storefront-backend/pkg/security"
)

func adminHandler(cfg config.AdminConfig) http.Handler {
	return RequireAdmin(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func doAdminRequest(t *testing.T, handler http.Handler, password string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin-orders", nil)
	if password != "" {
		req.Header.Set("X-Admin-Password", password)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestRequireAdminAcceptsPlainSecret(t *testing.T) {
	handler := adminHandler(config.AdminConfig{Password: "hunter2"})

	if w := doAdminRequest(t, handler, "hunter2"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doAdminRequest(t, handler, "wrong"); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong secret: expected 401, got %d", w.Code)
	}
	if w := doAdminRequest(t, handler, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: expected 401, got %d", w.Code)
	}
}

func TestRequireAdminAcceptsHashedSecret(t *testing.T) {
	hash, err := security.HashSecret("hunter2")
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}
	handler := adminHandler(config.AdminConfig{PasswordHash: hash})

	if w := doAdminRequest(t, handler, "hunter2"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doAdminRequest(t, handler, "wrong"); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong secret: expected 401, got %d", w.Code)
	}
}

func TestRequireAdminRejectsWhenUnconfigured(t *testing.T) {
	handler := adminHandler(config.AdminConfig{})

	if w := doAdminRequest(t, handler, "anything"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestVerifyAdminSecretPrefersHash(t *testing.T) {
	hash, err := security.HashSecret("real-secret")
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}
	cfg := config.AdminConfig{Password: "plain-secret", PasswordHash: hash}

	if !VerifyAdminSecret(cfg, "real-secret") {
		t.Fatal("hashed secret should authenticate")
	}
	if VerifyAdminSecret(cfg, "plain-secret") {
		t.Fatal("plain secret must be ignored when a hash is configured")
	}
}

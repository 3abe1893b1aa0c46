package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

func authedRequest(t *testing.T, secret, userID string, role entity.UserRole) *http.Request {
	t.Helper()
	token, err := utils.NewAccessToken(secret, userID, role, 5)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	return req
}

func TestAuthenticate(t *testing.T) {
	jwtConfig := utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 5}

	var gotUserID string
	var gotRole entity.UserRole
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		gotRole, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := Authenticate(jwtConfig, zap.NewNop())(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, "test-secret", "Cabc12345", entity.RoleClient))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotUserID != "Cabc12345" || gotRole != entity.RoleClient {
		t.Errorf("context identity = %q/%q, want Cabc12345/client", gotUserID, gotRole)
	}
}

func TestAuthenticateRejections(t *testing.T) {
	jwtConfig := utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 5}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with bad credentials")
	})
	handler := Authenticate(jwtConfig, zap.NewNop())(next)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"bad scheme", "Basic abc"},
		{"no token", "Bearer"},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestAuthenticateWrongSecret(t *testing.T) {
	jwtConfig := utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 5}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with forged token")
	})
	handler := Authenticate(jwtConfig, zap.NewNop())(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, "other-secret", "Cabc12345", entity.RoleClient))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	jwtConfig := utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 5}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Authenticate(jwtConfig, zap.NewNop())(RequireAdmin(zap.NewNop())(next))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, "test-secret", "Aabc12345", entity.RoleAdmin))
	if rec.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, "test-secret", "Cabc12345", entity.RoleClient))
	if rec.Code != http.StatusForbidden {
		t.Errorf("client status = %d, want 403", rec.Code)
	}
}

func TestRequireClient(t *testing.T) {
	jwtConfig := utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 5}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Authenticate(jwtConfig, zap.NewNop())(RequireClient(zap.NewNop())(next))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, "test-secret", "Aabc12345", entity.RoleAdmin))
	if rec.Code != http.StatusForbidden {
		t.Errorf("admin status = %d, want 403", rec.Code)
	}
}

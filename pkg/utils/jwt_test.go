package utils

import (
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := NewAccessToken("secret", "Cabc12345", entity.RoleClient, 30)
	if err != nil {
		t.Fatalf("NewAccessToken returned error: %v", err)
	}
	if token.Token == "" {
		t.Fatal("signed token is empty")
	}
	if !token.Exp.After(time.Now()) {
		t.Errorf("expiry %v is not in the future", token.Exp)
	}

	claims, err := ParseAccessToken("secret", token.Token)
	if err != nil {
		t.Fatalf("ParseAccessToken returned error: %v", err)
	}
	if claims.UserID != "Cabc12345" {
		t.Errorf("user ID = %q, want Cabc12345", claims.UserID)
	}
	if claims.Role != entity.RoleClient {
		t.Errorf("role = %q, want client", claims.Role)
	}
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	token, err := NewAccessToken("secret", "Aabc12345", entity.RoleAdmin, 30)
	if err != nil {
		t.Fatalf("NewAccessToken returned error: %v", err)
	}

	if _, err := ParseAccessToken("other-secret", token.Token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	token, err := NewAccessToken("secret", "Cabc12345", entity.RoleClient, -5)
	if err != nil {
		t.Fatalf("NewAccessToken returned error: %v", err)
	}

	if _, err := ParseAccessToken("secret", token.Token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseAccessTokenGarbage(t *testing.T) {
	if _, err := ParseAccessToken("secret", "not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

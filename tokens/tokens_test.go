package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := New([]byte("test-secret"))

	token, err := svc.Issue("u123", "traveler@example.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "u123" {
		t.Errorf("expected userid u123, got %s", claims.UserID)
	}
	if claims.Email != "traveler@example.com" {
		t.Errorf("expected email traveler@example.com, got %s", claims.Email)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 6*24*time.Hour || ttl > 7*24*time.Hour {
		t.Errorf("expected expiry about 7 days out, got %v", ttl)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := New([]byte("secret-a")).Issue("u123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := New([]byte("secret-b")).Verify(token); err == nil {
		t.Fatal("expected verification to fail for a token signed with another key")
	}
}

func TestVerifyRejectsMalformed(t *testing.T) {
	svc := New([]byte("test-secret"))

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(token); err == nil {
			t.Errorf("expected verification to fail for %q", token)
		}
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	claims := &Claims{
		UserID: "u123",
		Email:  "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("signing error: %v", err)
	}

	if _, err := New(secret).Verify(expired); err == nil {
		t.Fatal("expected verification to fail for an expired token")
	}
}

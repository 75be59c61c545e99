package auth

import (
	"testing"
	"time"
)

func TestJWTMintAndParse(t *testing.T) {
	m := NewJWTManager("cobramax-backend", "cobramax-api", "test-secret")

	tok, err := m.Mint("u1", "s1", "access", time.Minute)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.CollectorID != "u1" || claims.SessionID != "s1" || claims.Type != "access" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestJWTParseRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("cobramax-backend", "cobramax-api", "secret-a")
	other := NewJWTManager("cobramax-backend", "cobramax-api", "secret-b")

	tok, err := m.Mint("u1", "s1", "access", time.Minute)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := other.Parse(tok); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

func TestJWTParseRejectsWrongAudience(t *testing.T) {
	m := NewJWTManager("cobramax-backend", "cobramax-api", "test-secret")
	other := NewJWTManager("cobramax-backend", "other-api", "test-secret")

	tok, err := m.Mint("u1", "s1", "access", time.Minute)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := other.Parse(tok); err == nil {
		t.Fatal("expected parse failure with wrong audience")
	}
}

func TestJWTParseRejectsExpired(t *testing.T) {
	m := NewJWTManager("cobramax-backend", "cobramax-api", "test-secret")

	tok, err := m.Mint("u1", "s1", "access", -time.Minute)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := m.Parse(tok); err == nil {
		t.Fatal("expected parse failure for expired token")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := VerifyPassword(hash, "hunter2"); err != nil {
		t.Errorf("verify: %v", err)
	}
	if err := VerifyPassword(hash, "wrong"); err == nil {
		t.Error("expected mismatch for wrong password")
	}
}

package http

import (
	"testing"
	"time"

	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

func TestIssueAndVerifyToken(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, nopLogger{})

	user := &domain.User{UID: "u-1", Email: "buyer@sparegold.in", Role: domain.AppUser}
	token, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	payload, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if payload.UserID != "u-1" {
		t.Errorf("UserID = %q, want u-1", payload.UserID)
	}
	if payload.Role != domain.AppUser {
		t.Errorf("Role = %q, want %q", payload.Role, domain.AppUser)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	issuer := NewJWTTokenService("secret-a", time.Hour, nopLogger{})
	verifier := NewJWTTokenService("secret-b", time.Hour, nopLogger{})

	token, err := issuer.IssueToken(&domain.User{UID: "u-1", Role: domain.AppUser})
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	if _, err := verifier.VerifyToken(token); err == nil {
		t.Fatal("VerifyToken() expected error for wrong secret")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	svc := NewJWTTokenService("test-secret", -time.Minute, nopLogger{})

	token, err := svc.IssueToken(&domain.User{UID: "u-1", Role: domain.AppUser})
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	if _, err := svc.VerifyToken(token); err == nil {
		t.Fatal("VerifyToken() expected error for expired token")
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, nopLogger{})

	if _, err := svc.VerifyToken("not.a.token"); err == nil {
		t.Fatal("VerifyToken() expected error for malformed token")
	}
}

package identity

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sparegold/sparegold_catalog_service/internal/adapter/memstore"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

func TestSignUpAndSignIn(t *testing.T) {
	store := memstore.New()
	provider := NewLocalProvider(store, nopLogger{})
	ctx := context.Background()

	created, err := provider.SignUp(ctx, "buyer@sparegold.in", "secret123")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if created.UID == "" {
		t.Error("SignUp() left UID empty")
	}
	if created.DisplayName != "buyer" {
		t.Errorf("DisplayName = %q, want buyer", created.DisplayName)
	}
	if created.Role != domain.AppUser {
		t.Errorf("Role = %q, want %q", created.Role, domain.AppUser)
	}

	user, err := provider.SignIn(ctx, "buyer@sparegold.in", "secret123")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if user.UID != created.UID {
		t.Errorf("SignIn() UID = %q, want %q", user.UID, created.UID)
	}
}

func TestSignInIsCaseInsensitiveOnEmail(t *testing.T) {
	provider := NewLocalProvider(memstore.New(), nopLogger{})
	ctx := context.Background()

	if _, err := provider.SignUp(ctx, "buyer@sparegold.in", "secret123"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if _, err := provider.SignIn(ctx, "BUYER@sparegold.in", "secret123"); err != nil {
		t.Errorf("SignIn() with upper-case email error = %v", err)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	provider := NewLocalProvider(memstore.New(), nopLogger{})
	ctx := context.Background()

	if _, err := provider.SignUp(ctx, "buyer@sparegold.in", "secret123"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	_, err := provider.SignIn(ctx, "buyer@sparegold.in", "nope-nope")
	var authErr *domain.AuthError
	if !errors.As(err, &authErr) || authErr.Code != domain.CodeWrongPassword {
		t.Errorf("SignIn() error = %v, want code %q", err, domain.CodeWrongPassword)
	}
}

func TestSignInUnknownEmail(t *testing.T) {
	provider := NewLocalProvider(memstore.New(), nopLogger{})

	_, err := provider.SignIn(context.Background(), "ghost@sparegold.in", "secret123")
	var authErr *domain.AuthError
	if !errors.As(err, &authErr) || authErr.Code != domain.CodeUserNotFound {
		t.Errorf("SignIn() error = %v, want code %q", err, domain.CodeUserNotFound)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	provider := NewLocalProvider(memstore.New(), nopLogger{})
	ctx := context.Background()

	if _, err := provider.SignUp(ctx, "buyer@sparegold.in", "secret123"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	_, err := provider.SignUp(ctx, "buyer@sparegold.in", "other-secret")
	var authErr *domain.AuthError
	if !errors.As(err, &authErr) || authErr.Code != domain.CodeEmailAlreadyInUse {
		t.Fatalf("SignUp() error = %v, want code %q", err, domain.CodeEmailAlreadyInUse)
	}
	if authErr.Message != "The email address is already in use by another account." {
		t.Errorf("Message = %q", authErr.Message)
	}
}

func TestPasswordHashNotExposed(t *testing.T) {
	store := memstore.New()
	provider := NewLocalProvider(store, nopLogger{})
	ctx := context.Background()

	if _, err := provider.SignUp(ctx, "buyer@sparegold.in", "secret123"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	// The stored record holds a bcrypt hash, never the plain password.
	raw, err := store.Get(ctx, authUsersKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if strings.Contains(raw, "secret123") {
		t.Error("plain password persisted in the account store")
	}
}

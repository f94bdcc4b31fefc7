package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sparegold/sparegold_catalog_service/internal/adapter/identity"
	"github.com/sparegold/sparegold_catalog_service/internal/adapter/memstore"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
)

func newAuthService() (*AuthService, *memstore.Store) {
	store := memstore.New()
	provider := identity.NewLocalProvider(store, nopLogger{})
	return NewAuthService(provider, store, nopLogger{}), store
}

func TestSignUpSignsIn(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	user, err := svc.SignUp(ctx, "buyer@sparegold.in", "secret123")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if user.Email != "buyer@sparegold.in" {
		t.Errorf("Email = %q, want buyer@sparegold.in", user.Email)
	}
	if user.DisplayName != "buyer" {
		t.Errorf("DisplayName = %q, want buyer", user.DisplayName)
	}

	state := svc.State()
	if state.Status != domain.Authenticated {
		t.Errorf("State() = %v, want Authenticated", state.Status)
	}
	if state.User == nil || state.User.UID != user.UID {
		t.Error("State() does not carry the signed-in user")
	}

	// The signed-in user is mirrored for CurrentUser.
	current, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if current == nil || current.UID != user.UID {
		t.Error("CurrentUser() does not match the signed-in user")
	}
}

func TestSignInRejectsBadEmail(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.SignIn(context.Background(), "not-an-email", "secret123")
	if !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("SignIn() error = %v, want ErrInvalidEmail", err)
	}
}

func TestSignInRejectsShortPassword(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.SignIn(context.Background(), "buyer@sparegold.in", "12345")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("SignIn() error = %v, want ErrInvalidPassword", err)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, "buyer@sparegold.in", "secret123"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	_, err := svc.SignIn(ctx, "buyer@sparegold.in", "wrong-password")
	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("SignIn() error = %v, want AuthError", err)
	}
	if authErr.Code != domain.CodeWrongPassword {
		t.Errorf("Code = %q, want %q", authErr.Code, domain.CodeWrongPassword)
	}
}

func TestSignInUnknownUser(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.SignIn(context.Background(), "ghost@sparegold.in", "secret123")
	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("SignIn() error = %v, want AuthError", err)
	}
	if authErr.Code != domain.CodeUserNotFound {
		t.Errorf("Code = %q, want %q", authErr.Code, domain.CodeUserNotFound)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, "buyer@sparegold.in", "secret123"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	_, err := svc.SignUp(ctx, "Buyer@sparegold.in", "other-secret")
	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("second SignUp() error = %v, want AuthError", err)
	}
	if authErr.Code != domain.CodeEmailAlreadyInUse {
		t.Errorf("Code = %q, want %q", authErr.Code, domain.CodeEmailAlreadyInUse)
	}
}

func TestSignOutClearsSession(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, "buyer@sparegold.in", "secret123"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if err := svc.SignOut(ctx); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}

	if svc.State().Status != domain.Unauthenticated {
		t.Errorf("State() = %v, want Unauthenticated", svc.State().Status)
	}

	current, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if current != nil {
		t.Errorf("CurrentUser() = %+v after sign-out, want nil", current)
	}
}

func TestSubscribeDeliversTransitions(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	states, unsubscribe := svc.Subscribe()
	defer unsubscribe()

	// The current state arrives first.
	if state := <-states; state.Status != domain.AuthUnknown {
		t.Fatalf("initial state = %v, want AuthUnknown", state.Status)
	}

	if _, err := svc.SignUp(ctx, "buyer@sparegold.in", "secret123"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if state := <-states; state.Status != domain.Authenticated {
		t.Fatalf("state after sign-up = %v, want Authenticated", state.Status)
	}

	if err := svc.SignOut(ctx); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if state := <-states; state.Status != domain.Unauthenticated {
		t.Fatalf("state after sign-out = %v, want Unauthenticated", state.Status)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	svc, _ := newAuthService()

	states, unsubscribe := svc.Subscribe()
	<-states
	unsubscribe()

	if _, open := <-states; open {
		t.Error("channel still open after unsubscribe")
	}

	// Unsubscribing twice is harmless.
	unsubscribe()
}

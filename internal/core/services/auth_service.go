package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
)

const currentUserKey = "currentUser"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)

// ErrInvalidEmail and ErrInvalidPassword are local pre-validation failures:
// the identity provider is never called when they occur.
var (
	ErrInvalidEmail    = errors.New("please enter a valid email address")
	ErrInvalidPassword = errors.New("password should be at least 6 characters long")
)

// AuthService is the session gate: it fronts the identity provider, keeps
// the process-wide authentication state, mirrors the signed-in user into the
// kv store and fans state changes out to subscribers. One instance exists
// for the lifetime of the process.
type AuthService struct {
	provider ports.IdentityProvider
	store    ports.KVStore
	logger   ports.LoggerPort

	mu     sync.Mutex
	state  domain.AuthState
	subs   map[int]chan domain.AuthState
	nextID int
}

func NewAuthService(
	provider ports.IdentityProvider,
	store ports.KVStore,
	logger ports.LoggerPort,
) *AuthService {
	return &AuthService{
		provider: provider,
		store:    store,
		logger:   logger,
		state:    domain.AuthState{Status: domain.AuthUnknown},
		subs:     make(map[int]chan domain.AuthState),
	}
}

// Subscribe registers a state listener. The current state is delivered
// immediately; the returned function unsubscribes.
func (s *AuthService) Subscribe() (<-chan domain.AuthState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan domain.AuthState, 8)
	ch <- s.state
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
}

func (s *AuthService) setState(state domain.AuthState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	for _, sub := range s.subs {
		select {
		case sub <- state:
		default:
			// Slow subscriber, drop the event rather than block sign-in.
		}
	}
}

// State returns the current session state.
func (s *AuthService) State() domain.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, ErrInvalidPassword
	}

	user, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		s.logger.Warn("Sign-in rejected", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	s.mirrorUser(ctx, user)
	s.setState(domain.AuthState{Status: domain.Authenticated, User: user})

	s.logger.Info("User signed in", map[string]interface{}{
		"uid":   user.UID,
		"email": user.Email,
	})

	return user, nil
}

// SignUp creates the account and immediately signs it in, matching the
// mobile client's flow.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, errors.New("please fill in all fields")
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, ErrInvalidPassword
	}

	if _, err := s.provider.SignUp(ctx, email, password); err != nil {
		s.logger.Warn("Sign-up rejected", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	return s.SignIn(ctx, email, password)
}

func (s *AuthService) SignOut(ctx context.Context) error {
	if err := s.store.Remove(ctx, currentUserKey); err != nil {
		s.logger.Error("Failed to clear session mirror", map[string]interface{}{
			"error": err.Error(),
		})
	}
	s.setState(domain.AuthState{Status: domain.Unauthenticated})

	s.logger.Info("User signed out", nil)
	return nil
}

// CurrentUser reads the mirrored user record; nil when signed out.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	raw, err := s.store.Get(ctx, currentUserKey)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load current user: %w", err)
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode current user: %w", err)
	}
	return &user, nil
}

// mirrorUser persists the signed-in user. A failed write is logged, not
// surfaced: the session itself is still valid.
func (s *AuthService) mirrorUser(ctx context.Context, user *domain.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.logger.Error("Failed to encode session mirror", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.store.Set(ctx, currentUserKey, string(raw)); err != nil {
		s.logger.Error("Failed to persist session mirror", map[string]interface{}{
			"error": err.Error(),
			"uid":   user.UID,
		})
	}
}

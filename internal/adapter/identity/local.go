package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"
	"golang.org/x/crypto/bcrypt"
)

const authUsersKey = "authUsers"

// credentialRecord is the persisted account shape. Password hashes never
// leave this package.
type credentialRecord struct {
	UID          string          `json:"uid"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"passwordHash"`
	DisplayName  string          `json:"displayName"`
	PhotoURL     string          `json:"photoURL"`
	Role         domain.UserRole `json:"role"`
	Disabled     bool            `json:"disabled"`
}

// LocalProvider is a self-contained identity provider storing bcrypt-hashed
// credentials in the kv store. It speaks the same error codes as the hosted
// provider the mobile client was written against.
type LocalProvider struct {
	store  ports.KVStore
	logger ports.LoggerPort
	mu     sync.Mutex
}

func NewLocalProvider(store ports.KVStore, logger ports.LoggerPort) *LocalProvider {
	return &LocalProvider{store: store, logger: logger}
}

func (p *LocalProvider) loadRecords(ctx context.Context) ([]credentialRecord, error) {
	raw, err := p.store.Get(ctx, authUsersKey)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	var records []credentialRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	return records, nil
}

func (p *LocalProvider) saveRecords(ctx context.Context, records []credentialRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := p.store.Set(ctx, authUsersKey, string(raw)); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}
	return nil
}

func (r *credentialRecord) user() *domain.User {
	return &domain.User{
		UID:         r.UID,
		Email:       r.Email,
		DisplayName: r.DisplayName,
		PhotoURL:    r.PhotoURL,
		Role:        r.Role,
	}
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	records, err := p.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if !strings.EqualFold(records[i].Email, email) {
			continue
		}
		if records[i].Disabled {
			return nil, domain.NewAuthError(domain.CodeUserDisabled, "account disabled")
		}
		if bcrypt.CompareHashAndPassword([]byte(records[i].PasswordHash), []byte(password)) != nil {
			return nil, domain.NewAuthError(domain.CodeWrongPassword, "wrong password")
		}
		return records[i].user(), nil
	}
	return nil, domain.NewAuthError(domain.CodeUserNotFound, "no account for email")
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	records, err := p.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if strings.EqualFold(records[i].Email, email) {
			return nil, domain.NewAuthError(domain.CodeEmailAlreadyInUse,
				"The email address is already in use by another account.")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	record := credentialRecord{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  strings.SplitN(email, "@", 2)[0],
		Role:         domain.AppUser,
	}
	records = append(records, record)
	if err := p.saveRecords(ctx, records); err != nil {
		return nil, err
	}

	p.logger.Info("Account created", map[string]interface{}{
		"uid":   record.UID,
		"email": record.Email,
	})

	return record.user(), nil
}

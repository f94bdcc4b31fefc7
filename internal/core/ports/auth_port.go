package ports

import (
	"context"

	"github.com/sparegold/sparegold_catalog_service/internal/core/domain"
)

type TokenService interface {
	IssueToken(user *domain.User) (string, error)
	VerifyToken(token string) (*domain.TokenPayload, error)
}

// IdentityProvider is the external authentication service boundary.
// Errors carry domain.AuthError codes so the session gate can map them to
// user-facing messages.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*domain.User, error)
	SignUp(ctx context.Context, email, password string) (*domain.User, error)
}

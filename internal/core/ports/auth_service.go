package ports

import (
	"context"

	"github.com/resumehub/resume-api/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenVerifier checks a bearer token and recovers the subject it was issued
// for. Implementations must treat malformed, tampered and expired tokens
// uniformly as domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

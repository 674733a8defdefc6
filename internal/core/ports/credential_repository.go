package ports

import (
	"context"

	"github.com/resumehub/resume-api/internal/core/domain"
)

// CredentialRepository defines the interface for user credential persistence.
// Accounts are insert-only: there is no update or delete operation.
type CredentialRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// username is already taken (detected via the store's uniqueness
	// constraint, not a read-then-write check).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

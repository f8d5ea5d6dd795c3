package ports

import (
	"context"

	"jobboard/internal/core/domain/model/account"
	"jobboard/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for account aggregates.
type UserRepository interface {
	// Add persists a new account to storage.
	Add(ctx context.Context, aggregate *account.AppUser) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *account.AppUser) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.AppUser, error)

	// GetByUsername retrieves an account by its username.
	// Returns an object-not-found error when no such account exists.
	GetByUsername(ctx context.Context, username string) (*account.AppUser, error)

	// ExistsByUsername reports whether an account with the username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// Package ports defines repository and unit-of-work interfaces between the
// domain layer and the persistence adapters, enabling dependency inversion
// and testability.
package ports

import (
	"context"

	"pocketmart/internal/core/domain/model/account"
)

// UserRepository defines the persistence contract for credential records.
type UserRepository interface {
	// Add persists a new user and backfills the store-generated
	// identifier into the aggregate.
	Add(ctx context.Context, user *account.User) error

	// GetByUsername retrieves a user by its unique account name.
	// Returns errs.ErrObjectNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (*account.User, error)
}

// ClientRepository defines the persistence contract for client profiles.
// A profile always references an existing user row.
type ClientRepository interface {
	// Add persists a new client profile.
	Add(ctx context.Context, details *account.ClientDetails) error
}

// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the payment gateway, and
// identity primitives. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate and assigns no identifier; user IDs
	// are generated by the domain.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by its normalized email address.
	// Returns errs.ObjectNotFoundError when no such user exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

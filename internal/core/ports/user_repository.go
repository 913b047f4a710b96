package ports

import (
	"context"

	"github.com/storyweave/storyweave-api/internal/core/domain"
)

// UpdateUserInput carries the mutable profile fields. A nil pointer means
// "leave unchanged"; identifier, email, password hash and creation timestamp
// are not representable here and therefore cannot be altered.
type UpdateUserInput struct {
	FirstName    *string
	LastName     *string
	BusinessName *string
	BusinessType *string
	Phone        *string
	Location     *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new account. Fails with domain.ErrEmailTaken when the
	// normalized email is already registered (enforced by a unique index, so
	// concurrent signups cannot both succeed).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateByID(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
}

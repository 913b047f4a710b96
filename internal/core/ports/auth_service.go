package ports

import (
	"context"

	"github.com/storyweave/storyweave-api/internal/core/domain"
)

// SignupInput carries all data accepted at registration time. Shape
// validation (formats, lengths, enum membership) happens at the transport
// layer before the service sees it.
type SignupInput struct {
	Email        string
	Password     string
	FirstName    string
	LastName     string
	BusinessName string
	BusinessType string
	Phone        string
	Location     string
}

// AuthService defines the account/session use cases.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateUserInput) (*domain.User, error)
	Logout(ctx context.Context, userID string) error
}

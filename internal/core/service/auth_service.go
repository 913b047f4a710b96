package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/storyweave/storyweave-api/internal/core/auth"
	"github.com/storyweave/storyweave-api/internal/core/domain"
	"github.com/storyweave/storyweave-api/internal/core/ports"
)

// AuthService implements signup, login, profile reads/updates and logout.
type AuthService struct {
	repo   ports.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// Signup registers a new account and returns it with a fresh session token.
// The existence pre-check gives a clean conflict error on the common path;
// the unique email index remains the actual uniqueness guarantee, so a
// concurrent duplicate still surfaces as domain.ErrEmailTaken from Create.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, string, error) {
	email := domain.NormalizeEmail(input.Email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", fmt.Errorf("signup: lookup email: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("signup: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		BusinessName: input.BusinessName,
		BusinessType: input.BusinessType,
		Phone:        input.Phone,
		Location:     input.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID, created.Email)
	if err != nil {
		return nil, "", fmt.Errorf("signup: issue token: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("account created")
	return created, token, nil
}

// Login authenticates by email and password. A missing account and a wrong
// password return the same error so responses cannot be used to enumerate
// registered emails.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login: lookup email: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")
	return user, token, nil
}

// GetProfile returns the account for userID.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile applies the provided mutable fields and returns the updated
// account. Email, identifier, password hash and creation timestamp are not
// part of UpdateUserInput and cannot change through this path.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateUserInput) (*domain.User, error) {
	updated, err := s.repo.UpdateByID(ctx, userID, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}

// Logout records an audit entry. Tokens are stateless, so there is nothing
// to invalidate server-side; the client discards its copy.
func (s *AuthService) Logout(_ context.Context, userID string) error {
	s.log.Info().Str("user_id", userID).Msg("logout")
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storyweave/storyweave-api/internal/core/auth"
	"github.com/storyweave/storyweave-api/internal/core/domain"
	"github.com/storyweave/storyweave-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user_%d", r.nextID)
	r.byEmail[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateByID(_ context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID != id {
			continue
		}
		if input.FirstName != nil {
			u.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			u.LastName = *input.LastName
		}
		if input.BusinessName != nil {
			u.BusinessName = *input.BusinessName
		}
		if input.BusinessType != nil {
			u.BusinessType = *input.BusinessType
		}
		if input.Phone != nil {
			u.Phone = *input.Phone
		}
		if input.Location != nil {
			u.Location = *input.Location
		}
		u.UpdatedAt = time.Now().UTC()
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens := auth.NewTokenManager("test-secret", "storyweave-api", "storyweave-app", time.Hour)
	return NewAuthService(repo, hasher, tokens, zerolog.Nop())
}

func signupInput(email string) ports.SignupInput {
	return ports.SignupInput{
		Email:     email,
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, token, err := svc.Signup(context.Background(), signupInput("Ada@Example.com"))
	if err != nil {
		t.Fatalf("signup returned error: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %s", user.Email)
	}
	if user.PasswordHash == "" || user.PasswordHash == "secret1" {
		t.Fatalf("password not hashed")
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}

	tm := auth.NewTokenManager("test-secret", "storyweave-api", "storyweave-app", time.Hour)
	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("token claims do not match account: %+v", claims)
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Signup(context.Background(), signupInput("a@x.com")); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), signupInput("a@x.com")); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	// Case and whitespace variants normalize to the same account.
	if _, _, err := svc.Signup(context.Background(), signupInput("  A@X.COM ")); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken for normalized duplicate, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, _, err := svc.Signup(context.Background(), signupInput("carol@example.com"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, token, err := svc.Login(context.Background(), "Carol@Example.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user.ID != created.ID {
		t.Fatalf("login returned wrong account: %s vs %s", user.ID, created.ID)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Signup(context.Background(), signupInput("dave@example.com")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	_, _, errWrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, errNoUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errNoUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errNoUser)
	}
	if errWrongPass.Error() != errNoUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errWrongPass, errNoUser)
	}
}

func TestAuthService_GetProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, _, _ := svc.Signup(context.Background(), signupInput("eve@example.com"))

	user, err := svc.GetProfile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	if user.Email != "eve@example.com" {
		t.Fatalf("unexpected profile: %+v", user)
	}

	if _, err := svc.GetProfile(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, _, _ := svc.Signup(context.Background(), signupInput("fred@example.com"))

	last := "Zimmer"
	updated, err := svc.UpdateProfile(context.Background(), created.ID, ports.UpdateUserInput{LastName: &last})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.LastName != "Zimmer" {
		t.Fatalf("last name not applied: %s", updated.LastName)
	}
	// Untouched fields survive a partial update.
	if updated.FirstName != "Ada" {
		t.Fatalf("first name changed unexpectedly: %s", updated.FirstName)
	}
	if updated.Email != "fred@example.com" {
		t.Fatalf("email changed unexpectedly: %s", updated.Email)
	}

	if _, err := svc.UpdateProfile(context.Background(), "missing", ports.UpdateUserInput{LastName: &last}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if err := svc.Logout(context.Background(), "user_1"); err != nil {
		t.Fatalf("logout returned error: %v", err)
	}
}

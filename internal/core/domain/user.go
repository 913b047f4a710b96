package domain

import (
	"errors"
	"strings"
	"time"
)

// Business categories accepted on signup and profile update.
const (
	BusinessRestaurant  = "restaurant"
	BusinessRetail      = "retail"
	BusinessServices    = "services"
	BusinessAgriculture = "agriculture"
	BusinessCrafts      = "crafts"
	BusinessOther       = "other"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a registered account. PasswordHash carries the `json:"-"` tag
// so no handler can leak it: serializing a User is always a safe projection.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	BusinessName  string    `json:"business_name,omitempty"`
	BusinessType  string    `json:"business_type,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Location      string    `json:"location,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NormalizeEmail canonicalizes an address for storage and lookup.
// The unique index is built over the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package handler

import (
	"github.com/storyweave/storyweave-api/internal/core/domain"
)

// Request structs double as the validation-rule table: every constraint an
// endpoint enforces is declared as a tag here, and the validator reports all
// violations at once as field-level errors.

type signupRequest struct {
	Email        string `json:"email"         validate:"required,email"`
	Password     string `json:"password"      validate:"required,min=6,max=72"`
	FirstName    string `json:"first_name"    validate:"required,min=1,max=50"`
	LastName     string `json:"last_name"     validate:"required,min=1,max=50"`
	BusinessName string `json:"business_name" validate:"omitempty,max=100"`
	BusinessType string `json:"business_type" validate:"omitempty,oneof=restaurant retail services agriculture crafts other"`
	Phone        string `json:"phone"         validate:"omitempty,min=7,max=20"`
	Location     string `json:"location"      validate:"omitempty,max=200"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateProfileRequest deliberately has no email, id, or password fields:
// immutable attributes cannot even be bound from the payload, so a stray key
// is dropped rather than rejected.
type updateProfileRequest struct {
	FirstName    *string `json:"first_name"    validate:"omitempty,min=1,max=50"`
	LastName     *string `json:"last_name"     validate:"omitempty,min=1,max=50"`
	BusinessName *string `json:"business_name" validate:"omitempty,max=100"`
	BusinessType *string `json:"business_type" validate:"omitempty,oneof=restaurant retail services agriculture crafts other"`
	Phone        *string `json:"phone"         validate:"omitempty,min=7,max=20"`
	Location     *string `json:"location"      validate:"omitempty,max=200"`
}

type authData struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token,omitempty"`
}

type userData struct {
	User *domain.User `json:"user"`
}

package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storyweave/storyweave-api/internal/api/metrics"
	"github.com/storyweave/storyweave-api/internal/core/domain"
	"github.com/storyweave/storyweave-api/internal/core/ports"
)

// LoginThrottle limits login attempts per account (Redis-backed).
type LoginThrottle interface {
	Allow(ctx context.Context, email string) (bool, error)
	Reset(ctx context.Context, email string) error
}

type AuthHandler struct {
	authService ports.AuthService
	throttle    LoginThrottle
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, throttle LoginThrottle, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, throttle: throttle, log: log}
}

// Signup creates a new account and returns it with a session token.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Failure      500   {object}  envelope
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Email:        req.Email,
		Password:     req.Password,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		Phone:        req.Phone,
		Location:     req.Location,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusCreated, OK(authData{User: user, Token: token}))
}

// Login authenticates an account and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      429   {object}  envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	email := domain.NormalizeEmail(req.Email)

	// The throttle fails open: a Redis outage must not lock everyone out.
	allowed, err := h.throttle.Allow(c.Request().Context(), email)
	if err != nil {
		h.log.Warn().Err(err).Msg("login throttle unavailable, allowing attempt")
	} else if !allowed {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
	}

	user, token, err := h.authService.Login(c.Request().Context(), email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	if err := h.throttle.Reset(c.Request().Context(), email); err != nil {
		h.log.Warn().Err(err).Msg("failed to reset login throttle")
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, OK(authData{User: user, Token: token}))
}

// Me returns the authenticated account's profile.
//
// @Summary      Get own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.authService.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, OK(userData{User: profile}))
}

// UpdateProfile applies a partial update to the authenticated account.
//
// @Summary      Update own profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.authService.UpdateProfile(c.Request().Context(), user.ID, ports.UpdateUserInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		Phone:        req.Phone,
		Location:     req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, OK(userData{User: updated}))
}

// Logout records the logout; the client discards its token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, OK(struct{}{}))
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storyweave/storyweave-api/internal/api/metrics"
	"github.com/storyweave/storyweave-api/internal/core/auth"
	"github.com/storyweave/storyweave-api/internal/core/domain"
)

// ContextKeyUser is the echo context key under which Auth stores the
// resolved *domain.User.
const ContextKeyUser = "user"

// authFailedMsg is the single message returned for every authentication
// failure. The specific kind (missing, expired, invalid, malformed, account
// gone) is logged and counted but never exposed.
const authFailedMsg = "authentication required"

// TokenVerifier validates a session token string and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

// AccountLookup resolves an account id to the stored account.
type AccountLookup interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth extracts the Bearer token, verifies it, loads the account and stores
// it in the request context. Any failure results in a uniform 401.
func Auth(verifier TokenVerifier, accounts AccountLookup, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.TokenFailuresTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, authFailedMsg)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenFailuresTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, authFailedMsg)
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				reason := "invalid"
				switch {
				case errors.Is(err, auth.ErrTokenExpired):
					reason = "expired"
				case errors.Is(err, auth.ErrTokenMalformed):
					reason = "malformed"
				}
				metrics.TokenFailuresTotal.WithLabelValues(reason).Inc()
				log.Debug().Str("reason", reason).Str("path", c.Path()).Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, authFailedMsg)
			}

			user, err := accounts.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenFailuresTotal.WithLabelValues("account_gone").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, authFailedMsg)
				}
				return err
			}

			c.Set(ContextKeyUser, user)
			return next(c)
		}
	}
}

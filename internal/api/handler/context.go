package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storyweave/storyweave-api/internal/core/domain"
)

// currentUser extracts the account attached by the Auth middleware. A
// missing or mistyped value means the route was wired without the
// middleware; fail closed with 401 rather than proceeding anonymously.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return user, nil
}

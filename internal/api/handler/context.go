package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linkup/linkup-api/internal/core/domain"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty user_id
// proves the middleware ran, and the role must parse against the closed set.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	raw, _ := c.Get("role").(string)
	role, parseErr := domain.ParseRole(raw)
	if parseErr != nil {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token carries unknown role")
	}

	return userID, role, nil
}

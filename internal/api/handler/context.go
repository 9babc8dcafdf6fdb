package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/blogify/blog-api/internal/api/middleware"
	"github.com/blogify/blog-api/internal/core/domain"
)

// currentAuth extracts the authorization context resolved by the RBAC
// middleware. ok is false on routes without a role check.
func currentAuth(c echo.Context) (domain.AuthContext, bool) {
	auth, ok := c.Get(middleware.KeyAuthContext).(domain.AuthContext)
	return auth, ok
}

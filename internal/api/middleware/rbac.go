package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogify/blog-api/internal/api/metrics"
	"github.com/blogify/blog-api/internal/core/domain"
	"github.com/blogify/blog-api/internal/core/ports"
)

// RequireRoles enforces role-based access control. The role is re-derived
// from the database on every request rather than trusted from the token
// claim, so a role change after token issuance takes effect immediately.
// The resolved domain.AuthContext is stored in the echo context for
// downstream handlers.
func RequireRoles(users ports.UserRepository, roles ports.RoleRepository, allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(KeyUserID).(string)
			if userID == "" {
				metrics.AuthDeniedTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "No token provided!")
			}

			ctx := c.Request().Context()

			// A valid token may reference a user deleted since issuance.
			user, err := users.FindByID(ctx, userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusNotFound, "User not found")
				}
				return err
			}

			role, err := roles.FindByID(ctx, user.RoleID)
			if err != nil {
				if errors.Is(err, domain.ErrRoleNotFound) {
					return echo.NewHTTPError(http.StatusNotFound, "Role not found")
				}
				return err
			}

			auth := domain.AuthContext{UserID: user.ID, RoleName: role.Name}
			if !auth.Authorized(allowed...) {
				metrics.AuthDeniedTotal.WithLabelValues("insufficient_role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to access this resource")
			}

			c.Set(KeyAuthContext, auth)
			return next(c)
		}
	}
}

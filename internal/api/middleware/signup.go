package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogify/blog-api/internal/core/domain"
	"github.com/blogify/blog-api/internal/core/ports"
)

// signUpPeek is the subset of the sign-up body the pre-checks need.
type signUpPeek struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// peekBody reads the request body, decodes the fields the pre-checks need,
// and restores the body so the terminal handler can bind it again.
func peekBody(c echo.Context) (signUpPeek, error) {
	var peek signUpPeek

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return peek, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	c.Request().Body = io.NopCloser(bytes.NewReader(body))

	if len(body) > 0 {
		if err := json.Unmarshal(body, &peek); err != nil {
			return peek, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
	}
	return peek, nil
}

// CheckDuplicateEmail rejects sign-ups whose email is already registered.
// The check runs before the handler; the unique index on the users
// collection is the backstop for the race it cannot close.
func CheckDuplicateEmail(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			peek, err := peekBody(c)
			if err != nil {
				return err
			}

			if peek.Email != "" {
				_, err := users.FindByEmail(c.Request().Context(), peek.Email)
				if err == nil {
					return echo.NewHTTPError(http.StatusConflict, "Failed! Email is already in use!")
				}
				if !errors.Is(err, domain.ErrUserNotFound) {
					return err
				}
			}
			return next(c)
		}
	}
}

// CheckRolesExisted rejects sign-ups naming a role outside the fixed set.
// An absent role is fine; the handler assigns the default.
func CheckRolesExisted() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			peek, err := peekBody(c)
			if err != nil {
				return err
			}

			if peek.Role != "" && !domain.ValidRole(peek.Role) {
				return echo.NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("Failed! Role %s does not exist!", peek.Role))
			}
			return next(c)
		}
	}
}

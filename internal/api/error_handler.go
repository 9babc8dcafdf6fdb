package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/blogify/blog-api/internal/core/domain"
)

// errorBody is the canonical error envelope. The frontend displays Message
// verbatim, so known errors must keep their exact strings.
type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Preserves statuses and messages from echo.HTTPError (middleware errors,
//     bind failures, 404 from the router).
//   - Maps known domain errors that escape a handler to deterministic codes.
//   - Logs unexpected errors without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorBody{Status: code, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "Please provide all fields!"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "Failed! Email is already in use!"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Email or password is invalid!"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrRoleNotFound):
		return http.StatusNotFound, "Role not found"
	case errors.Is(err, domain.ErrNoToken):
		return http.StatusForbidden, "No token provided!"
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "Unauthorized!"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You are not authorized to access this resource"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}

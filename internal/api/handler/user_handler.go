package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/blogify/blog-api/internal/core/domain"
	"github.com/blogify/blog-api/internal/core/ports"
)

// UserHandler serves the access-test boards and the user listing.
type UserHandler struct {
	service ports.UserService
	log     zerolog.Logger
}

func NewUserHandler(service ports.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

type listUsersResponse struct {
	Message    string           `json:"message"`
	TotalItems int              `json:"totalItems"`
	Users      []ports.UserView `json:"users"`
}

// AllAccess responds to everyone.
//
// @Summary      Public content
// @Tags         test
// @Produce      plain
// @Success      200  {string}  string
// @Router       /api/user/test/all-access [get]
func (h *UserHandler) AllAccess(c echo.Context) error {
	return c.String(http.StatusOK, "Public Content.")
}

// UserBoard responds to everyone; the client gates it on token presence.
//
// @Summary      User content
// @Tags         test
// @Produce      plain
// @Success      200  {string}  string
// @Router       /api/user/test/access-user [get]
func (h *UserHandler) UserBoard(c echo.Context) error {
	return c.String(http.StatusOK, "User Content.")
}

// AdminBoard responds only behind the admin role check.
//
// @Summary      Admin content
// @Tags         test
// @Produce      plain
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/user/test/access-admin [get]
func (h *UserHandler) AdminBoard(c echo.Context) error {
	return c.String(http.StatusOK, "Admin Content.")
}

// ModeratorBoard responds only behind the moderator role check.
//
// @Summary      Moderator content
// @Tags         test
// @Produce      plain
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/user/test/access-moderator [get]
func (h *UserHandler) ModeratorBoard(c echo.Context) error {
	return c.String(http.StatusOK, "Moderator Content.")
}

// AllUsers lists every user except the one named in the path.
//
// @Summary      List all other users
// @Tags         test
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Requesting user id"
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/user/test/all-users/{id} [get]
func (h *UserHandler) AllUsers(c echo.Context) error {
	id := c.Param("id")

	if auth, ok := currentAuth(c); ok {
		h.log.Debug().Str("requester", auth.UserID).Str("role", auth.RoleName).Msg("listing users")
	}

	users, err := h.service.ListOthers(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "No users found."})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Some error occurred while retrieving users"})
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Message:    "Users retrieved successfully.",
		TotalItems: len(users),
		Users:      users,
	})
}

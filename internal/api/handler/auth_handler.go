package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/blogify/blog-api/internal/core/domain"
	"github.com/blogify/blog-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp registers a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration details"
// @Success      201   {object}  signUpResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/user/auth/sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Status: http.StatusBadRequest, Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Status: http.StatusBadRequest, Message: err.Error()})
	}

	result, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		RoleName:  req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, messageResponse{Status: http.StatusBadRequest, Message: "Please provide all fields!"})
		case errors.Is(err, domain.ErrRoleNotFound):
			msg := "Failed! Getting role by default!"
			if req.Role != "" {
				msg = fmt.Sprintf("Failed! Role %s does not exist!", req.Role)
			}
			return c.JSON(http.StatusNotFound, messageResponse{Status: http.StatusNotFound, Message: msg})
		case errors.Is(err, domain.ErrEmailTaken):
			return c.JSON(http.StatusConflict, messageResponse{Status: http.StatusConflict, Message: "Failed! Email is already in use!"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Status: http.StatusInternalServerError, Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, signUpResponse{
		Status:      http.StatusCreated,
		Message:     "User created successfully.",
		User:        result.User,
		Role:        result.Role.ID,
		AccessToken: result.AccessToken,
	})
}

// SignIn authenticates a user and returns a JWT.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Login credentials"
// @Success      200   {object}  signInResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/user/auth/sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Status: http.StatusBadRequest, Message: "invalid payload"})
	}

	result, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, messageResponse{Status: http.StatusBadRequest, Message: "Please provide all fields!"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, messageResponse{Status: http.StatusUnauthorized, Message: "Email or password is invalid!"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Status: http.StatusInternalServerError, Message: "Error logging user!"})
	}

	return c.JSON(http.StatusOK, signInResponse{
		Status:      http.StatusOK,
		Message:     "User authenticated successfully!",
		User:        result.User,
		Role:        "ROLE_" + strings.ToUpper(result.Role.Name),
		AccessToken: result.AccessToken,
	})
}

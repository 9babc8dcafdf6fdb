package ports

import (
	"context"

	"github.com/blogify/blog-api/internal/core/domain"
)

// SignUpInput carries the registration fields. RoleName may be empty, in
// which case the default "user" role is assigned.
type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	RoleName  string
}

// AuthResult is returned by both SignUp and SignIn.
type AuthResult struct {
	User        *domain.User
	Role        *domain.Role
	AccessToken string
}

// AuthService implements registration and login.
type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
}
